package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rferraz1/interfacefinalvasco/roster"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	data          *roster.Dataset
	jwtKey        []byte
	adminPassword string
}

// New creates a Handler over the dataset with the given JWT signing key and
// shared admin secret.
func New(data *roster.Dataset, jwtKey []byte, adminPassword string) *Handler {
	return &Handler{data: data, jwtKey: jwtKey, adminPassword: adminPassword}
}

// Refresh forces a reload of every collection from the backing store.
func (h *Handler) Refresh(c echo.Context) error {
	if err := h.data.Load(c.Request().Context(), true); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.NoContent(http.StatusOK)
}
