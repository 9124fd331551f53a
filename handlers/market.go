package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Market returns the transfer-market records. The collection is read-only:
// its tab is maintained outside the dashboard.
func (h *Handler) Market(c echo.Context) error {
	recs, err := h.data.Market(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, recs)
}
