package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rferraz1/interfacefinalvasco/roster"
)

type createTitleRequest struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
}

// Titles returns the trophy records, most recent year first.
func (h *Handler) Titles(c echo.Context) error {
	recs, err := h.data.Titles(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, roster.SortTitles(recs))
}

// CreateTitle adds a single trophy record.
func (h *Handler) CreateTitle(c echo.Context) error {
	var req createTitleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req.Category = strings.TrimSpace(req.Category)
	req.Title = strings.TrimSpace(req.Title)

	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if req.Category == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "category is required")
	}
	if req.Year <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "year is required")
	}

	raw := map[string]string{
		roster.ColCategory: req.Category,
		roster.ColTitle:    req.Title,
		roster.ColYear:     strconv.Itoa(req.Year),
	}
	if err := h.data.AddTitle(c.Request().Context(), raw); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusCreated)
}

// ImportTitles bulk-adds trophy records from an uploaded CSV file.
func (h *Handler) ImportTitles(c echo.Context) error {
	return h.importCSV(c, h.data.BulkAddTitles)
}

// DeleteTitle removes the record at the given in-memory index.
func (h *Handler) DeleteTitle(c echo.Context) error {
	return h.deleteAt(c, h.data.DeleteTitle)
}
