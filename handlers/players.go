package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rferraz1/interfacefinalvasco/roster"
)

type createPlayerRequest struct {
	Name        string `json:"name"`
	Year        int    `json:"year"`
	Position    string `json:"position"`
	Competition string `json:"competition"`
	Goals       int    `json:"goals"`
	Minutes     int    `json:"minutes"`
	Category    string `json:"category"`
}

// playerFilterFromQuery builds the view predicates from query params.
func playerFilterFromQuery(c echo.Context) (roster.PlayerFilter, error) {
	f := roster.PlayerFilter{
		Name:        c.QueryParam("name"),
		Category:    c.QueryParam("category"),
		Position:    c.QueryParam("position"),
		Competition: c.QueryParam("competition"),
	}
	if y := c.QueryParam("year"); y != "" {
		n, err := strconv.Atoi(y)
		if err != nil {
			return f, fmt.Errorf("invalid year param %q", y)
		}
		f.Year = &n
	}
	return f, nil
}

// Players returns the call-up records matching the query filters, sorted for
// display by year then name.
func (h *Handler) Players(c echo.Context) error {
	filter, err := playerFilterFromQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recs, err := h.data.Players(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	return c.JSON(http.StatusOK, roster.SortPlayers(filter.Apply(recs)))
}

// PlayersSummary returns the totals shown under the filtered table.
func (h *Handler) PlayersSummary(c echo.Context) error {
	filter, err := playerFilterFromQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	players, err := h.data.Players(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	titles, err := h.data.Titles(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	return c.JSON(http.StatusOK, roster.Summarize(filter.Apply(players), len(titles)))
}

// ExportPlayers streams the call-up collection as CSV in canonical column
// order.
func (h *Handler) ExportPlayers(c echo.Context) error {
	recs, err := h.data.Players(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="convocacoes.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return roster.WriteCSV(c.Response(), h.data.PlayerSchema(), recs)
}

// CreatePlayer adds a single call-up record.
func (h *Handler) CreatePlayer(c echo.Context) error {
	var req createPlayerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Position = strings.TrimSpace(req.Position)
	req.Competition = strings.TrimSpace(req.Competition)
	req.Category = strings.TrimSpace(req.Category)

	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.Year <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "year is required")
	}
	if !roster.ValidPosition(req.Position) {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("position must be one of: %s", strings.Join(roster.Positions, ", ")))
	}
	if !roster.ValidCompetition(req.Competition) {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("competition must be one of: %s", strings.Join(roster.Competitions, ", ")))
	}
	if req.Goals < 0 || req.Minutes < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "goals and minutes must be non-negative")
	}

	raw := map[string]string{
		roster.ColName:        req.Name,
		roster.ColYear:        strconv.Itoa(req.Year),
		roster.ColPosition:    req.Position,
		roster.ColCompetition: req.Competition,
		roster.ColGoals:       strconv.Itoa(req.Goals),
		roster.ColMinutes:     strconv.Itoa(req.Minutes),
	}
	if req.Category != "" {
		raw[roster.ColCategory] = req.Category
	}

	if err := h.data.AddPlayer(c.Request().Context(), raw); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusCreated)
}

// ImportPlayers bulk-adds call-up records from an uploaded CSV file. A batch
// whose header misses a required column is rejected in full.
func (h *Handler) ImportPlayers(c echo.Context) error {
	return h.importCSV(c, h.data.BulkAddPlayers)
}

// DeletePlayer removes the record at the given in-memory index.
func (h *Handler) DeletePlayer(c echo.Context) error {
	return h.deleteAt(c, h.data.DeletePlayer)
}

// importCSV runs the shared upload path for both record kinds.
func (h *Handler) importCSV(c echo.Context, add func(ctx context.Context, header []string, rows []map[string]string) (int, error)) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file upload")
	}
	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer src.Close()

	header, rows, err := roster.ReadCSV(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	added, err := add(c.Request().Context(), header, rows)
	if err != nil {
		var mce *roster.MissingColumnsError
		if errors.As(err, &mce) {
			return echo.NewHTTPError(http.StatusBadRequest, mce.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]int{"added": added})
}

func (h *Handler) deleteAt(c echo.Context, del func(ctx context.Context, i int) error) error {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record index")
	}
	if err := del(c.Request().Context(), idx); err != nil {
		if errors.Is(err, roster.ErrIndexOutOfRange) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusOK)
}
