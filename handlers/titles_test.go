package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestTitlesSortedByYearDescending(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	c, rec := postJSON(e, "/api/admin/titles", `{"category":"Sub-17","title":"Estadual","year":2025}`)
	require.NoError(t, h.CreateTitle(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = getContext(e, "/api/titles")
	require.NoError(t, h.Titles(c))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "Estadual", got[0]["title"])
	require.Equal(t, "Copinha", got[1]["title"])
}

func TestCreateTitleRequiresFields(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	for _, body := range []string{
		`{"category":"Sub-20","year":2023}`,
		`{"title":"Copinha","year":2023}`,
		`{"category":"Sub-20","title":"Copinha"}`,
	} {
		c, _ := postJSON(e, "/api/admin/titles", body)
		err := h.CreateTitle(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusBadRequest, httpErr.Code)
	}
}
