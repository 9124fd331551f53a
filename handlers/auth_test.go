package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSigninIssuesToken(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	c, rec := postJSON(e, "/api/signin", `{"password":"depanalise"}`)
	require.NoError(t, h.Signin(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["token"])
}

func TestSigninRejectsWrongPassword(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	c, _ := postJSON(e, "/api/signin", `{"password":"wrong"}`)
	err := h.Signin(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
