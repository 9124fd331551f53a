package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	mw "github.com/rferraz1/interfacefinalvasco/middleware"
)

type credentials struct {
	Password string `json:"password"`
}

// Signin checks the shared admin secret and returns a JWT token valid for
// 24 hours. The secret is compared for equality only; there are no user
// accounts.
func (h *Handler) Signin(c echo.Context) error {
	var creds credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if subtle.ConstantTimeCompare([]byte(creds.Password), []byte(h.adminPassword)) != 1 {
		return echo.NewHTTPError(http.StatusUnauthorized, "incorrect password")
	}

	claims := &mw.Claims{
		Role: mw.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(h.jwtKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"token": tokenString})
}
