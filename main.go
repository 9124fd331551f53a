package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/rferraz1/interfacefinalvasco/backend"
	"github.com/rferraz1/interfacefinalvasco/config"
	"github.com/rferraz1/interfacefinalvasco/handlers"
	applog "github.com/rferraz1/interfacefinalvasco/logger"
	mw "github.com/rferraz1/interfacefinalvasco/middleware"
	"github.com/rferraz1/interfacefinalvasco/roster"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx := context.Background()
	st, closeStore, err := backend.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("open store failed", zap.Error(err))
	}
	defer closeStore()

	data := roster.NewDataset(st, backend.Tabs(cfg), cfg.DefaultCategory)
	if err := data.Load(ctx, false); err != nil {
		// Connection problems surface once here; the API serves empty
		// collections until a refresh succeeds.
		logger.Warn("initial load failed", zap.Error(err))
	}

	h := handlers.New(data, cfg.JWTKey(), cfg.AdminPassword)

	e := echo.New()
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))

	// Public
	e.POST("/api/signin", h.Signin)
	e.GET("/api/players", h.Players)
	e.GET("/api/players/summary", h.PlayersSummary)
	e.GET("/api/players/export", h.ExportPlayers)
	e.GET("/api/titles", h.Titles)
	e.GET("/api/market", h.Market)

	// Admin – require valid JWT in Authorization header
	admin := e.Group("/api/admin", mw.JWT(cfg.JWTKey()))
	admin.POST("/players", h.CreatePlayer)
	admin.POST("/players/import", h.ImportPlayers)
	admin.DELETE("/players/:index", h.DeletePlayer)
	admin.POST("/titles", h.CreateTitle)
	admin.POST("/titles/import", h.ImportTitles)
	admin.DELETE("/titles/:index", h.DeleteTitle)
	admin.POST("/refresh", h.Refresh)

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
