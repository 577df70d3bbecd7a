package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/acme/autocert"

	"yatube/config"
	"yatube/handler"
	"yatube/posts"
	"yatube/store"
	"yatube/templates"
)

func main() {
	e := echo.New()
	e.Logger.SetLevel(log.INFO)

	cfg, err := config.Load()
	if err != nil {
		e.Logger.Fatal(err)
	}
	if cfg.IsDev() {
		e.Debug = true
		e.Logger.SetLevel(log.DEBUG)
	}

	e.Logger.Info("Running database schema migrations...")
	db, migrated, err := store.Open(context.Background(), cfg.DBDriver, cfg.DBURL)
	if err != nil {
		e.Logger.Fatalf("Error during database setup: %v", err)
	}
	defer db.Close()
	if !migrated {
		e.Logger.Info("No database schema migration ran. Database schema already in latest version")
	}

	renderer, err := templates.New()
	if err != nil {
		e.Logger.Fatal(err)
	}
	e.Renderer = renderer

	h := handler.Handler{
		Posts:  posts.NewService(db, cfg.Language),
		Store:  db,
		Config: cfg,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(handler.CSRF())
	e.Use(h.Authenticate())

	h.Register(e)

	// Fancy error pages
	e.HTTPErrorHandler = h.HTTPErrorHandler

	if cfg.Address != "" {
		e.Logger.Fatal(e.Start(cfg.Address))
	} else {
		// Cache certificates to avoid issues with rate limits (https://letsencrypt.org/docs/rate-limits)
		e.AutoTLSManager.Cache = autocert.DirCache(cfg.CertCacheDir)
		if cfg.WhitelistHost != "" {
			e.AutoTLSManager.HostPolicy = autocert.HostWhitelist(cfg.WhitelistHost)
		}
		e.Pre(middleware.HTTPSRedirect())
		e.Logger.Fatal(e.StartAutoTLS(":443"))
	}
}
