package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cityhelper_landing_go/config"
	"cityhelper_landing_go/handlers"
	"cityhelper_landing_go/middleware"
	"cityhelper_landing_go/services/theme"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Design tokens are fixed for the process lifetime
	th, err := theme.Load(cfg.ThemeFile)
	if err != nil {
		log.Fatalf("Failed to load theme: %v", err)
	}
	middleware.SetThemeVersion(th.CSS())
	middleware.InitAssetVersions(cfg.StaticDir)

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead},
	}))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "0",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         hstsMaxAge(cfg),
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(echomiddleware.Gzip())
	if cfg.RateLimit > 0 {
		store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RateLimit),
			ExpiresIn: 3 * time.Minute,
		})
		e.Use(echomiddleware.RateLimiter(store))
	}
	e.Use(handlers.WithDependencies(cfg, th))

	// Static files
	e.Static("/static", cfg.StaticDir)

	e.GET("/healthz", handlers.HealthHandler)
	e.GET("/robots.txt", handlers.RobotsHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/theme.css", handlers.ThemeStylesheetHandler)

	// Pages carry inline scripts and need a per-request nonce
	e.GET("/", handlers.LandingHandler, middleware.CSPNonce())

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}
	log.Println("Server stopped")
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 31536000
	}
	return 0
}
