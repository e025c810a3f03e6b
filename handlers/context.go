package handlers

import (
	"net/http"

	"cityhelper_landing_go/config"
	"cityhelper_landing_go/services/theme"

	"github.com/labstack/echo/v4"
)

// Context keys set by WithDependencies
const (
	configKey = "config"
	themeKey  = "theme"
)

// WithDependencies makes config and theme available to handlers
func WithDependencies(cfg *config.Config, th *theme.Theme) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(configKey, cfg)
			c.Set(themeKey, th)
			return next(c)
		}
	}
}

// getConfig returns a 500 error when WithDependencies was not installed
func getConfig(c echo.Context) (*config.Config, error) {
	cfg, ok := c.Get(configKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "configuration not available")
	}
	return cfg, nil
}

// getTheme falls back to the built-in tokens when none was configured
func getTheme(c echo.Context) *theme.Theme {
	if th, ok := c.Get(themeKey).(*theme.Theme); ok && th != nil {
		return th
	}
	return theme.Default()
}
