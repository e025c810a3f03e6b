package handlers

import (
	"net/http"

	"cityhelper_landing_go/middleware"

	"github.com/labstack/echo/v4"
)

// ThemeStylesheetHandler serves the design tokens and reveal rules as CSS.
// The page links it with a content hash, so responses are cached for a year.
func ThemeStylesheetHandler(c echo.Context) error {
	css := getTheme(c).CSS()
	etag := `"` + middleware.ContentVersion(css) + `"`

	c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	c.Response().Header().Set("ETag", etag)
	if c.Request().Header.Get("If-None-Match") == etag {
		return c.NoContent(http.StatusNotModified)
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", []byte(css))
}
