package handlers

import (
	"io"
	"net/http/httptest"

	"cityhelper_landing_go/config"
	"cityhelper_landing_go/services/theme"

	"github.com/labstack/echo/v4"
)

func testConfig(environment string) *config.Config {
	return &config.Config{
		ServerPort:  "8080",
		Environment: environment,
		AppURL:      "https://cityhelper.example",
		StaticDir:   "static",
	}
}

func setupEcho(method, path string, body io.Reader, cfg *config.Config) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set(configKey, cfg)
	c.Set(themeKey, theme.Default())
	return c, rec
}
