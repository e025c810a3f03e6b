package handlers

import (
	"cityhelper_landing_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the landing page
func LandingHandler(c echo.Context) error {
	cfg, err := getConfig(c)
	if err != nil {
		return err
	}
	seo := LandingSEO(cfg, getTheme(c))
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)

	component := pages.Landing(pages.NewLandingViewModel(seo))
	return component.Render(c.Request().Context(), c.Response().Writer)
}
