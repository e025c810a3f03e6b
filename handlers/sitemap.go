package handlers

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler lists the public pages
func GetSitemapHandler(c echo.Context) error {
	cfg, err := getConfig(c)
	if err != nil {
		return err
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []SitemapURL{
			{Loc: cfg.PageURL("/"), ChangeFreq: "monthly", Priority: 1.0},
		},
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// RobotsHandler serves robots.txt; non-production deployments disallow crawling
func RobotsHandler(c echo.Context) error {
	cfg, err := getConfig(c)
	if err != nil {
		return err
	}

	body := "User-agent: *\n"
	if cfg.IsProduction() {
		body += "Allow: /\n"
	} else {
		body += "Disallow: /\n"
	}
	body += "Sitemap: " + cfg.PageURL("/sitemap.xml") + "\n"
	return c.String(http.StatusOK, body)
}

// HealthHandler reports liveness
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
