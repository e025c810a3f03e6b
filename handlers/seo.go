package handlers

import (
	"cityhelper_landing_go/config"
	"cityhelper_landing_go/middleware"
	"cityhelper_landing_go/models"
	"cityhelper_landing_go/services/theme"
)

const (
	landingTitle       = "CityHelper - Better Cities Through Civic Reporting"
	landingDescription = "CityHelper connects citizens and city officials to report, track and resolve local issues. " + models.HeroTagline
)

// LandingSEO returns the metadata for the landing page.
// Staging and development deployments are kept out of search indexes.
func LandingSEO(cfg *config.Config, th *theme.Theme) *models.SEO {
	seo := models.DefaultSEO(landingTitle, landingDescription).
		WithCanonical(cfg.PageURL("/")).
		WithThemeColor(th.Color(theme.BrandColor))
	if middleware.HasAsset(middleware.OGImageAsset) {
		seo.WithOGImage(cfg.PageURL("/static/" + middleware.OGImageAsset))
	}
	if !cfg.IsProduction() {
		seo.WithNoIndex()
	}
	return seo
}
