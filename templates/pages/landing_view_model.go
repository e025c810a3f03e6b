package pages

import (
	"cityhelper_landing_go/models"
	"cityhelper_landing_go/services/animation"
)

// LandingViewModel holds everything the landing page renders
type LandingViewModel struct {
	SEO           *models.SEO
	Features      []models.FeatureRecord
	Steps         []models.StepRecord
	FooterColumns []models.FooterColumn
	Copyright     string
	Observer      animation.ObserverOptions
}

// NewLandingViewModel fills the view model with the static page content
func NewLandingViewModel(seo *models.SEO) LandingViewModel {
	return LandingViewModel{
		SEO:           seo,
		Features:      models.Features(),
		Steps:         models.Steps(),
		FooterColumns: models.FooterColumns(),
		Copyright:     models.CopyrightLine,
		Observer:      animation.DefaultObserver,
	}
}
