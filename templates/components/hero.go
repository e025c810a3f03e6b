package components

import (
	"cityhelper_landing_go/models"
	"cityhelper_landing_go/services/animation"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Hero renders the full-viewport banner with its tinted overlay
func Hero() g.Node {
	return Section(
		ID("hero"),
		Class("hero-bg min-h-screen relative"),

		Div(
			Class("absolute inset-0 bg-phthalo-green/60 mix-blend-multiply"),
			g.Attr("aria-hidden", "true"),
		),

		Div(
			Class("relative z-10 container mx-auto px-4 py-32"),
			RevealOnLoad(animation.FadeUp),

			H1(Class("text-6xl md:text-8xl font-bold mb-6"), g.Text(models.ProductName)),
			P(Class("text-xl md:text-2xl max-w-2xl"), g.Text(models.HeroTagline)),
			Button(
				Type("button"),
				g.Attr("data-cta", "primary"),
				Class("mt-8 bg-phthalo-green hover:bg-phthalo-green/80 text-white px-8 py-4 rounded-lg text-lg transition-colors"),
				g.Text("Get Started"),
			),
		),
	)
}
