package components

import (
	"cityhelper_landing_go/models"
	"cityhelper_landing_go/services/animation"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// FeatureGrid renders one card per feature, each revealed on its own
func FeatureGrid(features []models.FeatureRecord) g.Node {
	cards := make([]g.Node, 0, len(features))
	for i, f := range features {
		cards = append(cards, featureCard(i, f))
	}

	return Section(
		ID("features"),
		Class("py-20 bg-black"),
		Div(
			Class("container mx-auto px-4"),
			H2(Class("text-4xl md:text-5xl font-bold text-center mb-16"), Reveal(animation.FadeIn, 0), g.Text("Key Features")),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Group(cards),
			),
		),
	)
}

func featureCard(index int, f models.FeatureRecord) g.Node {
	return Div(
		Class("feature-card p-6 rounded-xl bg-white/5 border border-white/10 hover:bg-white/10 transition-colors"),
		Reveal(animation.FadeUp, index),
		Icon(f.Icon, "w-12 h-12 mb-4 text-phthalo-green"),
		H3(Class("text-xl font-semibold mb-2"), g.Text(f.Title)),
		P(Class("text-gray-400"), g.Text(f.Description)),
	)
}
