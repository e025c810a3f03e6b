package components

import (
	"strconv"

	"cityhelper_landing_go/models"
	"cityhelper_landing_go/services/animation"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ProcessSteps renders the numbered "how it works" blocks
func ProcessSteps(steps []models.StepRecord) g.Node {
	blocks := make([]g.Node, 0, len(steps))
	for i, s := range steps {
		blocks = append(blocks, Div(
			Class("step text-center"),
			Reveal(animation.SlideRight, i),
			Div(
				Class("step-badge w-16 h-16 rounded-full bg-phthalo-green flex items-center justify-center text-2xl font-bold mx-auto mb-4"),
				g.Text(strconv.Itoa(s.Number)),
			),
			H3(Class("text-xl font-semibold mb-2"), g.Text(s.Title)),
			P(Class("text-gray-400"), g.Text(s.Description)),
		))
	}

	return Section(
		ID("how-it-works"),
		Class("py-20 bg-zinc-900"),
		Div(
			Class("container mx-auto px-4"),
			H2(Class("text-4xl md:text-5xl font-bold text-center mb-16"), Reveal(animation.FadeIn, 0), g.Text("How It Works")),
			Div(Class("grid grid-cols-1 md:grid-cols-3 gap-12"), g.Group(blocks)),
		),
	)
}
