package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CallToAction renders the secondary conversion section
func CallToAction() g.Node {
	return Section(
		ID("cta"),
		Class("py-20 bg-phthalo-green"),
		Div(
			Class("container mx-auto px-4 text-center"),
			H2(Class("text-4xl md:text-5xl font-bold mb-6"), g.Text("Ready to Transform Your City?")),
			P(Class("text-xl mb-8 max-w-2xl mx-auto"), g.Text("Join thousands of citizens and officials making their communities better.")),
			Div(
				Class("flex flex-col sm:flex-row gap-4 justify-center"),
				Button(
					Type("button"),
					Class("bg-white text-phthalo-green px-8 py-4 rounded-lg text-lg font-semibold hover:bg-gray-100 transition-colors"),
					g.Text("Sign Up Now"),
				),
				Button(
					Type("button"),
					Class("border-2 border-white px-8 py-4 rounded-lg text-lg font-semibold hover:bg-white/10 transition-colors"),
					g.Text("Learn More"),
				),
			),
		),
	)
}
