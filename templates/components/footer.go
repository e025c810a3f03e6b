package components

import (
	"cityhelper_landing_go/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SiteFooter renders the link columns and the copyright line.
// Column items are plain text; none of them navigate anywhere.
func SiteFooter(columns []models.FooterColumn, copyright string) g.Node {
	cols := make([]g.Node, 0, len(columns))
	for _, col := range columns {
		cols = append(cols, footerColumn(col))
	}

	return Footer(
		Class("bg-black border-t border-white/10 py-12"),
		Div(
			Class("container mx-auto px-4"),
			Div(Class("grid grid-cols-1 md:grid-cols-4 gap-8"), g.Group(cols)),
			Div(
				Class("border-t border-white/10 mt-8 pt-8 text-center text-gray-400"),
				P(Class("copyright"), g.Text(copyright)),
			),
		),
	)
}

func footerColumn(col models.FooterColumn) g.Node {
	items := make([]g.Node, 0, len(col.Items))
	for _, item := range col.Items {
		items = append(items, Li(g.Text(item)))
	}

	return Div(
		Class("footer-column"),
		H4(Class("text-lg font-semibold mb-4"), g.Text(col.Heading)),
		g.If(col.Text != "", P(Class("text-gray-400"), g.Text(col.Text))),
		g.If(len(items) > 0, Ul(Class("space-y-2 text-gray-400"), g.Group(items))),
	)
}
