package components

import (
	"cityhelper_landing_go/models"

	g "maragu.dev/gomponents"
)

// Inner SVG shapes, 24x24 stroke icons
var iconShapes = map[models.IconID]string{
	models.IconLocation:  `<path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"/><circle cx="12" cy="10" r="3"/>`,
	models.IconAnalytics: `<path d="M3 3v18h18"/><path d="M18 17V9"/><path d="M13 17V5"/><path d="M8 17v-3"/>`,
	models.IconCommunity: `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	models.IconSecure:    `<path d="M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"/>`,
}

const fallbackIconShape = `<circle cx="12" cy="12" r="10"/>`

// Icon renders the glyph for id. Unknown ids get a plain circle.
func Icon(id models.IconID, class string) g.Node {
	shape, ok := iconShapes[id]
	if !ok {
		shape = fallbackIconShape
	}

	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("class", class),
		g.Attr("data-icon", string(id)),
		g.Attr("aria-hidden", "true"),
		g.Raw(shape),
	)
}
