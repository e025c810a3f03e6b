package pages

import (
	"context"
	"fmt"
	"io"

	"cityhelper_landing_go/middleware"
	"cityhelper_landing_go/models"
	"cityhelper_landing_go/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ThemeStylesheetPath is where the server and the static export publish the theme CSS
const ThemeStylesheetPath = "/theme.css"

// Swaps the no-js class before first paint so hidden reveal states only apply when the observer will run.
const jsDetectScript = `document.documentElement.classList.replace("no-js","js");`

// Landing renders the full landing page document.
// Nothing is written when the observer options are invalid.
func Landing(vm LandingViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := vm.Observer.Validate(); err != nil {
			return fmt.Errorf("landing page: %w", err)
		}
		return document(ctx, vm).Render(w)
	})
}

func document(ctx context.Context, vm LandingViewModel) g.Node {
	seo := vm.SEO
	if seo == nil {
		seo = models.DefaultSEO(models.ProductName, models.HeroTagline)
	}
	nonce := middleware.GetNonce(ctx)

	observerAttrs := make([]g.Node, 0, 3)
	for _, a := range vm.Observer.Attributes() {
		observerAttrs = append(observerAttrs, g.Attr(a.Name, a.Value))
	}

	return Doctype(
		HTML(
			Class("no-js"),
			Lang(seo.Lang),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(seo.Title)),
				Meta(Name("description"), Content(seo.Description)),
				Meta(Name("robots"), Content(seo.Robots())),
				g.If(seo.Canonical != "", Link(Rel("canonical"), Href(seo.Canonical))),
				g.If(seo.ThemeColor != "", Meta(Name("theme-color"), Content(seo.ThemeColor))),
				socialMeta(seo),
				Link(Rel("icon"), Type("image/svg+xml"), Href(assetURL(ctx, middleware.FaviconAsset))),
				Link(Rel("stylesheet"), Href(assetURL(ctx, middleware.StyleAsset))),
				Link(Rel("stylesheet"), Href(ThemeStylesheetPath+"?v="+middleware.GetThemeVersion(ctx))),
				Script(nonceAttr(nonce), g.Raw(jsDetectScript)),
				Script(nonceAttr(nonce), Src(assetURL(ctx, middleware.RevealAsset)), g.Attr("defer")),
			),
			Body(
				Class("min-h-screen bg-black text-white font-sans"),
				g.Group(observerAttrs),
				Main(
					components.Hero(),
					components.FeatureGrid(vm.Features),
					components.ProcessSteps(vm.Steps),
					components.CallToAction(),
				),
				components.SiteFooter(vm.FooterColumns, vm.Copyright),
			),
		),
	)
}

func socialMeta(seo *models.SEO) g.Node {
	return g.Group{
		Meta(g.Attr("property", "og:title"), Content(seo.Title)),
		Meta(g.Attr("property", "og:description"), Content(seo.Description)),
		Meta(g.Attr("property", "og:type"), Content(seo.OGType)),
		g.If(seo.Canonical != "", Meta(g.Attr("property", "og:url"), Content(seo.Canonical))),
		g.If(seo.OGImage != "", Meta(g.Attr("property", "og:image"), Content(seo.OGImage))),
		Meta(Name("twitter:card"), Content(seo.TwitterCard)),
		Meta(Name("twitter:title"), Content(seo.Title)),
		Meta(Name("twitter:description"), Content(seo.Description)),
		g.If(seo.OGImage != "", Meta(Name("twitter:image"), Content(seo.OGImage))),
	}
}

func assetURL(ctx context.Context, asset string) string {
	return "/static/" + asset + "?v=" + middleware.GetAssetVersion(ctx, asset)
}

// A static export has no nonce; the attribute is left out then.
func nonceAttr(nonce string) g.Node {
	return g.If(nonce != "", g.Attr("nonce", nonce))
}
