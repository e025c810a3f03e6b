package components

import (
	"fmt"

	"cityhelper_landing_go/services/animation"

	g "maragu.dev/gomponents"
)

// Reveal marks an element for an entrance transition that starts when the
// element scrolls into view. index staggers siblings by animation.DefaultStagger.
func Reveal(t animation.Transition, index int) g.Node {
	t = t.WithDelay(animation.Stagger(index, animation.DefaultStagger))
	return g.Group{
		g.Attr("data-reveal", t.Name),
		g.If(t.Delay > 0, g.Attr("style", fmt.Sprintf("transition-delay: %dms", t.Delay.Milliseconds()))),
	}
}

// RevealOnLoad is Reveal for content already in the first viewport; it plays once as soon as the page loads.
func RevealOnLoad(t animation.Transition) g.Node {
	return g.Group{
		g.Attr("data-reveal", t.Name),
		g.Attr("data-reveal-trigger", "load"),
	}
}
