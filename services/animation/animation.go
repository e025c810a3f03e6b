// Package animation describes the entrance transitions played when page
// sections become visible. The browser only toggles a class; everything
// about the motion (start state, end state, timing) is defined here and
// rendered into CSS.
package animation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultStagger is the delay added per list position
const DefaultStagger = 200 * time.Millisecond

// VisibleClass is added to an element once it has entered the viewport
const VisibleClass = "is-visible"

// State is the visual state of an element at one instant.
// Offsets are in CSS pixels.
type State struct {
	Opacity float64
	OffsetX float64
	OffsetY float64
}

// Transition moves an element from one State to another
type Transition struct {
	Name     string
	From     State
	To       State
	Duration time.Duration
	Delay    time.Duration
}

var (
	FadeUp = Transition{
		Name:     "fade-up",
		From:     State{Opacity: 0, OffsetY: 50},
		To:       State{Opacity: 1},
		Duration: time.Second,
	}
	FadeIn = Transition{
		Name:     "fade-in",
		From:     State{Opacity: 0},
		To:       State{Opacity: 1},
		Duration: 600 * time.Millisecond,
	}
	SlideRight = Transition{
		Name:     "slide-right",
		From:     State{Opacity: 0, OffsetX: -50},
		To:       State{Opacity: 1},
		Duration: 600 * time.Millisecond,
	}
)

// Presets returns the transitions available to templates, in CSS output order
func Presets() []Transition {
	return []Transition{FadeUp, FadeIn, SlideRight}
}

// Stagger returns the start offset for the item at index.
// Negative indices are treated as 0.
func Stagger(index int, step time.Duration) time.Duration {
	if index < 0 {
		index = 0
	}
	return time.Duration(index) * step
}

// WithDelay returns a copy of t starting after d
func (t Transition) WithDelay(d time.Duration) Transition {
	t.Delay = d
	return t
}

// At returns the state elapsed time after the trigger fired.
// Before Delay the element holds From; after Delay+Duration it holds To.
func (t Transition) At(elapsed time.Duration) State {
	if elapsed <= t.Delay {
		return t.From
	}
	if t.Duration <= 0 || elapsed >= t.Delay+t.Duration {
		return t.To
	}

	p := easeOutCubic(float64(elapsed-t.Delay) / float64(t.Duration))
	return State{
		Opacity: lerp(t.From.Opacity, t.To.Opacity, p),
		OffsetX: lerp(t.From.OffsetX, t.To.OffsetX, p),
		OffsetY: lerp(t.From.OffsetY, t.To.OffsetY, p),
	}
}

// easingCSS must stay in sync with easeOutCubic
const easingCSS = "cubic-bezier(0.33, 1, 0.68, 1)"

func easeOutCubic(p float64) float64 {
	return 1 - math.Pow(1-p, 3)
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}

// keyframeStops is the number of intervals At is sampled at for keyframes
const keyframeStops = 4

// CSS renders the start and end rules for each transition.
// Elements opt in with data-reveal="<name>". Viewport reveals use a CSS
// transition; data-reveal-trigger="load" elements play keyframes sampled
// from At once, as soon as the page is shown.
func CSS(transitions ...Transition) string {
	var b strings.Builder
	for _, t := range transitions {
		b.WriteString(keyframes(t))
		fmt.Fprintf(&b, "[data-reveal=\"%s\"][data-reveal-trigger=\"load\"] {\n", t.Name)
		fmt.Fprintf(&b, "  transition: none;\n  animation: %s %dms linear both;\n}\n", keyframesName(t), t.Duration.Milliseconds())
	}
	for _, t := range transitions {
		sel := fmt.Sprintf(`[data-reveal="%s"]`, t.Name)
		fmt.Fprintf(&b, "%s {\n", sel)
		fmt.Fprintf(&b, "  opacity: %s;\n", formatFloat(t.From.Opacity))
		fmt.Fprintf(&b, "  transform: %s;\n", transform(t.From))
		fmt.Fprintf(&b, "  transition: opacity %dms %s, transform %dms %s;\n",
			t.Duration.Milliseconds(), easingCSS, t.Duration.Milliseconds(), easingCSS)
		b.WriteString("}\n")
		fmt.Fprintf(&b, "%s.%s {\n", sel, VisibleClass)
		fmt.Fprintf(&b, "  opacity: %s;\n", formatFloat(t.To.Opacity))
		fmt.Fprintf(&b, "  transform: %s;\n", transform(t.To))
		b.WriteString("}\n")
	}

	// Without the observer script, or when motion is unwanted, show everything.
	b.WriteString(".no-js [data-reveal] {\n  opacity: 1;\n  transform: none;\n}\n")
	b.WriteString("@media (prefers-reduced-motion: reduce) {\n")
	b.WriteString("  [data-reveal] {\n    opacity: 1;\n    transform: none;\n    transition: none;\n    animation: none;\n  }\n")
	b.WriteString("}\n")
	return b.String()
}

func keyframesName(t Transition) string {
	return "reveal-" + t.Name
}

// keyframes samples the eased path so load animations match At exactly at each stop
func keyframes(t Transition) string {
	t = t.WithDelay(0)

	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s {\n", keyframesName(t))
	for i := 0; i <= keyframeStops; i++ {
		s := t.At(t.Duration * time.Duration(i) / keyframeStops)
		fmt.Fprintf(&b, "  %d%% { opacity: %s; transform: %s; }\n",
			i*100/keyframeStops, formatFloat(s.Opacity), transform(s))
	}
	b.WriteString("}\n")
	return b.String()
}

func transform(s State) string {
	if s.OffsetX == 0 && s.OffsetY == 0 {
		return "none"
	}
	return fmt.Sprintf("translate(%spx, %spx)", formatFloat(s.OffsetX), formatFloat(s.OffsetY))
}

// formatFloat rounds to 3 decimals, enough for CSS pixels and opacity
func formatFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
