package animation

import (
	"fmt"
	"strconv"
	"strings"
)

// ObserverOptions configure the visibility observer that triggers reveals.
// They mirror IntersectionObserver's init dictionary.
type ObserverOptions struct {
	// Threshold is the visible fraction of an element needed to trigger, in [0, 1]
	Threshold float64
	// RootMargin grows or shrinks the viewport box, CSS margin syntax (px or %)
	RootMargin string
	// Once stops observing an element after its first reveal
	Once bool
}

// DefaultObserver reveals an element once a tenth of it is on screen
var DefaultObserver = ObserverOptions{
	Threshold:  0.1,
	RootMargin: "0px",
	Once:       true,
}

// Attr is a single HTML attribute
type Attr struct {
	Name  string
	Value string
}

// Validate checks the options can be handed to the browser unchanged
func (o ObserverOptions) Validate() error {
	if o.Threshold < 0 || o.Threshold > 1 {
		return fmt.Errorf("observer threshold must be between 0 and 1, got %v", o.Threshold)
	}

	parts := strings.Fields(o.RootMargin)
	if len(parts) == 0 || len(parts) > 4 {
		return fmt.Errorf("observer root margin %q must have 1 to 4 values", o.RootMargin)
	}
	for _, p := range parts {
		num := strings.TrimSuffix(strings.TrimSuffix(p, "px"), "%")
		if num == p {
			return fmt.Errorf("observer root margin value %q must be in px or %%", p)
		}
		if _, err := strconv.ParseFloat(num, 64); err != nil {
			return fmt.Errorf("observer root margin value %q: %w", p, err)
		}
	}
	return nil
}

// Attributes returns the data attributes read by static/js/reveal.js, in a fixed order
func (o ObserverOptions) Attributes() []Attr {
	return []Attr{
		{Name: "data-reveal-threshold", Value: formatFloat(o.Threshold)},
		{Name: "data-reveal-root-margin", Value: o.RootMargin},
		{Name: "data-reveal-once", Value: strconv.FormatBool(o.Once)},
	}
}
