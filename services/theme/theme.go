// Package theme holds the design tokens shared by the Tailwind build and the
// server-rendered stylesheet.
package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"cityhelper_landing_go/services/animation"
)

const (
	// BrandColor is the token used by the hero overlay and primary buttons
	BrandColor = "phthalo-green"
	// HeroImagePath is the hero background, shipped in static/images
	HeroImagePath = "/static/images/hero.svg"
)

var (
	hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	tokenPattern    = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// Theme is the styling configuration: which files Tailwind scans for class
// usage, extra font stacks and named colors merged into the default palette.
type Theme struct {
	Content    []string            `json:"content"`
	FontFamily map[string][]string `json:"fontFamily"`
	Colors     map[string]string   `json:"colors"`
}

// Default returns the built-in tokens
func Default() *Theme {
	return &Theme{
		Content: []string{
			"./templates/**/*.go",
			"./static/js/**/*.js",
		},
		FontFamily: map[string][]string{
			"sans": {"Univers", "sans-serif"},
		},
		Colors: map[string]string{
			BrandColor: "#123832",
		},
	}
}

// Load returns the default theme with the JSON file at path merged on top.
// An empty path returns the defaults.
func Load(path string) (*Theme, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}

	var override Theme
	if err := json.Unmarshal(content, &override); err != nil {
		return nil, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}

	t.Merge(&override)
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme file %s: %w", path, err)
	}
	return t, nil
}

// Merge applies other onto t. Content is replaced when other sets it;
// font families and colors are merged key by key.
func (t *Theme) Merge(other *Theme) {
	if len(other.Content) > 0 {
		t.Content = append([]string(nil), other.Content...)
	}
	for name, stack := range other.FontFamily {
		if t.FontFamily == nil {
			t.FontFamily = make(map[string][]string)
		}
		t.FontFamily[name] = append([]string(nil), stack...)
	}
	for name, value := range other.Colors {
		if t.Colors == nil {
			t.Colors = make(map[string]string)
		}
		t.Colors[name] = value
	}
}

// Validate checks every token is usable in both CSS and Tailwind
func (t *Theme) Validate() error {
	if len(t.Content) == 0 {
		return fmt.Errorf("theme content globs must not be empty")
	}
	for name, stack := range t.FontFamily {
		if !tokenPattern.MatchString(name) {
			return fmt.Errorf("invalid font family token %q", name)
		}
		if len(stack) == 0 {
			return fmt.Errorf("font family %q has an empty stack", name)
		}
	}
	for name, value := range t.Colors {
		if !tokenPattern.MatchString(name) {
			return fmt.Errorf("invalid color token %q", name)
		}
		if !hexColorPattern.MatchString(value) {
			return fmt.Errorf("color %q must be a hex value, got %q", name, value)
		}
	}
	if _, ok := t.Colors[BrandColor]; !ok {
		return fmt.Errorf("color %q is required", BrandColor)
	}
	return nil
}

// Color returns the value of a named color, or "" when unknown
func (t *Theme) Color(name string) string {
	return t.Colors[name]
}

// CSS renders the tokens as custom properties, the hero background and the
// entrance animation rules. Output is sorted so it is stable across calls.
func (t *Theme) CSS() string {
	var b strings.Builder

	b.WriteString(":root {\n")
	for _, name := range sortedKeys(t.Colors) {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", name, t.Colors[name])
	}
	for _, name := range sortedKeys(t.FontFamily) {
		fmt.Fprintf(&b, "  --font-%s: %s;\n", name, fontStack(t.FontFamily[name]))
	}
	b.WriteString("}\n")

	if stack, ok := t.FontFamily["sans"]; ok {
		fmt.Fprintf(&b, "body {\n  font-family: %s;\n}\n", fontStack(stack))
	}

	fmt.Fprintf(&b, ".hero-bg {\n  background-color: var(--color-%s);\n", BrandColor)
	fmt.Fprintf(&b, "  background-image: url(%q);\n", HeroImagePath)
	b.WriteString("  background-position: center;\n  background-size: cover;\n}\n")

	b.WriteString(animation.CSS(animation.Presets()...))
	return b.String()
}

// TailwindConfig renders tailwind.config.js extending the default palette
func (t *Theme) TailwindConfig() (string, error) {
	content, err := json.MarshalIndent(t.Content, "  ", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode content globs: %w", err)
	}
	fonts, err := json.MarshalIndent(t.FontFamily, "      ", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode font families: %w", err)
	}
	colors, err := json.MarshalIndent(t.Colors, "      ", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode colors: %w", err)
	}

	var b strings.Builder
	b.WriteString("/** @type {import('tailwindcss').Config} */\n")
	b.WriteString("export default {\n")
	fmt.Fprintf(&b, "  content: %s,\n", content)
	b.WriteString("  theme: {\n    extend: {\n")
	fmt.Fprintf(&b, "      fontFamily: %s,\n", fonts)
	fmt.Fprintf(&b, "      colors: %s,\n", colors)
	b.WriteString("    },\n  },\n  plugins: [],\n}\n")
	return b.String(), nil
}

func fontStack(stack []string) string {
	quoted := make([]string, len(stack))
	for i, f := range stack {
		if strings.Contains(f, " ") {
			f = `"` + f + `"`
		}
		quoted[i] = f
	}
	return strings.Join(quoted, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
