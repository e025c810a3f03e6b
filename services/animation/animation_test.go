package animation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStagger(t *testing.T) {
	assert.Equal(t, time.Duration(0), Stagger(0, DefaultStagger))
	assert.Equal(t, 200*time.Millisecond, Stagger(1, DefaultStagger))
	assert.Equal(t, 600*time.Millisecond, Stagger(3, DefaultStagger))
	assert.Equal(t, time.Duration(0), Stagger(-2, DefaultStagger))
}

func TestTransitionAt(t *testing.T) {
	tr := FadeUp.WithDelay(200 * time.Millisecond)

	t.Run("BeforeDelay", func(t *testing.T) {
		assert.Equal(t, tr.From, tr.At(0))
		assert.Equal(t, tr.From, tr.At(200*time.Millisecond))
	})

	t.Run("AfterEnd", func(t *testing.T) {
		assert.Equal(t, tr.To, tr.At(1200*time.Millisecond))
		assert.Equal(t, tr.To, tr.At(time.Hour))
	})

	t.Run("Midway", func(t *testing.T) {
		s := tr.At(700 * time.Millisecond)
		// ease-out cubic at p=0.5 is 0.875
		assert.InDelta(t, 0.875, s.Opacity, 1e-9)
		assert.InDelta(t, 50*0.125, s.OffsetY, 1e-9)
		assert.Equal(t, 0.0, s.OffsetX)
	})

	t.Run("OpacityNeverDecreases", func(t *testing.T) {
		prev := -1.0
		for ms := 0; ms <= 1400; ms += 25 {
			s := tr.At(time.Duration(ms) * time.Millisecond)
			assert.GreaterOrEqual(t, s.Opacity, prev)
			prev = s.Opacity
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, tr.At(333*time.Millisecond), tr.At(333*time.Millisecond))
	})

	t.Run("ZeroDuration", func(t *testing.T) {
		instant := Transition{From: State{Opacity: 0}, To: State{Opacity: 1}}
		assert.Equal(t, State{Opacity: 1}, instant.At(time.Nanosecond))
	})
}

func TestWithDelayDoesNotMutatePreset(t *testing.T) {
	_ = SlideRight.WithDelay(time.Second)
	assert.Equal(t, time.Duration(0), SlideRight.Delay)
}

func TestCSS(t *testing.T) {
	css := CSS(FadeUp, SlideRight)

	assert.Contains(t, css, `[data-reveal="fade-up"] {`)
	assert.Contains(t, css, "transform: translate(0px, 50px);")
	assert.Contains(t, css, `[data-reveal="fade-up"].is-visible {`)
	assert.Contains(t, css, "transition: opacity 1000ms "+easingCSS)
	assert.Contains(t, css, "transform: translate(-50px, 0px);")
	assert.Contains(t, css, "prefers-reduced-motion")
	assert.Contains(t, css, ".no-js [data-reveal]")
	assert.NotContains(t, css, `"fade-in"`)
	assert.Contains(t, css, "animation: none;")

	assert.Equal(t, css, CSS(FadeUp, SlideRight))
}

func TestCSSLoadKeyframes(t *testing.T) {
	css := CSS(FadeUp)

	assert.Contains(t, css, "@keyframes reveal-fade-up {")
	assert.Contains(t, css, "  0% { opacity: 0; transform: translate(0px, 50px); }")
	assert.Contains(t, css, "  50% { opacity: 0.875; transform: translate(0px, 6.25px); }")
	assert.Contains(t, css, "  100% { opacity: 1; transform: none; }")
	assert.Contains(t, css, `[data-reveal="fade-up"][data-reveal-trigger="load"] {`)
	assert.Contains(t, css, "animation: reveal-fade-up 1000ms linear both;")

	t.Run("StopsFollowAt", func(t *testing.T) {
		s := FadeUp.At(250 * time.Millisecond)
		line := fmt.Sprintf("  25%% { opacity: %s; transform: %s; }", formatFloat(s.Opacity), transform(s))
		assert.Contains(t, css, line)
	})

	t.Run("IgnoresDelay", func(t *testing.T) {
		assert.Equal(t, keyframes(FadeUp), keyframes(FadeUp.WithDelay(time.Second)))
	})
}
