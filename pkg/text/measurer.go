// Package text provides the text-measurement capability consumed by the
// layout engine.
//
// The engine never shapes or draws text; it only needs line extents to
// derive the natural size of text leaves. Backends inject a Measurer;
// tests use the deterministic FixedMeasurer.
package text

import "strings"

// Line is the extent of one measured line of text.
type Line struct {
	Width  float64
	Height float64
}

// Measurer measures text for layout. Implementations must be pure: the
// same inputs always produce the same finite output, with no side effects.
type Measurer interface {
	// MeasureText breaks text into lines no wider than wrapWidth (a
	// non-positive wrapWidth disables wrapping) at the given font size and
	// returns each line's extent. Explicit newlines always break.
	MeasureText(text string, size float64, wrapWidth float64) []Line
}

// FixedMeasurer is a deterministic Measurer with uniform glyph advances.
// The zero value is unusable; use NewFixedMeasurer for sensible defaults.
type FixedMeasurer struct {
	// CharWidth is the advance of every rune at size 1.
	CharWidth float64
	// LineHeight is the line height at size 1.
	LineHeight float64
}

// NewFixedMeasurer returns a measurer with a 0.6 advance and 1.2 line
// height per unit of font size, roughly matching a monospace face.
func NewFixedMeasurer() *FixedMeasurer {
	return &FixedMeasurer{CharWidth: 0.6, LineHeight: 1.2}
}

// MeasureText implements Measurer with uniform advances.
func (m *FixedMeasurer) MeasureText(text string, size float64, wrapWidth float64) []Line {
	advance := m.CharWidth * size
	lineHeight := m.LineHeight * size
	widths := wrapText(text, wrapWidth, func(word string) float64 {
		return float64(len([]rune(word))) * advance
	}, advance)
	lines := make([]Line, len(widths))
	for i, w := range widths {
		lines[i] = Line{Width: w, Height: lineHeight}
	}
	return lines
}

// wrapText greedily breaks text into lines no wider than wrapWidth using
// the provided word measure and the advance of a single space. Explicit
// newlines always break. It returns one width per line; empty text yields
// a single zero-width line.
func wrapText(text string, wrapWidth float64, measure func(string) float64, spaceWidth float64) []float64 {
	var widths []float64
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			widths = append(widths, 0)
			continue
		}
		lineWidth := 0.0
		for _, word := range words {
			wordWidth := measure(word)
			sep := 0.0
			if lineWidth > 0 {
				sep = spaceWidth
			}
			if wrapWidth > 0 && lineWidth > 0 && lineWidth+sep+wordWidth > wrapWidth {
				widths = append(widths, lineWidth)
				lineWidth = wordWidth
				continue
			}
			lineWidth += sep + wordWidth
		}
		widths = append(widths, lineWidth)
	}
	return widths
}
