package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FaceMeasurer measures text using a font.Face from golang.org/x/image.
//
// The face is rendered at a single design size; FaceMeasurer scales its
// metrics linearly to the requested layout size. That is exact for advance
// ratios and good enough for layout, which only needs line extents.
type FaceMeasurer struct {
	face       font.Face
	designSize float64
	lineHeight float64
}

// NewFaceMeasurer wraps the given face. A nil face falls back to the
// built-in basicfont face.
func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	height := fromFixed(metrics.Height)
	if height <= 0 {
		height = fromFixed(metrics.Ascent + metrics.Descent)
	}
	if height <= 0 {
		height = 1
	}
	return &FaceMeasurer{
		face:       face,
		designSize: fromFixed(metrics.Ascent + metrics.Descent),
		lineHeight: height,
	}
}

// MeasureText implements Measurer by scaling the face's advances to the
// requested size and greedily wrapping at word boundaries.
func (m *FaceMeasurer) MeasureText(text string, size float64, wrapWidth float64) []Line {
	scale := 1.0
	if m.designSize > 0 && size > 0 {
		scale = size / m.designSize
	}
	spaceWidth := fromFixed(font.MeasureString(m.face, " ")) * scale
	widths := wrapText(text, wrapWidth, func(word string) float64 {
		return fromFixed(font.MeasureString(m.face, word)) * scale
	}, spaceWidth)
	lineHeight := m.lineHeight * scale
	lines := make([]Line, len(widths))
	for i, w := range widths {
		lines[i] = Line{Width: w, Height: lineHeight}
	}
	return lines
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
