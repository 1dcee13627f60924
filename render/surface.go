package render

import "image/color"

// LineCap selects how stroke ends are drawn.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

// Surface is the drawing target the sequencer renders onto.
type Surface interface {
	Size() (w, h float64)
	Clear(c color.Color)
	StrokeLine(x0, y0, x1, y1 float64, width float32, c color.Color, lineCap LineCap)
}

// Style holds the drawing parameters for the glyph row.
type Style struct {
	Background color.Color
	Stroke     color.Color
	// StrokeDivisor divides min(w, h) to get the stroke width.
	StrokeDivisor float64
	Cap           LineCap
	// Ease maps a node scale to the scale used for drawing. Nil means linear.
	Ease func(float64) float64
}

func DefaultStyle() Style {
	return Style{
		Background:    color.NRGBA{R: 0xBD, G: 0xBD, B: 0xBD, A: 0xFF},
		Stroke:        color.NRGBA{R: 0xEF, G: 0x53, B: 0x50, A: 0xFF},
		StrokeDivisor: 60,
		Cap:           CapRound,
	}
}

// withDefaults fills zero fields from DefaultStyle.
func (s Style) withDefaults() Style {
	def := DefaultStyle()
	if s.Background == nil {
		s.Background = def.Background
	}
	if s.Stroke == nil {
		s.Stroke = def.Stroke
	}
	if s.StrokeDivisor <= 0 {
		s.StrokeDivisor = def.StrokeDivisor
	}
	return s
}
