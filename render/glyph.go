package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/steptoline/common"
)

// Segment is a line segment in surface coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Layout is the per-node geometry derived from the surface size.
type Layout struct {
	Gap         float64
	Size        float64
	StrokeWidth float32
}

// NewLayout computes slot spacing for n nodes on a w×h surface.
func NewLayout(w, h float64, n int, strokeDivisor float64) Layout {
	if n < 1 {
		n = 1
	}
	if strokeDivisor <= 0 {
		strokeDivisor = DefaultStyle().StrokeDivisor
	}
	short := math.Min(w, h)
	return Layout{
		Gap:         h / float64(n+1),
		Size:        short / float64(n+1) / 3,
		StrokeWidth: float32(short / strokeDivisor),
	}
}

// NodeTransform translates to the vertical slot of node i.
func (l Layout) NodeTransform(w float64, i int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(w/2, l.Gap+float64(i)*l.Gap)
	return g
}

// GlyphSegments returns the two strokes of node i at the given scale.
// At scale 0 the strokes cross at ±45°, at scale 1 they collapse into a
// single vertical line. The first stroke straightens over [0, 0.5], the
// second over [0.5, 1].
func GlyphSegments(l Layout, w float64, i int, scale float64) [2]Segment {
	base := l.NodeTransform(w, i)
	var segs [2]Segment
	for j := 0; j < 2; j++ {
		sf := 1.0 - 2*float64(j%2)
		sc := common.Clamp(scale-float64(j)*0.5, 0, 0.5) * 2

		var g ebiten.GeoM
		g.Rotate(common.Radians(45 * sf * (1 - sc)))
		g.Concat(base)

		x0, y0 := g.Apply(0, -l.Size)
		x1, y1 := g.Apply(0, l.Size)
		segs[j] = Segment{X0: x0, Y0: y0, X1: x1, Y1: y1}
	}
	return segs
}

// DrawGlyph strokes node i onto s.
func DrawGlyph(s Surface, style Style, n, i int, scale float64) {
	style = style.withDefaults()
	if style.Ease != nil {
		scale = common.Clamp(style.Ease(scale), 0, 1)
	}
	w, h := s.Size()
	l := NewLayout(w, h, n, style.StrokeDivisor)
	for _, seg := range GlyphSegments(l, w, i, scale) {
		s.StrokeLine(seg.X0, seg.Y0, seg.X1, seg.Y1, l.StrokeWidth, style.Stroke, style.Cap)
	}
}

// Clear fills s with the style background.
func Clear(s Surface, style Style) {
	s.Clear(style.withDefaults().Background)
}
