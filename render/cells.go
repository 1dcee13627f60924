package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// cellAspect is the height of a terminal cell in surface units, relative to
// a width of 1.
const cellAspect = 2.0

// CellScreen is the subset of tcell.Screen a CellSurface draws onto.
type CellScreen interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// CellSurface rasterises strokes into terminal cells. One cell spans one
// unit horizontally and cellAspect units vertically.
type CellSurface struct {
	Screen CellScreen
	Glyph  rune

	bg tcell.Color
}

func NewCellSurface(screen CellScreen) *CellSurface {
	return &CellSurface{Screen: screen, Glyph: '█', bg: tcell.ColorDefault}
}

func (s *CellSurface) Size() (float64, float64) {
	cols, rows := s.Screen.Size()
	return float64(cols), float64(rows) * cellAspect
}

func (s *CellSurface) Clear(c color.Color) {
	s.bg = TcellColor(c)
	cols, rows := s.Screen.Size()
	style := tcell.StyleDefault.Background(s.bg)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s.Screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// StrokeLine plots the segment by sampling it at half-cell intervals. Stroke
// width and caps are ignored; every stroke is one cell thick.
func (s *CellSurface) StrokeLine(x0, y0, x1, y1 float64, _ float32, c color.Color, _ LineCap) {
	cols, rows := s.Screen.Size()
	style := tcell.StyleDefault.Foreground(TcellColor(c)).Background(s.bg)

	dx, dy := x1-x0, (y1-y0)/cellAspect
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) * 2))
	if steps < 1 {
		steps = 1
	}
	for k := 0; k <= steps; k++ {
		t := float64(k) / float64(steps)
		cx := int(math.Floor(x0 + t*(x1-x0)))
		cy := int(math.Floor((y0 + t*(y1-y0)) / cellAspect))
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			continue
		}
		s.Screen.SetContent(cx, cy, s.Glyph, nil, style)
	}
}

// TcellColor converts c to a 24-bit tcell colour.
func TcellColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
