package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an ebiten image.
type EbitenSurface struct {
	Image     *ebiten.Image
	AntiAlias bool
}

func NewEbitenSurface(img *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{Image: img, AntiAlias: true}
}

func (s *EbitenSurface) Size() (float64, float64) {
	if s == nil || s.Image == nil {
		return 0, 0
	}
	b := s.Image.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *EbitenSurface) Clear(c color.Color) {
	if s == nil || s.Image == nil {
		return
	}
	s.Image.Fill(c)
}

func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1 float64, width float32, c color.Color, lineCap LineCap) {
	if s == nil || s.Image == nil {
		return
	}
	vector.StrokeLine(s.Image, float32(x0), float32(y0), float32(x1), float32(y1), width, c, s.AntiAlias)
	if lineCap == CapRound {
		r := width / 2
		vector.FillCircle(s.Image, float32(x0), float32(y0), r, c, s.AntiAlias)
		vector.FillCircle(s.Image, float32(x1), float32(y1), r, c, s.AntiAlias)
	}
}
