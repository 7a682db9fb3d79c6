package window

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/board-engine/internal/core"
)

// LoadFace loads the Go Regular face at the given size.
func LoadFace(size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: failed to parse font: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

// ImageSurface draws onto an ebiten image.
type ImageSurface struct {
	img  *ebiten.Image
	face *text.GoTextFace
	lh   float64
}

var _ core.Surface = (*ImageSurface)(nil)

// NewImageSurface wraps img. Text is drawn with face.
func NewImageSurface(img *ebiten.Image, face *text.GoTextFace) *ImageSurface {
	m := face.Metrics()
	return &ImageSurface{
		img:  img,
		face: face,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}
}

// Image returns the underlying image.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

// Fill paints the whole image.
func (s *ImageSurface) Fill(c core.Color) {
	s.img.Fill(rgba(c))
}

// FillRect paints a rectangle clipped to the image bounds.
func (s *ImageSurface) FillRect(r core.Rect, c core.Color) {
	rect := image.Rect(r.X, r.Y, r.Right(), r.Bottom()).Intersect(s.img.Bounds())
	if rect.Empty() {
		return
	}
	s.img.SubImage(rect).(*ebiten.Image).Fill(rgba(c))
}

// DrawString draws text with its top-left corner at (x, y).
func (s *ImageSurface) DrawString(x, y int, str string, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(rgba(c))
	op.LineSpacing = s.lh
	text.Draw(s.img, str, s.face, op)
}

// MeasureString returns the pixel size of str.
func (s *ImageSurface) MeasureString(str string) (int, int) {
	w, h := text.Measure(str, s.face, s.lh)
	return int(w), int(h)
}

func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
