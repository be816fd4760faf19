package easel

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas is the drawing context handed to controls. Controls receive it only
// to issue draw calls and must not retain it beyond the call.
type Canvas interface {
	// Size returns the surface's pixel width and height.
	Size() (w, h float64)
	// Clear erases the whole surface to the background color.
	Clear()
	// FillRect draws a filled rectangle.
	FillRect(r Rect, c Color)
	// StrokeRect draws a rectangle outline with the given line width.
	StrokeRect(r Rect, c Color, width float64)
	// FillText draws s anchored at (x, y) with the given alignment.
	FillText(s string, x, y float64, h HAlign, v VAlign, c Color)
	// MeasureText returns the advance width of s in pixels.
	MeasureText(s string) float64
	// FontSize returns the current font's pixel size.
	FontSize() float64
}

const defaultFontSize = 13.0

// defaultFaceSource is the parsed Go Regular font, shared by every Screen.
var defaultFaceSource *text.GoTextFaceSource

func init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("easel: parse builtin font: " + err.Error())
	}
	defaultFaceSource = src
}

// Screen is the production Canvas backed by an *ebiten.Image.
type Screen struct {
	img        *ebiten.Image
	face       *text.GoTextFace
	Background Color
}

// NewScreen wraps img in a Canvas using the builtin font at the default size.
func NewScreen(img *ebiten.Image) *Screen {
	return &Screen{
		img:  img,
		face: &text.GoTextFace{Source: defaultFaceSource, Size: defaultFontSize},
	}
}

// Image returns the wrapped ebiten image.
func (s *Screen) Image() *ebiten.Image {
	return s.img
}

// Size returns the image's pixel dimensions.
func (s *Screen) Size() (w, h float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear fills the whole image with the background color.
func (s *Screen) Clear() {
	s.img.Fill(s.Background.toRGBA())
}

// FillRect draws a filled rectangle.
func (s *Screen) FillRect(r Rect, c Color) {
	vector.DrawFilledRect(s.img,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		c.toRGBA(), true)
}

// StrokeRect draws a rectangle outline.
func (s *Screen) StrokeRect(r Rect, c Color, width float64) {
	vector.StrokeRect(s.img,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		float32(width), c.toRGBA(), true)
}

// FillText draws a single line of text anchored at (x, y).
func (s *Screen) FillText(str string, x, y float64, h HAlign, v VAlign, c Color) {
	w, fh := text.Measure(str, s.face, s.face.Size)
	switch h {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	switch v {
	case AlignMiddle:
		y -= fh / 2
	case AlignBottom:
		y -= fh
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	text.Draw(s.img, str, s.face, op)
}

// MeasureText returns the advance width of str in pixels.
func (s *Screen) MeasureText(str string) float64 {
	w, _ := text.Measure(str, s.face, s.face.Size)
	return w
}

// FontSize returns the face's pixel size.
func (s *Screen) FontSize() float64 {
	return s.face.Size
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	}
}
