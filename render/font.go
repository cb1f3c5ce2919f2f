package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// MonoFont wraps a monospace TrueType face for tick labels, variable
// names, and translated values: a GoTextFace-backed load-and-measure
// shape narrowed to the one font this renderer ever loads.
type MonoFont struct {
	face *text.GoTextFace
	lh   float64
}

// LoadMonoFont parses TTF/OTF data at the given point size.
func LoadMonoFont(ttfData []byte, size float64) (*MonoFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("render: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &MonoFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// LineHeight returns the vertical distance between baselines.
func (f *MonoFont) LineHeight() float64 { return f.lh }

// drawText draws s at (x, y) (baseline top-left) in c, used for tick
// labels, translated values, and marker/variable names. When f is nil (no
// host TTF supplied), falls back to golang.org/x/image/font/basicfont's
// fixed-width face rather than drawing nothing.
func drawText(dst *ebiten.Image, s string, f *MonoFont, x, y float64, c [4]float32) {
	if s == "" {
		return
	}
	if f == nil {
		drawFallbackText(dst, s, x, y, c)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(c[0], c[1], c[2], c[3])
	text.Draw(dst, s, f.face, op)
}

// drawFallbackText rasterizes s with basicfont.Face7x13 onto a scratch
// image and blits it tinted by c, since basicfont has no ebiten text/v2
// binding of its own.
func drawFallbackText(dst *ebiten.Image, s string, x, y float64, c [4]float32) {
	face := basicfont.Face7x13
	width := len(s) * face.Advance
	if width <= 0 {
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, width, face.Height))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	d.DrawString(s)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(c[0], c[1], c[2], c[3])
	dst.DrawImage(ebiten.NewImageFromImage(img), op)
}
