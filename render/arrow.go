package render

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/vector"
)

// riseArrowSize is the arrow glyph's bounding box in pixels.
const riseArrowSize = 8

// riseArrowImage is a small upward-pointing triangle, anti-aliased via
// golang.org/x/image/vector.Rasterizer and cached as a single white-on-
// transparent image tinted per draw by ebiten's color scale.
var (
	riseArrowOnce  sync.Once
	riseArrowCache *ebiten.Image
)

func riseArrowImage() *ebiten.Image {
	riseArrowOnce.Do(func() {
		const n = riseArrowSize
		r := vector.NewRasterizer(n, n)
		r.MoveTo(n/2, 0)
		r.LineTo(n, n)
		r.LineTo(0, n)
		r.ClosePath()
		alpha := image.NewAlpha(image.Rect(0, 0, n, n))
		r.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

		rgba := image.NewNRGBA(alpha.Bounds())
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				a := alpha.AlphaAt(x, y).A
				rgba.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: a})
			}
		}
		riseArrowCache = ebiten.NewImageFromImage(rgba)
	})
	return riseArrowCache
}

// drawRiseArrow draws the cached arrow glyph tinted c, tip at (x, yTip).
func drawRiseArrow(dst *ebiten.Image, x, yTip float64, c [4]float32) {
	img := riseArrowImage()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-riseArrowSize/2, yTip)
	op.ColorScale.Scale(c[0], c[1], c[2], c[3])
	dst.DrawImage(img, op)
}
