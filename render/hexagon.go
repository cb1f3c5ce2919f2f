package render

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whitePixelOnce sync.Once
	whitePixel     *ebiten.Image
)

// whitePixelImage returns the shared 1x1 opaque white image used as the
// source texture for untextured triangle fills.
func whitePixelImage() *ebiten.Image {
	whitePixelOnce.Do(func() {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	})
	return whitePixel
}

// buildHexagonFan builds the fan-triangulated vertex/index pair for a wide
// signal row's transition hexagon: left and right half-chevrons joining a
// flat middle section, filled with a single solid color. Fan-triangulated
// with vertex 0 as the hub (N vertices, 3*(N-2) indices) over a fixed
// hexagonal point set.
func buildHexagonFan(x0, x1, yTop, yBottom float64, transitionWidth float64, c color.RGBA) ([]ebiten.Vertex, []uint16) {
	chevron := transitionWidth
	if chevron > (x1-x0)/2 {
		chevron = (x1 - x0) / 2
	}
	midY := (yTop + yBottom) / 2
	points := [][2]float64{
		{x0, midY},
		{x0 + chevron, yTop},
		{x1 - chevron, yTop},
		{x1, midY},
		{x1 - chevron, yBottom},
		{x0 + chevron, yBottom},
	}
	n := len(points)
	verts := make([]ebiten.Vertex, n)
	cr := float32(c.R) / 255
	cg := float32(c.G) / 255
	cb := float32(c.B) / 255
	ca := float32(c.A) / 255
	for i, p := range points {
		verts[i] = ebiten.Vertex{
			DstX: float32(p[0]), DstY: float32(p[1]),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	inds := make([]uint16, (n-2)*3)
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return verts, inds
}

// drawHexagon fills a transition hexagon directly onto dst.
func drawHexagon(dst *ebiten.Image, x0, x1, yTop, yBottom, transitionWidth float64, c color.RGBA) {
	if x1 <= x0 {
		return
	}
	verts, inds := buildHexagonFan(x0, x1, yTop, yBottom, transitionWidth, c)
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles(verts, inds, whitePixelImage(), &op)
}
