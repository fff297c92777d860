package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{0x14, 0x15, 0x1c, 0xff}
	outlineColor    = color.RGBA{0x0e, 0x0e, 0x14, 0xff}
)

// camera maps world coordinates to screen pixels. World Y points up, screen
// Y points down, and one world unit of half-height spans half the window.
type camera struct {
	w, h  float64
	scale float64 // pixels per world unit
}

func newCamera(w, h int, halfY float64) camera {
	return camera{
		w:     float64(w),
		h:     float64(h),
		scale: float64(h) / (2 * halfY),
	}
}

func (c camera) toScreen(p Vec2) (float32, float32) {
	return float32(c.w/2 + p.X*c.scale), float32(c.h/2 - p.Y*c.scale)
}

func (c camera) toWorld(mx, my int) Vec2 {
	return Vec2{
		X: (float64(mx) - c.w/2) / c.scale,
		Y: (c.h/2 - float64(my)) / c.scale,
	}
}

// drawWorld paints the composition, bodies in placement order so later
// shapes sit on top.
func drawWorld(screen *ebiten.Image, w *World, cam camera, textures []*ebiten.Image) {
	screen.Fill(backgroundColor)
	for _, b := range w.Bodies {
		drawBody(screen, b, cam, textures[b.ColorIdx])
	}
}

// drawBody fills the body polygon with its noise tile and strokes the edge.
// Texture coordinates are taken in the body frame so the grain spins with
// the shape.
func drawBody(screen *ebiten.Image, b *Body, cam camera, tex *ebiten.Image) {
	verts := b.WorldVerts()

	var path vector.Path
	x0, y0 := cam.toScreen(verts[0])
	path.MoveTo(x0, y0)
	for _, v := range verts[1:] {
		x, y := cam.toScreen(v)
		path.LineTo(x, y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cx, cy := cam.toScreen(b.Pos)
	span := 2 * b.Shape.BoundingRadius * cam.scale
	sin, cos := math.Sincos(b.Rot)
	for i := range vs {
		dx := float64(vs[i].DstX - cx)
		dy := float64(cy - vs[i].DstY) // back to world up
		lx := dx*cos + dy*sin
		ly := -dx*sin + dy*cos
		u := clamp01(lx/span + 0.5)
		v := clamp01(0.5 - ly/span)
		vs[i].SrcX = float32(u * (textureSize - 1))
		vs[i].SrcY = float32(v * (textureSize - 1))
		vs[i].ColorR = 1
		vs[i].ColorG = 1
		vs[i].ColorB = 1
		vs[i].ColorA = 1
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, tex, op)

	width := float32(1.5)
	if b.Dragged {
		width = 3
	}
	px, py := cam.toScreen(verts[len(verts)-1])
	for _, v := range verts {
		x, y := cam.toScreen(v)
		vector.StrokeLine(screen, px, py, x, y, width, outlineColor, true)
		px, py = x, y
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
