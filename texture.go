package main

import (
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
)

// Texture constants
const (
	textureSize  = 128
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseScale   = 37.0 // pixels per noise unit
)

// palette returns the ten color presets a composition draws from, one per
// shape. Hue-spread, slightly muted so the noise shading stays visible.
func palette() []color.RGBA {
	hsv := [colorPresets][3]float64{
		{6, 0.60, 0.92},
		{28, 0.65, 0.95},
		{48, 0.62, 0.96},
		{95, 0.48, 0.80},
		{160, 0.52, 0.78},
		{188, 0.55, 0.88},
		{212, 0.50, 0.90},
		{252, 0.40, 0.88},
		{300, 0.38, 0.85},
		{335, 0.52, 0.92},
	}
	out := make([]color.RGBA, len(hsv))
	for i, p := range hsv {
		r, g, b := hsvToRGB(p[0], p[1], p[2])
		out[i] = color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 0xff}
	}
	return out
}

// buildTextures renders one noise-shaded tile per color preset. The noise is
// keyed off the seed, so rebuilding with the same seed reproduces the same
// grain along with the same layout.
func buildTextures(seed string) []*ebiten.Image {
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, int64(hashSeed(seed)))
	cols := palette()
	out := make([]*ebiten.Image, len(cols))
	pix := make([]byte, 4*textureSize*textureSize)

	for i, c := range cols {
		off := float64(i) * 13.7 // decorrelate the presets
		for y := 0; y < textureSize; y++ {
			for x := 0; x < textureSize; x++ {
				n := noise.Noise2D(off+float64(x)/noiseScale, float64(y)/noiseScale)
				shade := 0.85 + 0.2*n
				if shade > 1 {
					shade = 1
				}
				if shade < 0.6 {
					shade = 0.6
				}
				idx := 4 * (y*textureSize + x)
				pix[idx] = uint8(float64(c.R) * shade)
				pix[idx+1] = uint8(float64(c.G) * shade)
				pix[idx+2] = uint8(float64(c.B) * shade)
				pix[idx+3] = 0xff
			}
		}
		img := ebiten.NewImage(textureSize, textureSize)
		img.WritePixels(pix)
		out[i] = img
	}
	return out
}

// hsvToRGB helper
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
