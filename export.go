package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// exportPNG renders the composition without UI chrome into an offscreen
// image and writes it to the working directory. Returns the file name.
func exportPNG(w *World, cam camera, textures []*ebiten.Image, width, height int) (string, error) {
	off := ebiten.NewImage(width, height)
	drawWorld(off, w, cam, textures)

	pix := make([]byte, 4*width*height)
	off.ReadPixels(pix)
	off.Deallocate()

	img := &image.RGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
	name := fmt.Sprintf("shapepack-%s-%s.png",
		sanitizeSeed(w.Seed), time.Now().Format("20060102-150405"))

	f, err := os.Create(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", err
	}
	return name, nil
}

// sanitizeSeed keeps the seed usable as a file name fragment.
func sanitizeSeed(seed string) string {
	var sb strings.Builder
	for _, r := range seed {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	if sb.Len() == 0 {
		return "seed"
	}
	return sb.String()
}
