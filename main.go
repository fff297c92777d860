package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	seed := flag.String("seed", "", "composition seed (empty: derived from the clock)")
	width := flag.Int("width", 900, "window width in pixels")
	height := flag.Int("height", 700, "window height in pixels")
	colorSwap := flag.Bool("colorswap", false, "start with collision color exchange on")
	settingsPath := flag.String("settings", "shapepack.json", "settings file path")
	flag.Parse()

	if *seed == "" {
		*seed = fmt.Sprintf("shapes-%d", time.Now().UnixNano()%1000000)
	}

	settings := loadSettings(*settingsPath)
	if *colorSwap {
		settings.ColorExchange = true
	}

	game := NewGame(*seed, *width, *height, settings, *settingsPath)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Shape Pack")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
