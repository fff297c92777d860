package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const worldHalfY = 1.0 // vertical half-extent; horizontal follows the aspect

// Game wires the world and its driver into the Ebitengine loop: input,
// window geometry, drawing, and the control buttons.
type Game struct {
	world    *World
	driver   *Driver
	textures []*ebiten.Image
	buttons  []*Button
	cam      camera

	baseSeed     string
	rebuildCount int

	screenW, screenH int

	settings     Settings
	settingsPath string

	dragging bool
}

func NewGame(seed string, width, height int, settings Settings, settingsPath string) *Game {
	params := defaultParams()
	settings.apply(&params)

	world := NewWorld(seed, params)
	world.ColorExchange = settings.ColorExchange

	g := &Game{
		world:        world,
		driver:       NewDriver(world),
		textures:     buildTextures(seed),
		baseSeed:     seed,
		screenW:      width,
		screenH:      height,
		settings:     settings,
		settingsPath: settingsPath,
	}
	g.applyScreenSize(width, height)
	world.Rebuild(seed)

	g.buttons = []*Button{
		{Label: "pause", OnClick: g.togglePause},
		{Label: "rebuild", OnClick: g.rebuild},
		{Label: "colors: off", OnClick: g.toggleColors},
		{Label: "export", OnClick: g.export},
	}
	layoutButtons(g.buttons, g.screenH)
	return g
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	g.handleInput()
	g.driver.Advance(time.Now())
	g.refreshLabels()
	return nil
}

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.toggleColors()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.export()
	}

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !clickButtons(g.buttons, mx, my) {
		// Clicks that miss every button fall through to the scene.
		if id := g.world.StartDragAt(g.cam.toWorld(mx, my)); id >= 0 {
			g.dragging = true
		}
	}
	if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		// Update runs at a fixed tick rate, so one tick is the drag dt.
		g.world.DragTo(g.cam.toWorld(mx, my), 1.0/float64(ebiten.TPS()))
	}
	if g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.world.EndDrag()
		g.dragging = false
	}
}

func (g *Game) togglePause() {
	g.world.SetRunning(!g.world.Running)
}

// rebuild regenerates the composition under a fresh derived seed.
func (g *Game) rebuild() {
	g.rebuildCount++
	seed := fmt.Sprintf("%s-%d", g.baseSeed, g.rebuildCount)
	g.dragging = false
	g.world.Rebuild(seed)
	g.textures = buildTextures(seed)
	g.driver.Reset(time.Now())
}

func (g *Game) toggleColors() {
	g.world.ColorExchange = !g.world.ColorExchange
	g.settings.ColorExchange = g.world.ColorExchange
	if err := saveSettings(g.settingsPath, g.settings); err != nil {
		log.Printf("settings: %v", err)
	}
}

func (g *Game) export() {
	name, err := exportPNG(g.world, g.cam, g.textures, g.screenW, g.screenH)
	if err != nil {
		log.Printf("export: %v", err)
		return
	}
	log.Printf("exported %s", name)
}

// refreshLabels mirrors world state onto the stateful buttons.
func (g *Game) refreshLabels() {
	if g.world.Running {
		g.buttons[0].Label = "pause"
	} else {
		g.buttons[0].Label = "play"
	}
	if g.world.ColorExchange {
		g.buttons[2].Label = "colors: on"
	} else {
		g.buttons[2].Label = "colors: off"
	}
	layoutButtons(g.buttons, g.screenH)
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.world, g.cam, g.textures)

	mx, my := ebiten.CursorPosition()
	for _, b := range g.buttons {
		b.draw(screen, mx, my)
	}

	status := fmt.Sprintf("seed %q", g.world.Seed)
	if !g.world.Running {
		status += "  paused"
	}
	text.Draw(screen, status, basicfont.Face7x13, panelMargin, panelMargin+10, buttonText)
}

// Layout adopts the window size and recomputes the world bounds to match
// the new aspect. Bodies that fall outside are clamped back in.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.applyScreenSize(outsideWidth, outsideHeight)
		layoutButtons(g.buttons, g.screenH)
	}
	return outsideWidth, outsideHeight
}

// applyScreenSize recomputes the camera and the world bounds from a window
// size in pixels.
func (g *Game) applyScreenSize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.cam = newCamera(width, height, worldHalfY)
	aspect := float64(width) / float64(height)
	g.world.SetBounds(worldHalfY*aspect, worldHalfY)
}
