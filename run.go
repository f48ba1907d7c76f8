package bough

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Resizable lets the user resize the window. Every resize lays the scene
	// out again.
	Resizable bool
	// Debug turns on the scene's debug mode. When false, Run leaves the
	// scene's current mode alone.
	Debug bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene        *Scene
	lastW, lastH int
}

func (g *game) Update() error {
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout resizes the scene root whenever the outside size changes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.lastW || outsideHeight != g.lastH {
		g.lastW, g.lastH = outsideWidth, outsideHeight
		g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs the scene until the window closes or the
// update callback returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if err := cfg.prepare(scene); err != nil {
		return err
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(&game{scene: scene}); err != nil {
		return fmt.Errorf("bough: run: %w", err)
	}
	return nil
}

// prepare validates cfg and applies its scene settings.
func (cfg RunConfig) prepare(scene *Scene) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("bough: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	return nil
}
