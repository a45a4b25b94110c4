package canopy

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds optional configuration for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the window size. Defaults to 640x480 if zero.
	Width, Height int
	// Resizable lets the user resize the window. The document follows the
	// window size through EventResized.
	Resizable bool
	// ShowFPS adds a small FPS/TPS label on a surface called "fps".
	ShowFPS bool
	// Language selects the active language before the first frame. Empty
	// keeps the document's current language.
	Language string
	// TPS sets the update rate. Defaults to ebiten.DefaultTPS if zero.
	TPS int
	// Script, when set, drives injected input every tick.
	Script *TestRunner
}

// Game adapts a Document to ebiten.Game: input is polled and pushed as
// events, then the document is updated and drawn.
type Game struct {
	doc      *Document
	input    *InputPoller
	script   *TestRunner
	renderer *EbitenRenderer
	dt       float64
	width    int
	height   int
}

// NewGame wraps doc for use with ebiten.RunGame. tps is the expected update
// rate; values <= 0 mean ebiten.DefaultTPS.
func NewGame(doc *Document, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &Game{
		doc:      doc,
		input:    NewInputPoller(),
		renderer: NewEbitenRenderer(nil),
		dt:       1 / float64(tps),
	}
}

// Input returns the poller feeding the document, e.g. to inject events.
func (g *Game) Input() *InputPoller {
	return g.input
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.script != nil {
		g.script.Step(g.input)
	}
	g.input.Poll()
	for {
		ev, ok := g.input.PollEvent()
		if !ok {
			break
		}
		g.doc.PushEvent(ev)
	}
	g.doc.Update(g.dt)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Target = screen
	g.doc.Draw(g.renderer)
}

// Layout implements ebiten.Game. A size change is delivered to the
// document as EventResized.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.doc.PushEvent(Resized(outsideWidth, outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run is a convenience entry point that creates a window and runs doc until
// the window closes.
func Run(doc *Document, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.Language != "" {
		doc.SetLanguage(cfg.Language)
	}
	if cfg.ShowFPS {
		doc.Surface("fps").Attach(NewFPSLabel())
	}

	g := NewGame(doc, cfg.TPS)
	g.script = cfg.Script
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
