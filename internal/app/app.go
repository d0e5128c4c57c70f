//go:build ebiten

package app

import (
	"log"
	"time"

	"leafgrow/internal/core"
	"leafgrow/internal/render"
	"leafgrow/internal/tree"
	"leafgrow/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the tree simulator to the ebiten.Game interface.
type Game struct {
	session *Session
	hud     *ui.HUD
	overlay *ui.Overlay

	size  core.Size
	scale float64
}

// New constructs a Game for the provided simulator running at tps.
func New(sim *tree.Simulator, tps int, debug bool) *Game {
	scale := ebiten.DeviceScaleFactor()
	hud := ui.NewHUD(sim, scale)
	hud.SetDebug(debug)
	return &Game{
		session: NewSession(sim, hud, core.StepDuration(tps), log.Default()),
		hud:     hud,
		overlay: ui.NewOverlay(sim, scale),
		size:    sim.Size(),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset(g.session.Sim().Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.hud.ToggleDebug()
	}
	g.overlay.Update()

	g.session.Step(samplePointer(g.scale))
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	canvas := render.NewScreenCanvas(screen, g.size, g.scale)
	g.session.Renderer().Draw(canvas, g.session.Sim())
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout sizes the canvas to the window in logical units and returns the
// pixel resolution for the device scale factor.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.DeviceScaleFactor()
	if scale != g.scale {
		g.scale = scale
		g.hud.SetScale(scale)
		g.overlay.SetScale(scale)
	}
	g.size = core.Size{W: outsideWidth, H: outsideHeight}
	g.session.Resize(g.size)
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}
