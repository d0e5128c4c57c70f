package app

import (
	"fmt"
	"log"
	"time"

	"leafgrow/internal/core"
	"leafgrow/internal/input"
	"leafgrow/internal/render"
	"leafgrow/internal/tree"
	"leafgrow/internal/ui"
)

// bannerSeconds is how long the level-up banner stays on screen.
const bannerSeconds = 1.5

// Session advances one simulator per frame: it feeds pointer samples through
// the drag tracker, runs the score clock and reacts to level changes.
type Session struct {
	sim      *tree.Simulator
	hud      *ui.HUD
	renderer *render.Renderer
	tracker  input.Tracker
	step     time.Duration
	logger   *log.Logger

	lastLevel int
}

// NewSession wires sim to hud. step is the simulated time per frame.
func NewSession(sim *tree.Simulator, hud *ui.HUD, step time.Duration, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		sim:       sim,
		hud:       hud,
		renderer:  &render.Renderer{Score: hud.Score, Level: hud.Level},
		step:      step,
		logger:    logger,
		lastLevel: sim.Level(),
	}
}

// Sim returns the simulator driven by the session.
func (s *Session) Sim() *tree.Simulator { return s.sim }

// Renderer returns the renderer bound to the HUD readouts.
func (s *Session) Renderer() *render.Renderer { return s.renderer }

// Step processes one frame of input and time.
func (s *Session) Step(p input.Sample) {
	s.tracker.Update(p, s.sim)
	s.sim.Advance(s.step)
	if level := s.sim.Level(); level != s.lastLevel {
		if level > s.lastLevel {
			s.logger.Printf("[Game] level up: level=%d type=%s", level, s.sim.LevelType())
			s.hud.Banner.Show(fmt.Sprintf("Level %d", level), bannerSeconds)
		}
		s.lastLevel = level
	}
	s.hud.Update(float32(s.step.Seconds()))
}

// Resize propagates a new logical canvas size.
func (s *Session) Resize(size core.Size) {
	if size == s.sim.Size() {
		return
	}
	s.logger.Printf("[Game] canvas resized to %dx%d", size.W, size.H)
	s.sim.SetSize(size)
}

// Reset restarts the simulator with seed and drops any held pointer.
func (s *Session) Reset(seed int64) {
	s.logger.Printf("[Game] reset with seed %d", seed)
	s.tracker.Reset()
	s.sim.Reset(seed)
	s.lastLevel = s.sim.Level()
}

// Stop cancels pending work before shutdown.
func (s *Session) Stop() {
	s.sim.Stop()
	s.tracker.Reset()
}
