//go:build !ebiten

package ui

// HUD keeps the readouts and banner available in headless builds; drawing is
// a no-op.
type HUD struct {
	Score  *Label
	Level  *Label
	Banner *Banner
}

// NewHUD returns a HUD without a drawing layer.
func NewHUD(any, float64) *HUD {
	return &HUD{Score: NewLabel("Score"), Level: NewLabel("Level"), Banner: NewBanner()}
}

// Update advances the banner animation.
func (h *HUD) Update(dt float32) { h.Banner.Update(dt) }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
