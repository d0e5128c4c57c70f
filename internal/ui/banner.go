package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BannerRise is how far, in logical pixels, the banner drifts upwards while
// fading out.
const BannerRise = 40

// Banner is a transient centred message that fades and rises after Show.
type Banner struct {
	text   string
	fade   *gween.Tween
	rise   *gween.Tween
	alpha  float32
	offset float32
	active bool
}

// NewBanner returns an inactive banner.
func NewBanner() *Banner {
	return &Banner{}
}

// Show restarts the animation with a new message lasting duration seconds.
func (b *Banner) Show(text string, duration float32) {
	b.text = text
	b.fade = gween.New(1, 0, duration, ease.InQuad)
	b.rise = gween.New(0, BannerRise, duration, ease.OutCubic)
	b.alpha = 1
	b.offset = 0
	b.active = true
}

// Update advances the animation by dt seconds.
func (b *Banner) Update(dt float32) {
	if !b.active {
		return
	}
	alpha, done := b.fade.Update(dt)
	offset, _ := b.rise.Update(dt)
	b.alpha = alpha
	b.offset = offset
	if done {
		b.active = false
		b.alpha = 0
	}
}

// Active reports whether the banner is still visible.
func (b *Banner) Active() bool { return b.active }

// Text returns the current message.
func (b *Banner) Text() string { return b.text }

// Alpha returns the current opacity in [0, 1].
func (b *Banner) Alpha() float32 { return b.alpha }

// Offset returns the current upward drift.
func (b *Banner) Offset() float32 { return b.offset }
