//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"leafgrow/internal/tree"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type envelopeProvider interface {
	Envelope() tree.Envelope
}

type gestureProvider interface {
	Dragging() bool
	DragStartY() float64
}

// Overlay draws optional debugging visuals on top of the scene.
type Overlay struct {
	src          any
	scale        float64
	showEnvelope bool
	showGesture  bool
	pixel        *ebiten.Image
}

// NewOverlay constructs a new overlay reading from src.
func NewOverlay(src any, scale float64) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{src: src, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetScale updates the logical-to-pixel factor.
func (o *Overlay) SetScale(scale float64) {
	if scale > 0 {
		o.scale = scale
	}
}

// Update toggles layers: 1 shows the canopy envelope, 2 the drag start line.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showEnvelope = !o.showEnvelope
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGesture = !o.showGesture
	}
}

// Draw renders the enabled layers onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	s := o.scale
	if o.showEnvelope {
		if provider, ok := o.src.(envelopeProvider); ok {
			env := provider.Envelope()
			x1, y1 := float64(env.MinX)*s, float64(env.MinY)*s
			x2, y2 := float64(env.MaxX)*s, float64(env.MaxY)*s
			col := color.RGBA{R: 200, G: 40, B: 40, A: 200}
			o.drawLine(screen, x1, y1, x2, y1, s, col)
			o.drawLine(screen, x2, y1, x2, y2, s, col)
			o.drawLine(screen, x2, y2, x1, y2, s, col)
			o.drawLine(screen, x1, y2, x1, y1, s, col)
		}
	}
	if o.showGesture {
		if provider, ok := o.src.(gestureProvider); ok && provider.Dragging() {
			y := provider.DragStartY() * s
			w := float64(screen.Bounds().Dx())
			o.drawLine(screen, 0, y, w, y, s, color.RGBA{R: 40, G: 40, B: 200, A: 160})
		}
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
