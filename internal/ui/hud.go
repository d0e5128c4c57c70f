//go:build ebiten

package ui

import (
	"image/color"

	"leafgrow/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD draws the score and level readouts, the level-up banner and the
// optional debug panel.
type HUD struct {
	Score  *Label
	Level  *Label
	Banner *Banner

	params    parameterProvider
	scale     float64
	showDebug bool

	layer *ebiten.Image
	pixel *ebiten.Image

	bannerImg  *ebiten.Image
	bannerText string
}

// NewHUD constructs a HUD reading debug values from params. scale converts
// logical units to pixels.
func NewHUD(params parameterProvider, scale float64) *HUD {
	if scale <= 0 {
		scale = 1
	}
	h := &HUD{
		Score:  NewLabel("Score"),
		Level:  NewLabel("Level"),
		Banner: NewBanner(),
		params: params,
		scale:  scale,
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// SetScale updates the logical-to-pixel factor.
func (h *HUD) SetScale(scale float64) {
	if scale > 0 {
		h.scale = scale
	}
}

// SetDebug shows or hides the debug panel.
func (h *HUD) SetDebug(on bool) { h.showDebug = on }

// ToggleDebug flips the debug panel.
func (h *HUD) ToggleDebug() { h.showDebug = !h.showDebug }

// Update advances animations by dt seconds.
func (h *HUD) Update(dt float32) {
	if h == nil {
		return
	}
	h.Banner.Update(dt)
}

// Draw paints the HUD over the scene. Text is rendered at logical size on an
// offscreen layer and scaled up so it stays legible on dense displays.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	b := screen.Bounds()
	lw := int(float64(b.Dx()) / h.scale)
	lh := int(float64(b.Dy()) / h.scale)
	if lw <= 0 || lh <= 0 {
		return
	}
	if h.layer == nil || h.layer.Bounds().Dx() != lw || h.layer.Bounds().Dy() != lh {
		h.layer = ebiten.NewImage(lw, lh)
	}
	h.layer.Clear()

	face := basicfont.Face7x13
	ink := color.RGBA{R: 20, G: 60, B: 20, A: 255}
	text.Draw(h.layer, h.Score.String(), face, panelPadding, panelPadding+headerBaseline, ink)
	text.Draw(h.layer, h.Level.String(), face, panelPadding, panelPadding+headerBaseline+lineHeight, ink)

	if h.showDebug && h.params != nil {
		h.drawDebug(lw)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(h.scale, h.scale)
	screen.DrawImage(h.layer, op)

	if h.Banner.Active() {
		h.drawBanner(screen, lw, lh)
	}
}

func (h *HUD) drawDebug(width int) {
	face := basicfont.Face7x13
	snap := h.params.Parameters()
	rows := 0
	for _, g := range snap.Groups {
		rows += 1 + len(g.Params)
	}
	panelW := debugPanelWidth
	panelH := panelPadding*2 + rows*lineHeight
	left := width - panelW - panelPadding
	if left < 0 {
		left = 0
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(panelW), float64(panelH))
	op.GeoM.Translate(float64(left), float64(panelPadding))
	op.ColorScale.Scale(16.0/255, 16.0/255, 20.0/255, 200.0/255)
	h.layer.DrawImage(h.pixel, op)

	y := panelPadding*2 + headerBaseline - lineHeight/2
	for _, g := range snap.Groups {
		text.Draw(h.layer, g.Name, face, left+panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += lineHeight
		for _, p := range g.Params {
			text.Draw(h.layer, p.Label, face, left+panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.layer, p.Value, face, left+panelW-panelPadding-bounds.Dx(), y, color.RGBA{R: 160, G: 230, B: 160, A: 255})
			y += lineHeight
		}
	}
}

func (h *HUD) drawBanner(screen *ebiten.Image, width, height int) {
	face := basicfont.Face7x13
	msg := h.Banner.Text()
	bounds := text.BoundString(face, msg)
	if h.bannerImg == nil || h.bannerText != msg {
		if h.bannerImg != nil {
			h.bannerImg.Dispose()
		}
		h.bannerImg = ebiten.NewImage(bounds.Dx()+2, bounds.Dy()+2)
		text.Draw(h.bannerImg, msg, face, -bounds.Min.X+1, -bounds.Min.Y+1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		h.bannerText = msg
	}

	zoom := h.scale * bannerZoom
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	x := (float64(width)*h.scale - float64(bounds.Dx())*zoom) / 2
	y := float64(height)*h.scale/3 - float64(h.Banner.Offset())*h.scale
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(h.Banner.Alpha())
	screen.DrawImage(h.bannerImg, op)
}

const (
	panelPadding    = 12
	lineHeight      = 16
	headerBaseline  = 10
	debugPanelWidth = 220
	bannerZoom      = 4
)
