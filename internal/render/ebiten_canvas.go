//go:build ebiten

package render

import (
	"image/color"

	"leafgrow/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScreenCanvas draws onto an ebiten image whose pixel size is the logical
// size multiplied by the device scale factor.
type ScreenCanvas struct {
	dst   *ebiten.Image
	size  core.Size
	scale float64
}

// NewScreenCanvas wraps dst. scale converts logical units into pixels.
func NewScreenCanvas(dst *ebiten.Image, size core.Size, scale float64) *ScreenCanvas {
	if scale <= 0 {
		scale = 1
	}
	return &ScreenCanvas{dst: dst, size: size, scale: scale}
}

// Size returns the logical canvas size.
func (c *ScreenCanvas) Size() core.Size { return c.size }

// Clear erases the whole image.
func (c *ScreenCanvas) Clear() { c.dst.Clear() }

// FillRect fills an axis-aligned rectangle.
func (c *ScreenCanvas) FillRect(x, y, w, h float64, col color.Color) {
	s := c.scale
	vector.DrawFilledRect(c.dst, float32(x*s), float32(y*s), float32(w*s), float32(h*s), col, true)
}

// FillCircle fills a circle.
func (c *ScreenCanvas) FillCircle(cx, cy, r float64, col color.Color) {
	s := c.scale
	vector.DrawFilledCircle(c.dst, float32(cx*s), float32(cy*s), float32(r*s), col, true)
}
