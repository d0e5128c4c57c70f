//go:build ebiten

package app

import (
	"leafgrow/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// samplePointer reads the first active touch, falling back to the left mouse
// button. Positions are converted from pixels to logical units.
func samplePointer(scale float64) input.Sample {
	if scale <= 0 {
		scale = 1
	}
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return input.Sample{Pressed: true, X: float64(x) / scale, Y: float64(y) / scale, Touch: true}
	}
	x, y := ebiten.CursorPosition()
	return input.Sample{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       float64(x) / scale,
		Y:       float64(y) / scale,
	}
}
