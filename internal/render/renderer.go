// Package render draws the tree scene onto an abstract canvas.
package render

import (
	"image/color"
	"strconv"
	"strings"

	"leafgrow/internal/core"
	"leafgrow/internal/tree"
)

// Canvas is a 2D drawing surface addressed in logical (device-independent)
// coordinates.
type Canvas interface {
	Size() core.Size
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
}

// Readout is a text display the renderer keeps in sync with a number.
type Readout interface {
	Text() string
	SetText(string)
}

// Scene is the state the renderer reads each frame.
type Scene interface {
	Background() color.RGBA
	TrunkColor() color.RGBA
	Trunk() (x, y, w, h float64)
	Leaves() []tree.Leaf
	Score() int
	Level() int
}

// Renderer draws frames and updates the score and level readouts.
type Renderer struct {
	Score Readout
	Level Readout
}

// Draw paints background, trunk and leaves in that order, then syncs the
// readouts.
func (r *Renderer) Draw(c Canvas, s Scene) {
	size := c.Size()
	c.Clear()
	c.FillRect(0, 0, float64(size.W), float64(size.H), s.Background())

	x, y, w, h := s.Trunk()
	c.FillRect(x, y, w, h, s.TrunkColor())

	for _, leaf := range s.Leaves() {
		c.FillCircle(leaf.X, leaf.Y, leaf.Radius, leaf.Color)
	}

	SyncReadout(r.Score, s.Score())
	SyncReadout(r.Level, s.Level())
}

// SyncReadout writes v to the readout only when its displayed integer value
// differs. It reports whether a write happened.
func SyncReadout(r Readout, v int) bool {
	if r == nil {
		return false
	}
	if shown, err := strconv.Atoi(strings.TrimSpace(r.Text())); err == nil && shown == v {
		return false
	}
	r.SetText(strconv.Itoa(v))
	return true
}
