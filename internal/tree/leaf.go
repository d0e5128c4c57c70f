package tree

import (
	"image/color"
	"math"

	"leafgrow/internal/core"
)

// Leaf is a filled circle in the canopy. Leaves are never mutated after
// creation; the whole collection is replaced on regeneration.
type Leaf struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
}

// Envelope is the integer rectangle leaf centres are drawn from. Bounds are
// inclusive and always ordered.
type Envelope struct {
	MinX, MaxX int
	MinY, MaxY int
}

// CanopyEnvelope computes the placement envelope for a canvas of the given
// size. The canopy diameter is ratio*width; horizontally it spans
// [width-diameter, diameter] and vertically the diameter above the trunk top.
// When the horizontal bounds cross they are swapped.
func CanopyEnvelope(size core.Size, trunkHeight, ratio float64) Envelope {
	w, h := float64(size.W), float64(size.H)
	diameter := w * ratio
	minX, maxX := intBounds(w-diameter, diameter)
	minY, maxY := intBounds(h-trunkHeight-diameter, h-trunkHeight)
	return Envelope{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// intBounds orders a and b and narrows them to the integers they enclose.
func intBounds(a, b float64) (int, int) {
	if a > b {
		a, b = b, a
	}
	lo, hi := int(math.Ceil(a)), int(math.Floor(b))
	if lo > hi {
		hi = lo
	}
	return lo, hi
}

// Contains reports whether (x, y) lies inside the envelope.
func (e Envelope) Contains(x, y float64) bool {
	return x >= float64(e.MinX) && x <= float64(e.MaxX) && y >= float64(e.MinY) && y <= float64(e.MaxY)
}

// LeafCount is the rendered population for a real-valued target.
func LeafCount(numLeaves float64) int {
	if numLeaves <= 0 {
		return 0
	}
	return int(math.Floor(numLeaves))
}

// GenerateLeaves builds count leaves with integer positions inside env, an
// integer radius in [radiusMin, radiusMax] and a color from strategy.
func GenerateLeaves(rng *core.RNG, count int, env Envelope, radiusMin, radiusMax int, strategy ColorStrategy) []Leaf {
	if count <= 0 {
		return nil
	}
	leaves := make([]Leaf, count)
	for i := range leaves {
		leaves[i] = Leaf{
			X:      float64(rng.IntRange(env.MinX, env.MaxX)),
			Y:      float64(rng.IntRange(env.MinY, env.MaxY)),
			Radius: float64(rng.IntRange(radiusMin, radiusMax)),
			Color:  strategy.Pick(rng),
		}
	}
	return leaves
}
