package tree

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"leafgrow/internal/core"
)

// ColorStrategy picks a leaf color.
type ColorStrategy interface {
	Pick(rng *core.RNG) color.RGBA
}

// FixedColor always yields the same color.
type FixedColor struct {
	C color.RGBA
}

// Pick implements ColorStrategy.
func (f FixedColor) Pick(*core.RNG) color.RGBA { return f.C }

// PaletteChoice picks uniformly from a fixed list of colors.
type PaletteChoice []color.RGBA

// Pick implements ColorStrategy. An empty palette yields opaque black.
func (p PaletteChoice) Pick(rng *core.RNG) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{A: 0xff}
	}
	if len(p) == 1 {
		return p[0]
	}
	return p[rng.Pick(len(p))]
}

// ProceduralRange synthesises a color with each channel drawn from its own
// inclusive range.
type ProceduralRange struct {
	R, G, B [2]uint8
}

// Pick implements ColorStrategy.
func (p ProceduralRange) Pick(rng *core.RNG) color.RGBA {
	return color.RGBA{
		R: rng.Uint8Range(p.R[0], p.R[1]),
		G: rng.Uint8Range(p.G[0], p.G[1]),
		B: rng.Uint8Range(p.B[0], p.B[1]),
		A: 0xff,
	}
}

// Contains reports whether c lies within every channel range.
func (p ProceduralRange) Contains(c color.RGBA) bool {
	in := func(v uint8, r [2]uint8) bool {
		lo, hi := r[0], r[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		return v >= lo && v <= hi
	}
	return in(c.R, p.R) && in(c.G, p.G) && in(c.B, p.B) && c.A == 0xff
}

// PaletteTable maps levels to color strategies. Levels[0] serves level 1;
// levels past the end of the table use Fallback.
type PaletteTable struct {
	Levels   []ColorStrategy
	Fallback ColorStrategy
}

// For returns the strategy for the given level.
func (t PaletteTable) For(level int) ColorStrategy {
	if level >= 1 && level <= len(t.Levels) {
		return t.Levels[level-1]
	}
	return t.Fallback
}

var (
	// DarkGreen is the single level-one leaf color.
	DarkGreen = color.RGBA{R: 0x00, G: 0x64, B: 0x00, A: 0xff}

	// Greens is the level-two palette.
	Greens = PaletteChoice{
		{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
		{R: 0x00, G: 0xcc, B: 0x00, A: 0xff},
		{R: 0x00, G: 0xaa, B: 0x00, A: 0xff},
		{R: 0x00, G: 0x99, B: 0x00, A: 0xff},
		{R: 0x33, G: 0xff, B: 0x33, A: 0xff},
		{R: 0x33, G: 0xff, B: 0x00, A: 0xff},
		{R: 0x00, G: 0xff, B: 0x33, A: 0xff},
	}

	// Foliage is the procedural strategy used past the end of the table.
	Foliage = ProceduralRange{R: [2]uint8{0, 100}, G: [2]uint8{150, 255}, B: [2]uint8{0, 100}}
)

// DefaultPalette returns the stock level table.
func DefaultPalette() PaletteTable {
	return PaletteTable{
		Levels:   []ColorStrategy{FixedColor{C: DarkGreen}, Greens},
		Fallback: Foliage,
	}
}

// StrategySpec is the YAML form of a ColorStrategy. Exactly one field must be
// set.
type StrategySpec struct {
	Fixed  string     `yaml:"fixed,omitempty"`
	Choice []string   `yaml:"choice,omitempty"`
	Range  *RangeSpec `yaml:"range,omitempty"`
}

// RangeSpec holds inclusive [min, max] bounds per channel.
type RangeSpec struct {
	R []int `yaml:"r"`
	G []int `yaml:"g"`
	B []int `yaml:"b"`
}

// Build converts the YAML entry into a strategy.
func (s StrategySpec) Build() (ColorStrategy, error) {
	set := 0
	if s.Fixed != "" {
		set++
	}
	if len(s.Choice) > 0 {
		set++
	}
	if s.Range != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("palette entry must set exactly one of fixed, choice or range (got %d)", set)
	}

	switch {
	case s.Fixed != "":
		c, err := ParseHexColor(s.Fixed)
		if err != nil {
			return nil, err
		}
		return FixedColor{C: c}, nil
	case len(s.Choice) > 0:
		p := make(PaletteChoice, 0, len(s.Choice))
		for _, hex := range s.Choice {
			c, err := ParseHexColor(hex)
			if err != nil {
				return nil, err
			}
			p = append(p, c)
		}
		return p, nil
	default:
		var out ProceduralRange
		channels := []struct {
			name string
			in   []int
			dst  *[2]uint8
		}{{"r", s.Range.R, &out.R}, {"g", s.Range.G, &out.G}, {"b", s.Range.B, &out.B}}
		for _, ch := range channels {
			if len(ch.in) != 2 {
				return nil, fmt.Errorf("range channel %s needs [min, max], got %v", ch.name, ch.in)
			}
			for i, v := range ch.in {
				if v < 0 || v > 255 {
					return nil, fmt.Errorf("range channel %s value %d out of [0,255]", ch.name, v)
				}
				ch.dst[i] = uint8(v)
			}
		}
		return out, nil
	}
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
