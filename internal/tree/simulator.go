package tree

import (
	"image/color"
	"time"

	"leafgrow/internal/core"
)

// LevelType selects how score is earned during a level.
type LevelType int

const (
	// LevelTime scores one point per tick while a drag is held.
	LevelTime LevelType = iota
	// LevelSize scores one point per tick only once the population reaches
	// the leaves threshold.
	LevelSize
)

func (t LevelType) String() string {
	switch t {
	case LevelTime:
		return "time"
	case LevelSize:
		return "size"
	default:
		return "unknown"
	}
}

// Simulator owns the whole growth state: leaf population, score and level,
// and the drag gesture. All methods must be called from one goroutine; the
// score timer runs on the simulator's own Clock inside Advance.
type Simulator struct {
	cfg        Config
	palette    PaletteTable
	background color.RGBA
	trunk      color.RGBA

	size  core.Size
	seed  int64
	rng   *core.RNG
	clock *core.Clock

	numLeaves  float64
	leaves     []Leaf
	level      int
	score      int
	levelType  LevelType
	dragging   bool
	dragStartY float64

	// pending is the single in-flight score tick, nil when idle.
	pending *core.Task
}

// New returns a simulator with the default configuration.
func New(size core.Size, seed int64) *Simulator {
	s, err := NewWithConfig(DefaultConfig(), size, seed)
	if err != nil {
		panic(err)
	}
	return s
}

// NewWithConfig validates cfg and returns a simulator with its initial leaf
// population already generated.
func NewWithConfig(cfg Config, size core.Size, seed int64) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.PaletteTable()
	if err != nil {
		return nil, err
	}
	bg, trunk := cfg.colors()
	s := &Simulator{
		cfg:        cfg,
		palette:    palette,
		background: bg,
		trunk:      trunk,
		size:       size,
		clock:      core.NewClock(),
	}
	s.Reset(seed)
	return s, nil
}

// Reset restores level one with the initial population and reseeds the RNG.
func (s *Simulator) Reset(seed int64) {
	s.cancelTick()
	s.seed = seed
	s.rng = core.NewRNG(seed)
	s.numLeaves = s.cfg.InitialLeaves
	s.level = 1
	s.score = 0
	s.levelType = LevelTime
	s.dragging = false
	s.dragStartY = 0
	s.regenerate()
}

// Stop ends any gesture and cancels the pending score tick.
func (s *Simulator) Stop() {
	s.dragging = false
	s.cancelTick()
}

// Advance moves the score timer forward by dt.
func (s *Simulator) Advance(dt time.Duration) {
	s.clock.Advance(dt)
}

// SetSize changes the canvas size and regenerates the population for the new
// canopy envelope.
func (s *Simulator) SetSize(size core.Size) {
	if size == s.size {
		return
	}
	s.size = size
	s.regenerate()
}

// Envelope returns the current leaf placement envelope.
func (s *Simulator) Envelope() Envelope {
	return CanopyEnvelope(s.size, s.cfg.TrunkHeight, s.cfg.CanopyRatio)
}

// Trunk returns the trunk rectangle: centred horizontally and resting on the
// bottom edge.
func (s *Simulator) Trunk() (x, y, w, h float64) {
	w, h = s.cfg.TrunkWidth, s.cfg.TrunkHeight
	return float64(s.size.W)/2 - w/2, float64(s.size.H) - h, w, h
}

// regenerate replaces the leaf collection to match numLeaves.
func (s *Simulator) regenerate() {
	if s.size.Empty() {
		s.leaves = nil
		return
	}
	s.leaves = GenerateLeaves(
		s.rng,
		LeafCount(s.numLeaves),
		s.Envelope(),
		s.cfg.LeafRadiusMin,
		s.cfg.LeafRadiusMax,
		s.palette.For(s.level),
	)
}

// Config returns the configuration the simulator was built with.
func (s *Simulator) Config() Config { return s.cfg }

// Size returns the logical canvas size.
func (s *Simulator) Size() core.Size { return s.size }

// Seed returns the seed of the last Reset.
func (s *Simulator) Seed() int64 { return s.seed }

// NumLeaves returns the real-valued target population.
func (s *Simulator) NumLeaves() float64 { return s.numLeaves }

// Leaves returns the current population. Callers must not modify it.
func (s *Simulator) Leaves() []Leaf { return s.leaves }

// Level returns the current level, starting at 1.
func (s *Simulator) Level() int { return s.level }

// Score returns the score within the current level.
func (s *Simulator) Score() int { return s.score }

// LevelType returns the scoring mode of the current level.
func (s *Simulator) LevelType() LevelType { return s.levelType }

// Dragging reports whether a gesture is in progress.
func (s *Simulator) Dragging() bool { return s.dragging }

// DragStartY returns the pointer height recorded at drag start.
func (s *Simulator) DragStartY() float64 { return s.dragStartY }

// Background returns the canvas fill color.
func (s *Simulator) Background() color.RGBA { return s.background }

// TrunkColor returns the trunk fill color.
func (s *Simulator) TrunkColor() color.RGBA { return s.trunk }

// TickPending reports whether a score tick is scheduled.
func (s *Simulator) TickPending() bool { return s.pending.Pending() }

// Palette returns the level color table.
func (s *Simulator) Palette() PaletteTable { return s.palette }
