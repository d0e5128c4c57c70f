package tree

import (
	"slices"
	"testing"
	"time"

	"leafgrow/internal/core"
)

var testSize = core.Size{W: 800, H: 600}

func newTestSim(t *testing.T, mutate func(*Config)) *Simulator {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	sim, err := NewWithConfig(cfg, testSize, 42)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return sim
}

// levelUp holds a Time-mode drag until the level advances.
func levelUp(t *testing.T, sim *Simulator) {
	t.Helper()
	want := sim.Level() + 1
	sim.SetLevelType(LevelTime)
	sim.DragStart(300)
	for i := 0; i < 10 && sim.Level() < want; i++ {
		sim.Advance(time.Second)
	}
	if sim.Level() != want {
		t.Fatalf("expected level %d, got %d", want, sim.Level())
	}
}

func TestInitialState(t *testing.T) {
	sim := newTestSim(t, nil)
	if sim.Level() != 1 || sim.Score() != 0 || sim.LevelType() != LevelTime {
		t.Fatalf("unexpected initial progress: level=%d score=%d type=%s", sim.Level(), sim.Score(), sim.LevelType())
	}
	if sim.NumLeaves() != 10 {
		t.Fatalf("initial numLeaves = %v, want 10", sim.NumLeaves())
	}
	if len(sim.Leaves()) != 10 {
		t.Fatalf("initial population = %d, want 10", len(sim.Leaves()))
	}
	if sim.Dragging() || sim.TickPending() {
		t.Fatal("simulator must start idle")
	}
}

func TestUpwardDragFloorsTarget(t *testing.T) {
	sim := newTestSim(t, nil)
	sim.DragStart(300)
	sim.DragMove(250)
	if sim.NumLeaves() != 10.5 {
		t.Fatalf("numLeaves = %v, want 10.5", sim.NumLeaves())
	}
	if len(sim.Leaves()) != 10 {
		t.Fatalf("leaves = %d, want 10", len(sim.Leaves()))
	}
}

func TestUpwardDragGrowthIsCapped(t *testing.T) {
	sim := newTestSim(t, nil)
	sim.DragStart(300)
	for i := 0; i < 200; i++ {
		before := sim.NumLeaves()
		if len(sim.Leaves()) >= 1000 {
			break
		}
		sim.DragMove(100)
		want := LeafCount(before * (1 + 0.05))
		if want > 1000 {
			want = 1000
		}
		if got := len(sim.Leaves()); got != want {
			t.Fatalf("move %d: leaves = %d, want %d", i, got, want)
		}
	}
	if len(sim.Leaves()) != 1000 {
		t.Fatalf("population never reached the cap: %d", len(sim.Leaves()))
	}

	// At the cap an upward move takes the shrink branch.
	sim.DragMove(100)
	if got, want := len(sim.Leaves()), LeafCount(1000*(1-0.05)); got != want {
		t.Fatalf("move at cap: leaves = %d, want %d", got, want)
	}
}

func TestDownwardDragShrinksToFloor(t *testing.T) {
	sim := newTestSim(t, nil)
	sim.DragStart(300)
	sim.DragMove(400)
	if len(sim.Leaves()) != 9 {
		t.Fatalf("leaves = %d, want 9", len(sim.Leaves()))
	}
	for i := 0; i < 200; i++ {
		before := sim.NumLeaves()
		sim.DragMove(400)
		want := LeafCount(before * (1 - 0.05))
		if want < 1 {
			want = 1
		}
		if got := len(sim.Leaves()); got != want {
			t.Fatalf("move %d: leaves = %d, want %d", i, got, want)
		}
	}
	if sim.NumLeaves() != 1 || len(sim.Leaves()) != 1 {
		t.Fatalf("population must settle at 1, got numLeaves=%v leaves=%d", sim.NumLeaves(), len(sim.Leaves()))
	}
}

func TestDragMoveOutsideGestureIsIgnored(t *testing.T) {
	sim := newTestSim(t, nil)
	before := slices.Clone(sim.Leaves())
	sim.DragMove(0)
	if sim.NumLeaves() != 10 || !slices.Equal(before, sim.Leaves()) {
		t.Fatal("DragMove without DragStart must not touch the population")
	}
	sim.DragStart(300)
	sim.DragEnd()
	sim.DragMove(0)
	if sim.NumLeaves() != 10 {
		t.Fatal("DragMove after DragEnd must not touch the population")
	}
}

func TestAdvancedLevelGrowthFactor(t *testing.T) {
	sim := newTestSim(t, nil)
	levelUp(t, sim)
	n := sim.NumLeaves()
	sim.DragStart(300)
	sim.DragMove(100)
	if want := n * (1 + 0.10); sim.NumLeaves() != want {
		t.Fatalf("level 2 growth: numLeaves = %v, want %v", sim.NumLeaves(), want)
	}
}

func TestLeafColorsByLevel(t *testing.T) {
	sim := newTestSim(t, nil)
	sim.DragStart(300)
	for i := 0; i < 40; i++ {
		sim.DragMove(100)
	}
	sim.DragEnd()
	for _, leaf := range sim.Leaves() {
		if leaf.Color != DarkGreen {
			t.Fatalf("level 1 leaf color %v, want %v", leaf.Color, DarkGreen)
		}
	}

	levelUp(t, sim)
	sim.DragStart(300)
	sim.DragMove(100)
	sim.DragEnd()
	if len(sim.Leaves()) == 0 {
		t.Fatal("expected leaves at level 2")
	}
	for _, leaf := range sim.Leaves() {
		if !slices.Contains(Greens, leaf.Color) {
			t.Fatalf("level 2 leaf color %v not in palette", leaf.Color)
		}
	}

	levelUp(t, sim)
	sim.DragStart(300)
	sim.DragMove(100)
	sim.DragEnd()
	for _, leaf := range sim.Leaves() {
		c := leaf.Color
		if c.R > 100 || c.G < 150 || c.B > 100 {
			t.Fatalf("level 3 leaf color %v outside foliage range", c)
		}
	}
}

func TestLeavesStayInsideEnvelope(t *testing.T) {
	sizes := []core.Size{{W: 800, H: 600}, {W: 320, H: 480}, {W: 101, H: 150}, {W: 1920, H: 1080}}
	for _, size := range sizes {
		sim := New(size, 9)
		sim.DragStart(500)
		for i := 0; i < 60; i++ {
			sim.DragMove(0)
		}
		env := sim.Envelope()
		for _, leaf := range sim.Leaves() {
			if !env.Contains(leaf.X, leaf.Y) {
				t.Fatalf("size %v: leaf (%v,%v) outside %+v", size, leaf.X, leaf.Y, env)
			}
			if leaf.Radius < 10 || leaf.Radius > 30 {
				t.Fatalf("size %v: radius %v outside [10,30]", size, leaf.Radius)
			}
		}
	}
}

func TestTimeModeLevelUp(t *testing.T) {
	sim := newTestSim(t, nil)
	sim.DragStart(300)
	for want := 1; want <= 5; want++ {
		sim.Advance(time.Second)
		if sim.Score() != want {
			t.Fatalf("after %ds score = %d, want %d", want, sim.Score(), want)
		}
		if sim.Level() != 1 {
			t.Fatalf("levelled up early at tick %d", want)
		}
	}
	sim.Advance(time.Second)
	if sim.Level() != 2 || sim.Score() != 0 || sim.Dragging() {
		t.Fatalf("expected level-up: level=%d score=%d dragging=%v", sim.Level(), sim.Score(), sim.Dragging())
	}
	if sim.TickPending() {
		t.Fatal("level-up must stop the tick chain")
	}
	sim.Advance(5 * time.Second)
	if sim.Score() != 0 {
		t.Fatalf("score moved after level-up: %d", sim.Score())
	}
}

func TestFirstTickWaitsFullInterval(t *testing.T) {
	sim := newTestSim(t, nil)
	sim.DragStart(300)
	sim.Advance(999 * time.Millisecond)
	if sim.Score() != 0 {
		t.Fatalf("score = %d before the first interval elapsed", sim.Score())
	}
	sim.Advance(time.Millisecond)
	if sim.Score() != 1 {
		t.Fatalf("score = %d after one interval, want 1", sim.Score())
	}
}

func TestImmediateFirstTick(t *testing.T) {
	sim := newTestSim(t, func(c *Config) { c.ImmediateFirstTick = true })
	sim.DragStart(300)
	if sim.Score() != 1 {
		t.Fatalf("score = %d right after drag start, want 1", sim.Score())
	}
	sim.Advance(time.Second)
	if sim.Score() != 2 {
		t.Fatalf("score = %d after one interval, want 2", sim.Score())
	}
}

func TestSizeModeWaitsForThreshold(t *testing.T) {
	sim := newTestSim(t, nil)
	sim.SetLevelType(LevelSize)
	sim.DragStart(300)
	for i := 0; i < 30; i++ {
		sim.DragMove(100)
	}
	if n := len(sim.Leaves()); n >= 500 {
		t.Fatalf("setup grew too far: %d", n)
	}
	sim.Advance(20 * time.Second)
	if sim.Score() != 0 {
		t.Fatalf("score = %d below the leaves threshold", sim.Score())
	}
	if !sim.TickPending() {
		t.Fatal("ticking must continue while the drag is held")
	}

	for len(sim.Leaves()) < 500 {
		sim.DragMove(100)
	}
	sim.Advance(time.Second)
	if sim.Score() != 1 {
		t.Fatalf("score = %d after reaching 500 leaves, want 1", sim.Score())
	}
	if len(sim.Leaves()) != 0 {
		t.Fatalf("scoring in size mode must clear the population, got %d", len(sim.Leaves()))
	}
	sim.Advance(time.Second)
	if sim.Score() != 1 {
		t.Fatalf("empty population must not score, got %d", sim.Score())
	}
}

func TestReleaseStopsScoring(t *testing.T) {
	sim := newTestSim(t, nil)
	sim.DragStart(300)
	sim.Advance(time.Second)
	sim.DragEnd()
	sim.Advance(5 * time.Second)
	if sim.Score() != 1 {
		t.Fatalf("score = %d after release, want 1", sim.Score())
	}
	if sim.TickPending() {
		t.Fatal("tick chain must end once the drag is released")
	}
}

func TestDragStartRearmsTimer(t *testing.T) {
	sim := newTestSim(t, nil)
	sim.DragStart(300)
	sim.Advance(500 * time.Millisecond)
	sim.DragEnd()
	sim.DragStart(300)
	sim.Advance(600 * time.Millisecond)
	if sim.Score() != 0 {
		t.Fatalf("cancelled tick fired: score = %d", sim.Score())
	}
	sim.Advance(400 * time.Millisecond)
	if sim.Score() != 1 {
		t.Fatalf("re-armed tick did not fire: score = %d", sim.Score())
	}
}

func TestResetAndStop(t *testing.T) {
	sim := newTestSim(t, nil)
	levelUp(t, sim)
	sim.DragStart(300)
	sim.DragMove(100)
	sim.Stop()
	if sim.Dragging() || sim.TickPending() {
		t.Fatal("Stop must end the gesture and cancel the tick")
	}

	sim.Reset(42)
	if sim.Level() != 1 || sim.Score() != 0 || sim.NumLeaves() != 10 || len(sim.Leaves()) != 10 {
		t.Fatalf("Reset did not restore initial state: level=%d score=%d numLeaves=%v", sim.Level(), sim.Score(), sim.NumLeaves())
	}
	first := slices.Clone(sim.Leaves())
	sim.Reset(42)
	if !slices.Equal(first, sim.Leaves()) {
		t.Fatal("Reset with the same seed must be deterministic")
	}
}

func TestSetSizeRegenerates(t *testing.T) {
	sim := newTestSim(t, nil)
	small := core.Size{W: 200, H: 300}
	sim.SetSize(small)
	if sim.Size() != small {
		t.Fatalf("size = %v", sim.Size())
	}
	env := sim.Envelope()
	for _, leaf := range sim.Leaves() {
		if !env.Contains(leaf.X, leaf.Y) {
			t.Fatalf("leaf (%v,%v) outside resized envelope %+v", leaf.X, leaf.Y, env)
		}
	}
	sim.SetSize(core.Size{})
	if len(sim.Leaves()) != 0 {
		t.Fatal("an empty canvas holds no leaves")
	}
}

func TestTrunkPlacement(t *testing.T) {
	sim := newTestSim(t, nil)
	x, y, w, h := sim.Trunk()
	if x != 375 || y != 400 || w != 50 || h != 200 {
		t.Fatalf("trunk = (%v,%v,%v,%v)", x, y, w, h)
	}
}

func TestParametersSnapshot(t *testing.T) {
	sim := newTestSim(t, nil)
	sim.DragStart(300)
	snap := sim.Parameters()
	checks := map[string]string{
		"level":        "1",
		"leaves":       "10",
		"level_type":   "time",
		"dragging":     "true",
		"tick_pending": "true",
		"num_leaves":   "10.00",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("missing parameter %q", key)
		}
		if p.Value != want {
			t.Fatalf("%s = %q, want %q", key, p.Value, want)
		}
	}
}
