package tree

// DragStart begins a gesture at pointer height y and re-arms the score timer.
func (s *Simulator) DragStart(y float64) {
	s.dragStartY = y
	s.dragging = true
	s.armTick()
}

// DragMove grows the population when the pointer is above the drag start and
// shrinks it otherwise, then regenerates every leaf. It is a no-op outside a
// gesture.
func (s *Simulator) DragMove(y float64) {
	if !s.dragging {
		return
	}
	factor := s.growthFactor()
	if y < s.dragStartY && len(s.leaves) < s.cfg.MaxLeaves {
		s.numLeaves *= 1 + factor
		if LeafCount(s.numLeaves) > s.cfg.MaxLeaves {
			s.numLeaves = float64(s.cfg.MaxLeaves)
		}
	} else {
		s.numLeaves *= 1 - factor
		if s.numLeaves < s.cfg.MinLeaves {
			s.numLeaves = s.cfg.MinLeaves
		}
	}
	s.regenerate()
}

// DragEnd finishes the gesture. The pending tick notices on its next run.
func (s *Simulator) DragEnd() {
	s.dragging = false
}

func (s *Simulator) growthFactor() float64 {
	if s.level < s.cfg.AdvancedGrowthLevel {
		return s.cfg.GrowthFactor
	}
	return s.cfg.AdvancedGrowthFactor
}
