package tree

// armTick cancels the in-flight score tick and schedules a fresh chain.
func (s *Simulator) armTick() {
	s.cancelTick()
	if s.cfg.ImmediateFirstTick {
		s.scoreTick()
		return
	}
	s.pending = s.clock.AfterFunc(s.cfg.TickInterval, s.scoreTick)
}

func (s *Simulator) cancelTick() {
	s.pending.Cancel()
	s.pending = nil
}

// scoreTick runs once per interval while a drag is held. Releasing the drag
// ends the chain; so does a level-up.
func (s *Simulator) scoreTick() {
	s.pending = nil
	if !s.dragging {
		return
	}
	if s.score >= s.cfg.LevelScore {
		s.nextLevel()
		return
	}
	switch s.levelType {
	case LevelTime:
		s.score++
	case LevelSize:
		if len(s.leaves) >= s.cfg.LeavesScore {
			s.score++
			s.leaves = nil
		}
	}
	s.pending = s.clock.AfterFunc(s.cfg.TickInterval, s.scoreTick)
}

// nextLevel ends the current gesture and starts the next level with a
// randomly chosen scoring mode.
func (s *Simulator) nextLevel() {
	s.dragging = false
	s.score = 0
	s.level++
	if s.rng.Bool() {
		s.levelType = LevelSize
	} else {
		s.levelType = LevelTime
	}
}

// SetLevelType overrides the scoring mode of the current level.
func (s *Simulator) SetLevelType(t LevelType) {
	s.levelType = t
}
