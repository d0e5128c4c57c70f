package tree

import "leafgrow/internal/core"

// Parameters exposes the live state for the debug panel.
func (s *Simulator) Parameters() core.ParameterSnapshot {
	env := s.Envelope()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("level", "Level", s.level),
				core.IntParam("score", "Score", s.score),
				core.StringParam("level_type", "Level type", s.levelType.String()),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				core.FloatParam("num_leaves", "Target leaves", s.numLeaves),
				core.IntParam("leaves", "Leaves", len(s.leaves)),
				core.FloatParam("growth_factor", "Growth factor", s.growthFactor()),
				core.IntParam("envelope_min_x", "Canopy min x", env.MinX),
				core.IntParam("envelope_max_x", "Canopy max x", env.MaxX),
				core.IntParam("envelope_min_y", "Canopy min y", env.MinY),
				core.IntParam("envelope_max_y", "Canopy max y", env.MaxY),
			},
		},
		{
			Name: "Gesture",
			Params: []core.Parameter{
				core.BoolParam("dragging", "Dragging", s.dragging),
				core.FloatParam("drag_start_y", "Drag start y", s.dragStartY),
				core.BoolParam("tick_pending", "Tick pending", s.TickPending()),
			},
		},
	}}
}
