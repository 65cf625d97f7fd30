package penguins

import "github.com/vovakirdan/penguins/internal/core"

// State is the complete simulation state of one run.
type State struct {
	Score  int
	Level  int
	Player Player
	Actors []Actor // Active set: followers not yet collected in this level
}

// GameState summarizes the state for the platform layer.
func (s State) GameState() core.GameState {
	return core.GameState{
		Score:     s.Score,
		Level:     s.Level,
		Remaining: len(s.Actors),
	}
}

// StepState advances s by one frame and returns the new state.
// Within the frame the order is fixed: move every actor, collect the ones
// overlapping the player, then check for a level transition. The actor slice
// of s is never modified.
func StepState(s State, pop *Populator, screenH, driftStep float64) (State, core.StepResult) {
	moved := make([]Actor, len(s.Actors))
	for i, a := range s.Actors {
		moved[i] = Advance(a, screenH, driftStep)
	}

	hits, rest := Partition(s.Player.Box(), moved)

	next := State{
		Score:  s.Score + len(hits),
		Level:  s.Level,
		Player: s.Player,
		Actors: rest,
	}

	changed := false
	if len(next.Actors) == 0 {
		switch next.Level {
		case 1:
			next.Level = 2
			next.Actors = pop.Populate(2)
			changed = true
		case 2:
			next.Level = 3
			next.Actors = pop.Populate(3)
			changed = true
		}
		// Level 3 has no successor: the game stays on an empty level 3.
	}

	return next, core.StepResult{
		State:        next.GameState(),
		Collected:    len(hits),
		LevelChanged: changed,
	}
}
