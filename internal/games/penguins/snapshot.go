package penguins

// Snapshot is a read-only copy of everything a renderer needs.
// It shares no memory with the game, so it can be drawn while the game moves on.
type Snapshot struct {
	Tick    uint64
	Score   int
	Level   int
	Player  Player
	Actors  []Actor
	ScreenW float64
	ScreenH float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	actors := make([]Actor, len(g.state.Actors))
	copy(actors, g.state.Actors)

	return Snapshot{
		Tick:    g.tick,
		Score:   g.state.Score,
		Level:   g.state.Level,
		Player:  g.state.Player,
		Actors:  actors,
		ScreenW: g.cfg.Screen.Width,
		ScreenH: g.cfg.Screen.Height,
	}
}
