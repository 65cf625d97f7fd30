// Package penguins implements the penguin collector: the player steers a
// penguin with the pointer and collects follower penguins over three levels.
// Level 1 followers stand still, level 2 followers drift down and level 3
// followers drift up, both wrapping around the screen.
package penguins

import (
	"time"

	"github.com/vovakirdan/penguins/internal/config"
	"github.com/vovakirdan/penguins/internal/core"
)

// Game owns one run of the penguin collector.
// It is not safe for concurrent use; frontends drive it from a single goroutine.
type Game struct {
	cfg     config.PenguinsConfig
	runtime core.RuntimeConfig
	seed    int64 // Seed actually used by the current run
	pop     *Populator
	state   State
	tick    uint64
}

// New creates a game with the given configuration.
// Reset must be called before the first Step.
func New(cfg config.PenguinsConfig) *Game {
	return &Game{cfg: cfg}
}

// Reset starts a new run: level 1, score 0, the start population and the
// player at its configured start position. A zero seed picks one from the clock.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.seed = rc.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	g.pop = NewPopulator(g.seed, g.cfg)
	g.tick = 0

	pw, ph := g.cfg.Player.Box()
	g.state = State{
		Score: 0,
		Level: 1,
		Player: Player{
			X: g.cfg.Player.StartX,
			Y: g.cfg.Player.StartY,
			W: pw,
			H: ph,
		},
		Actors: g.pop.Populate(1),
	}
}

// Step advances the game by one tick.
// Restart and refill requests are applied before the frame is simulated.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	restarted := false
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		restarted = true
	}
	if in.Has(core.ActionRefill) {
		g.Refill()
	}

	g.tick++
	next, result := StepState(g.state, g.pop, g.cfg.Screen.Height, g.cfg.Drift.Step)
	g.state = next
	result.Restarted = restarted
	return result
}

// Refill drops the level 1 refill batch into the active set.
// It only applies on level 1 and reports whether anything was added.
func (g *Game) Refill() bool {
	if g.state.Level != 1 {
		return false
	}
	batch := g.pop.Refill()
	g.state.Actors = append(g.state.Actors, batch...)
	return len(batch) > 0
}

// SetPlayerPosition moves the player to (x, y) in logical units.
// The write is unconditional: no smoothing and no clamping, so the player
// may sit outside the screen.
func (g *Game) SetPlayerPosition(x, y float64) {
	g.state.Player.X = x
	g.state.Player.Y = y
}

// Retune applies new tuning from a reloaded config. Counts and scales affect
// future populations, the drift step and player size apply from the next
// frame. The screen size cannot change during a run.
func (g *Game) Retune(cfg config.PenguinsConfig) {
	cfg.Screen = g.cfg.Screen
	g.cfg = cfg
	if g.pop != nil {
		g.pop.Retune(cfg)
	}
	g.state.Player.W, g.state.Player.H = cfg.Player.Box()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state.GameState()
}

// Seed returns the RNG seed of the current run.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the configuration in effect.
func (g *Game) Config() config.PenguinsConfig {
	return g.cfg
}
