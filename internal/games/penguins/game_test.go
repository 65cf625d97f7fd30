package penguins

import (
	"reflect"
	"slices"
	"testing"

	"github.com/vovakirdan/penguins/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(testConfig())
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})
	return g
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 1)

	st := g.State()
	if st.Score != 0 || st.Level != 1 || st.Remaining != 50 {
		t.Errorf("after Reset: %+v, expected score 0, level 1, 50 remaining", st)
	}

	snap := g.Snapshot()
	if snap.Player.X != 50 || snap.Player.Y != 50 {
		t.Errorf("player at (%v, %v), expected (50, 50)", snap.Player.X, snap.Player.Y)
	}
	if snap.Player.W != 64 || snap.Player.H != 64 {
		t.Errorf("player box %vx%v, expected 64x64", snap.Player.W, snap.Player.H)
	}
	if g.Seed() != 1 {
		t.Errorf("Seed() = %d, expected 1", g.Seed())
	}
}

func TestGameResetPicksSeed(t *testing.T) {
	g := newTestGame(t, 0)
	if g.Seed() == 0 {
		t.Error("zero seed should be replaced by a clock seed")
	}
}

func TestCollectLastFollowerStartsLevelTwo(t *testing.T) {
	g := newTestGame(t, 1)
	g.state.Actors = []Actor{{ID: 999, X: 50, Y: 50, W: 10, H: 10, Motion: MotionStatic}}

	res := g.Step(core.InputFrame{})

	if res.Collected != 1 || res.State.Score != 1 {
		t.Errorf("collected %d, score %d, expected 1 and 1", res.Collected, res.State.Score)
	}
	if res.State.Level != 2 || !res.LevelChanged {
		t.Fatalf("level %d (changed=%v), expected 2", res.State.Level, res.LevelChanged)
	}

	snap := g.Snapshot()
	if len(snap.Actors) != 30 {
		t.Fatalf("%d level 2 followers, expected 30", len(snap.Actors))
	}
	for _, a := range snap.Actors {
		if a.Motion != MotionFalling {
			t.Errorf("level 2 follower motion %v", a.Motion)
		}
		if a.Y < 600 || a.Y >= 1200 {
			t.Errorf("level 2 follower spawned at Y=%v, expected [600, 1200)", a.Y)
		}
	}
}

func TestLevelTwoToThree(t *testing.T) {
	g := newTestGame(t, 1)
	g.state.Level = 2
	// Drifts down by one step onto the player.
	g.state.Actors = []Actor{{ID: 999, X: 50, Y: 52, W: 10, H: 10, Motion: MotionFalling}}

	res := g.Step(core.InputFrame{})

	if res.State.Level != 3 || !res.LevelChanged {
		t.Fatalf("level %d (changed=%v), expected 3", res.State.Level, res.LevelChanged)
	}
	snap := g.Snapshot()
	if len(snap.Actors) != 30 {
		t.Fatalf("%d level 3 followers, expected 30", len(snap.Actors))
	}
	for _, a := range snap.Actors {
		if a.Motion != MotionRising {
			t.Errorf("level 3 follower motion %v", a.Motion)
		}
		if a.Y < -600 || a.Y >= 0 {
			t.Errorf("level 3 follower spawned at Y=%v, expected [-600, 0)", a.Y)
		}
	}
}

func TestEmptyLevelThreeIsSteady(t *testing.T) {
	g := newTestGame(t, 1)
	g.state.Level = 3
	g.state.Score = 130
	g.state.Actors = nil

	for range 100 {
		res := g.Step(core.InputFrame{})
		if res.LevelChanged || res.Collected != 0 {
			t.Fatalf("empty level 3 changed: %+v", res)
		}
	}
	st := g.State()
	if st.Level != 3 || st.Score != 130 || st.Remaining != 0 {
		t.Errorf("state drifted: %+v", st)
	}
}

// sweep moves the player across the screen in a serpentine so that it
// eventually touches every region.
func sweep(g *Game, frames int, f func(core.StepResult)) {
	const rowStep = 40.0
	x, y, dx := 0.0, 0.0, 8.0
	for range frames {
		g.SetPlayerPosition(x, y)
		f(g.Step(core.InputFrame{}))
		x += dx
		if x > 1024 || x < 0 {
			dx = -dx
			y += rowStep
			if y > 600 {
				y = 0
			}
		}
	}
}

func TestScoreIsMonotonicAndCountsCollections(t *testing.T) {
	g := newTestGame(t, 77)

	prev, total, changes := 0, 0, 0
	sweep(g, 20000, func(res core.StepResult) {
		if res.State.Score < prev {
			t.Fatalf("score decreased from %d to %d", prev, res.State.Score)
		}
		prev = res.State.Score
		total += res.Collected
		if res.LevelChanged {
			changes++
		}
	})

	st := g.State()
	if st.Score != total {
		t.Errorf("score %d, sum of collected %d", st.Score, total)
	}
	if changes != st.Level-1 {
		t.Errorf("%d level changes for final level %d", changes, st.Level)
	}
	if st.Level < 2 {
		t.Errorf("sweep never finished level 1 (remaining %d)", st.Remaining)
	}
}

func TestSetPlayerPosition(t *testing.T) {
	g := newTestGame(t, 5)

	g.SetPlayerPosition(300, 200)
	first := g.Snapshot()
	g.SetPlayerPosition(300, 200)
	second := g.Snapshot()
	if !reflect.DeepEqual(first, second) {
		t.Error("repeating SetPlayerPosition changed the game")
	}

	g.SetPlayerPosition(-500, 5000)
	snap := g.Snapshot()
	if snap.Player.X != -500 || snap.Player.Y != 5000 {
		t.Errorf("off-screen position clamped to (%v, %v)", snap.Player.X, snap.Player.Y)
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, 3)
	g.state.Level = 3
	g.state.Score = 99
	g.state.Actors = nil

	var in core.InputFrame
	in.Set(core.ActionRestart)
	res := g.Step(in)

	if !res.Restarted {
		t.Error("Restarted not reported")
	}
	if res.State.Level != 1 {
		t.Errorf("level %d after restart", res.State.Level)
	}
	if res.State.Score != res.Collected {
		t.Errorf("score %d after restart, collected %d this frame", res.State.Score, res.Collected)
	}
	if res.State.Remaining+res.Collected != 50 {
		t.Errorf("remaining %d + collected %d, expected 50", res.State.Remaining, res.Collected)
	}
}

func TestRefillOnlyOnLevelOne(t *testing.T) {
	g := newTestGame(t, 4)
	before := len(g.Snapshot().Actors)

	if !g.Refill() {
		t.Fatal("Refill on level 1 reported nothing added")
	}
	actors := g.Snapshot().Actors
	if len(actors) != before+20 {
		t.Fatalf("%d actors after refill, expected %d", len(actors), before+20)
	}
	wantW, _ := testConfig().Follower.Box(0.15)
	for _, a := range actors[before:] {
		if a.W != wantW || a.Motion != MotionStatic {
			t.Errorf("refill actor %+v", a)
		}
	}

	g.state.Level = 2
	n := len(g.state.Actors)
	if g.Refill() {
		t.Error("Refill on level 2 reported success")
	}
	if len(g.state.Actors) != n {
		t.Error("Refill on level 2 changed the active set")
	}
}

func TestRefillAction(t *testing.T) {
	g := newTestGame(t, 4)
	g.SetPlayerPosition(-1000, -1000)

	var in core.InputFrame
	in.Set(core.ActionRefill)
	res := g.Step(in)

	if res.State.Remaining != 70 {
		t.Errorf("remaining %d after refill, expected 70", res.State.Remaining)
	}
}

func TestRetune(t *testing.T) {
	g := newTestGame(t, 8)

	cfg := testConfig()
	cfg.Player.Scale = 0.5
	cfg.Drift.Step = 5
	cfg.Screen.Width = 10
	g.Retune(cfg)

	snap := g.Snapshot()
	if snap.Player.W != 128 {
		t.Errorf("player width %v after retune, expected 128", snap.Player.W)
	}
	if snap.ScreenW != 1024 {
		t.Errorf("screen width changed to %v", snap.ScreenW)
	}

	g.SetPlayerPosition(-1000, -1000)
	g.state.Actors = []Actor{{ID: 1, X: 10, Y: 300, W: 10, H: 10, Motion: MotionFalling}}
	g.Step(core.InputFrame{})
	if y := g.state.Actors[0].Y; y != 295 {
		t.Errorf("drift after retune moved to %v, expected 295", y)
	}
}

func TestDeterministicPerSeed(t *testing.T) {
	a := newTestGame(t, 2024)
	b := newTestGame(t, 2024)

	var snapsA, snapsB []Snapshot
	sweep(a, 3000, func(core.StepResult) { snapsA = append(snapsA, a.Snapshot()) })
	sweep(b, 3000, func(core.StepResult) { snapsB = append(snapsB, b.Snapshot()) })

	if !reflect.DeepEqual(snapsA, snapsB) {
		t.Error("equal seeds produced different runs")
	}
}

func TestStepStateDoesNotModifyInput(t *testing.T) {
	cfg := testConfig()
	pop := NewPopulator(1, cfg)
	s := State{
		Level:  2,
		Player: Player{X: 50, Y: 50, W: 64, H: 64},
		Actors: []Actor{
			{ID: 1, X: 50, Y: 52, W: 10, H: 10, Motion: MotionFalling},
			{ID: 2, X: 500, Y: 300, W: 10, H: 10, Motion: MotionFalling},
		},
	}
	before := slices.Clone(s.Actors)

	next, res := StepState(s, pop, 600, 2)

	if !reflect.DeepEqual(s.Actors, before) {
		t.Error("StepState modified the input actors")
	}
	if res.Collected != 1 || next.Score != 1 {
		t.Errorf("collected %d, score %d", res.Collected, next.Score)
	}
	if len(next.Actors) != 1 || next.Actors[0].Y != 298 {
		t.Errorf("next actors %+v", next.Actors)
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	g := newTestGame(t, 6)

	snap := g.Snapshot()
	snap.Actors[0].X = -999

	if g.Snapshot().Actors[0].X == -999 {
		t.Error("snapshot shares actors with the game")
	}
}
