package penguins

import (
	"math/rand"

	"github.com/vovakirdan/penguins/internal/config"
)

// Populator creates the followers of each level.
// It owns its RNG; callers only choose the seed at construction.
type Populator struct {
	rng     *rand.Rand
	nextID  int
	screenW float64
	screenH float64
	cfg     config.PenguinsConfig
}

// NewPopulator creates a populator for the configured screen.
func NewPopulator(seed int64, cfg config.PenguinsConfig) *Populator {
	return &Populator{
		rng:     rand.New(rand.NewSource(seed)),
		screenW: cfg.Screen.Width,
		screenH: cfg.Screen.Height,
		cfg:     cfg,
	}
}

// Retune replaces counts and scales for future populations.
// The screen size is fixed for the populator's lifetime.
func (p *Populator) Retune(cfg config.PenguinsConfig) {
	p.cfg = cfg
}

// Populate returns the followers of a freshly started level.
//
//	Level 1: static, anywhere on screen
//	Level 2: falling, spawned in the band above the screen [H, 2H)
//	Level 3: rising, spawned in the band below the screen [-H, 0)
//
// Levels without a population return nil.
func (p *Populator) Populate(level int) []Actor {
	switch level {
	case 1:
		return p.spawn(p.cfg.Levels.Start, MotionStatic, 0, p.screenH)
	case 2:
		return p.spawn(p.cfg.Levels.Falling, MotionFalling, p.screenH, 2*p.screenH)
	case 3:
		return p.spawn(p.cfg.Levels.Rising, MotionRising, -p.screenH, 0)
	default:
		return nil
	}
}

// Refill returns the smaller level 1 batch: static followers anywhere on screen.
func (p *Populator) Refill() []Actor {
	return p.spawn(p.cfg.Levels.Refill, MotionStatic, 0, p.screenH)
}

// spawn places pop.Count followers uniformly in [0, W) x [yMin, yMax).
func (p *Populator) spawn(pop config.Population, motion Motion, yMin, yMax float64) []Actor {
	if pop.Count <= 0 {
		return nil
	}

	w, h := p.cfg.Follower.Box(pop.Scale)
	actors := make([]Actor, 0, pop.Count)
	for range pop.Count {
		p.nextID++
		actors = append(actors, Actor{
			ID:     p.nextID,
			X:      p.rng.Float64() * p.screenW,
			Y:      yMin + p.rng.Float64()*(yMax-yMin),
			W:      w,
			H:      h,
			Motion: motion,
		})
	}
	return actors
}
