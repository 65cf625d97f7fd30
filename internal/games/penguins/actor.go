package penguins

import "github.com/vovakirdan/penguins/internal/core"

// Motion is the per-frame movement rule of a follower.
type Motion int

const (
	MotionStatic  Motion = iota // Stands still (level 1)
	MotionFalling               // Drifts down, wraps to the top (level 2)
	MotionRising                // Drifts up, wraps to the bottom (level 3)
)

// String returns the motion name used in logs and level listings.
func (m Motion) String() string {
	switch m {
	case MotionStatic:
		return "static"
	case MotionFalling:
		return "falling"
	case MotionRising:
		return "rising"
	default:
		return "unknown"
	}
}

// Actor is a collectible follower penguin.
// X, Y is the sprite center; W, H is its scaled sprite box.
type Actor struct {
	ID     int
	X, Y   float64
	W, H   float64
	Motion Motion
}

// Box returns the actor's collision rectangle.
func (a Actor) Box() core.Rect {
	return core.RectFromCenter(a.X, a.Y, a.W, a.H)
}

// Advance applies the actor's motion rule for one frame.
// Drifting actors wrap around the screen: a falling actor whose top edge
// drops below 0 re-enters with its bottom edge at screenH, a rising actor
// whose bottom edge passes screenH re-enters with its top edge at 0.
// Wrapping never changes direction.
func Advance(a Actor, screenH, step float64) Actor {
	switch a.Motion {
	case MotionFalling:
		a.Y -= step
		if a.Y+a.H/2 < 0 {
			a.Y = screenH + a.H/2
		}
	case MotionRising:
		a.Y += step
		if a.Y-a.H/2 > screenH {
			a.Y = -a.H / 2
		}
	}
	return a
}

// Player is the pointer-controlled penguin.
type Player struct {
	X, Y float64
	W, H float64
}

// Box returns the player's collision rectangle.
func (p Player) Box() core.Rect {
	return core.RectFromCenter(p.X, p.Y, p.W, p.H)
}
