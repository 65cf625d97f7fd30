package penguins

import "github.com/vovakirdan/penguins/internal/core"

// FindHits returns every actor whose box overlaps the player box.
// The result is the exact geometric overlap set, so it does not depend on the
// order of actors; it keeps input order only so iteration over it is stable.
func FindHits(player core.Rect, actors []Actor) []Actor {
	hits, _ := Partition(player, actors)
	return hits
}

// Partition splits actors into those overlapping the player box and the rest.
// A linear scan is enough for a few dozen followers.
// Both results are new slices; actors is not modified.
func Partition(player core.Rect, actors []Actor) (hits, rest []Actor) {
	rest = make([]Actor, 0, len(actors))
	for _, a := range actors {
		if player.Intersects(a.Box()) {
			hits = append(hits, a)
			continue
		}
		rest = append(rest, a)
	}
	return hits, rest
}
