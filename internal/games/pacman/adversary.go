package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// HeadingSource supplies the random draws for adversary headings.
// *math/rand.Rand satisfies it.
type HeadingSource interface {
	Intn(n int) int
}

// DefaultFunnelRow is the row where horizontally moving adversaries are sent up.
const DefaultFunnelRow = 9

func randomHeading(src HeadingSource) Heading {
	return Headings[src.Intn(len(Headings))]
}

// outsideSides reports whether r touches or crosses the left or right board edge.
func outsideSides(r, bounds core.Rect) bool {
	return r.X <= bounds.X || r.Right() >= bounds.Right()
}

// stepAdversary runs one tick of random-walk movement for a.
//
// On the funnel row a horizontally moving adversary is redirected up, and an
// accepted redirect is its move for the tick. Otherwise it steps along its
// heading. A step into a wall or onto a side edge is dropped and a fresh
// heading is drawn, validated in place; a blocked draw leaves the heading as
// it was, to be re-rolled next tick.
func stepAdversary(a *Mobile, b *Board, funnelY int, src HeadingSource) {
	if a.Rect.Y == funnelY && a.Heading.Horizontal() {
		if AttemptHeadingChange(a, Up, b) {
			return
		}
	}

	dx, dy := a.Velocity()
	next := a.Rect.Translate(dx, dy)
	if b.Blocked(next) || outsideSides(next, b.bounds) {
		turnInPlace(a, randomHeading(src), b)
		return
	}
	a.Rect = next
}

// redrawHeading gives an adversary a fresh random heading without moving it.
func redrawHeading(a *Mobile, b *Board, src HeadingSource) {
	turnInPlace(a, randomHeading(src), b)
}
