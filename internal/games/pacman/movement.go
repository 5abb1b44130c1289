package pacman

// AttemptHeadingChange turns m to h and applies one step of the new velocity.
// If the moved box overlaps a wall or leaves the board, both the position and
// the heading are restored and false is returned. Passing the current heading
// re-validates straight-line continuation.
//
// It panics if h is not a cardinal heading.
func AttemptHeadingChange(m *Mobile, h Heading, b *Board) bool {
	mustCardinal(h)

	prev := m.Heading
	m.Heading = h
	if Advance(m, b) {
		return true
	}
	m.Heading = prev
	return false
}

// Advance applies one step along the current heading, reverting the position
// on overlap. The heading is never touched, so a blocked occupant keeps
// pushing against the wall.
func Advance(m *Mobile, b *Board) bool {
	dx, dy := m.Velocity()
	next := m.Rect.Translate(dx, dy)
	if b.Blocked(next) {
		return false
	}
	m.Rect = next
	return true
}

// turnInPlace validates h with the resolver but keeps the occupant where it was.
// The heading changes only if a step along h would be free.
func turnInPlace(m *Mobile, h Heading, b *Board) bool {
	pos := m.Rect
	ok := AttemptHeadingChange(m, h, b)
	m.Rect = pos
	return ok
}
