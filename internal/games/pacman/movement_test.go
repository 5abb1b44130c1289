package pacman

import (
	"math/rand"
	"testing"
)

func defaultBoard(t *testing.T) *Level {
	t.Helper()
	level, err := ParseLayout(DefaultLayout, DefaultTileSize)
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	return level
}

func TestAttemptHeadingChangeAccepted(t *testing.T) {
	level := defaultBoard(t)
	p := level.Player

	if !AttemptHeadingChange(&p, Left, level.Board) {
		t.Fatal("AttemptHeadingChange(Left) rejected on an open cell")
	}
	if p.Heading != Left {
		t.Errorf("heading = %v, expected left", p.Heading)
	}
	if p.Rect.X != 288-8 || p.Rect.Y != 480 {
		t.Errorf("position = (%d,%d), expected (280,480)", p.Rect.X, p.Rect.Y)
	}
}

func TestAttemptHeadingChangeRejectedIsIdempotent(t *testing.T) {
	level := defaultBoard(t)
	p := level.Player
	before := p

	// The tile above the player start is a wall.
	for i := 0; i < 3; i++ {
		if AttemptHeadingChange(&p, Up, level.Board) {
			t.Fatalf("attempt %d: AttemptHeadingChange(Up) accepted into a wall", i)
		}
		if p != before {
			t.Fatalf("attempt %d: occupant changed to %+v, expected %+v", i, p, before)
		}
	}
}

func TestAttemptHeadingChangeSameHeading(t *testing.T) {
	level := defaultBoard(t)
	p := level.Player

	if !AttemptHeadingChange(&p, Right, level.Board) {
		t.Fatal("continuing right should be accepted")
	}
	if p.Rect.X != 296 || p.Heading != Right {
		t.Errorf("after continuation: x = %d heading = %v", p.Rect.X, p.Heading)
	}
}

func TestAttemptHeadingChangePanicsOnNonCardinal(t *testing.T) {
	level := defaultBoard(t)
	p := level.Player

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a non-cardinal heading")
		}
	}()
	AttemptHeadingChange(&p, Heading(7), level.Board)
}

func TestAdvanceStallKeepsHeading(t *testing.T) {
	level := defaultBoard(t)
	m := newMobile(KindPlayer, VariantNone, 32, 32, DefaultTileSize, Up)

	if Advance(&m, level.Board) {
		t.Fatal("Advance() into the top wall should be rejected")
	}
	if m.Heading != Up {
		t.Errorf("heading = %v, expected up to be kept", m.Heading)
	}
	if m.Rect.X != 32 || m.Rect.Y != 32 {
		t.Errorf("position = (%d,%d), expected (32,32)", m.Rect.X, m.Rect.Y)
	}
}

func TestVelocity(t *testing.T) {
	tests := []struct {
		heading Heading
		dx, dy  int
	}{
		{Up, 0, -8},
		{Down, 0, 8},
		{Left, -8, 0},
		{Right, 8, 0},
	}

	for _, tt := range tests {
		m := newMobile(KindPlayer, VariantNone, 0, 0, 32, tt.heading)
		dx, dy := m.Velocity()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("Velocity(%v) = (%d,%d), expected (%d,%d)", tt.heading, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestResetRestoresOrigin(t *testing.T) {
	level := defaultBoard(t)
	p := level.Player

	AttemptHeadingChange(&p, Left, level.Board)
	AttemptHeadingChange(&p, Left, level.Board)
	if p.AtOrigin() {
		t.Fatal("player should have moved")
	}

	p.Reset()
	if !p.AtOrigin() || p.Heading != Right {
		t.Errorf("after Reset: %+v", p)
	}
}

// TestResolverNeverLeavesOverlap drives a mobile with random turns and checks
// the resolver post-condition after every step.
func TestResolverNeverLeavesOverlap(t *testing.T) {
	level := defaultBoard(t)
	b := level.Board
	rng := rand.New(rand.NewSource(99))
	m := level.Player

	for i := 0; i < 5000; i++ {
		if rng.Intn(3) == 0 {
			AttemptHeadingChange(&m, Headings[rng.Intn(len(Headings))], b)
		} else {
			Advance(&m, b)
		}
		if b.Blocked(m.Rect) {
			t.Fatalf("step %d: %v overlaps a wall or leaves the board", i, m.Rect)
		}
		dx, dy := m.Velocity()
		if (dx == 0) == (dy == 0) {
			t.Fatalf("step %d: velocity (%d,%d) must be along exactly one axis", i, dx, dy)
		}
	}
}
