package pacman

import "testing"

// fixedSource always draws the same index.
type fixedSource int

func (f fixedSource) Intn(n int) int {
	return int(f) % n
}

// seqSource draws its values in order, repeating the last one.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[min(s.i, len(s.vals)-1)]
	s.i++
	return v % n
}

const noFunnel = -1

func TestAdversaryBlockedRedraw(t *testing.T) {
	level := defaultBoard(t)

	tests := []struct {
		name     string
		draw     int
		expected Heading
	}{
		{"free draw is applied", 3, Right},
		{"blocked draw keeps heading", 2, Up},
		{"same heading redrawn stays blocked", 0, Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Top-left corner cell: walls above and to the left.
			a := newMobile(KindAdversary, VariantRed, 32, 32, DefaultTileSize, Up)

			stepAdversary(&a, level.Board, noFunnel, fixedSource(tt.draw))

			if a.Rect.X != 32 || a.Rect.Y != 32 {
				t.Errorf("position = (%d,%d), expected unchanged (32,32)", a.Rect.X, a.Rect.Y)
			}
			if a.Heading != tt.expected {
				t.Errorf("heading = %v, expected %v", a.Heading, tt.expected)
			}
		})
	}
}

func TestAdversaryAdvancesWhenFree(t *testing.T) {
	level := defaultBoard(t)
	a := newMobile(KindAdversary, VariantBlue, 32, 32, DefaultTileSize, Right)

	stepAdversary(&a, level.Board, noFunnel, fixedSource(0))

	if a.Rect.X != 40 || a.Rect.Y != 32 || a.Heading != Right {
		t.Errorf("after step: (%d,%d) %v, expected (40,32) right", a.Rect.X, a.Rect.Y, a.Heading)
	}
}

func TestAdversarySideBoundary(t *testing.T) {
	level := defaultBoard(t)

	// Tunnel row: the step to x=0 is inside the board but touches the left edge.
	a := newMobile(KindAdversary, VariantPink, 8, 9*32, DefaultTileSize, Left)
	stepAdversary(&a, level.Board, noFunnel, fixedSource(3))

	if a.Rect.X != 8 {
		t.Errorf("x = %d, expected 8 (move to the edge reverted)", a.Rect.X)
	}
	if a.Heading != Right {
		t.Errorf("heading = %v, expected the drawn right", a.Heading)
	}

	// Mirror on the right edge.
	right := newMobile(KindAdversary, VariantPink, 18*32-8, 9*32, DefaultTileSize, Right)
	stepAdversary(&right, level.Board, noFunnel, fixedSource(2))

	if right.Rect.X != 18*32-8 || right.Heading != Left {
		t.Errorf("right edge: x = %d heading = %v, expected %d left", right.Rect.X, right.Heading, 18*32-8)
	}
}

func TestAdversaryFunnel(t *testing.T) {
	level := defaultBoard(t)
	funnelY := DefaultFunnelRow * DefaultTileSize

	t.Run("horizontal heading redirected up", func(t *testing.T) {
		// Column 9 opens upward out of the pen.
		a := newMobile(KindAdversary, VariantPink, 9*32, funnelY, DefaultTileSize, Right)
		src := &seqSource{vals: []int{1}}
		stepAdversary(&a, level.Board, funnelY, src)

		if a.Heading != Up || a.Rect.X != 9*32 || a.Rect.Y != funnelY-8 {
			t.Errorf("after funnel: (%d,%d) %v, expected (%d,%d) up", a.Rect.X, a.Rect.Y, a.Heading, 9*32, funnelY-8)
		}
		if src.i != 0 {
			t.Errorf("funnel redirect drew %d random headings, expected none", src.i)
		}
	})

	t.Run("blocked redirect falls through to normal step", func(t *testing.T) {
		a := newMobile(KindAdversary, VariantBlue, 8*32, funnelY, DefaultTileSize, Left)
		stepAdversary(&a, level.Board, funnelY, fixedSource(0))

		if a.Heading != Left || a.Rect.X != 8*32-8 || a.Rect.Y != funnelY {
			t.Errorf("after step: (%d,%d) %v, expected (%d,%d) left", a.Rect.X, a.Rect.Y, a.Heading, 8*32-8, funnelY)
		}
	})

	t.Run("vertical heading untouched", func(t *testing.T) {
		a := newMobile(KindAdversary, VariantRed, 9*32, funnelY, DefaultTileSize, Up)
		stepAdversary(&a, level.Board, funnelY, fixedSource(1))

		if a.Heading != Up || a.Rect.Y != funnelY-8 {
			t.Errorf("after step: y = %d %v, expected %d up", a.Rect.Y, a.Heading, funnelY-8)
		}
	})

	t.Run("off the funnel row no redirect", func(t *testing.T) {
		a := newMobile(KindAdversary, VariantRed, 32, 32, DefaultTileSize, Right)
		stepAdversary(&a, level.Board, funnelY, fixedSource(0))

		if a.Heading != Right || a.Rect.X != 40 {
			t.Errorf("after step: x = %d %v, expected 40 right", a.Rect.X, a.Heading)
		}
	})
}

func TestRandomHeadingUsesAllHeadings(t *testing.T) {
	for i, expected := range Headings {
		if got := randomHeading(fixedSource(i)); got != expected {
			t.Errorf("randomHeading(%d) = %v, expected %v", i, got, expected)
		}
	}
}
