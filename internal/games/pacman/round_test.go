package pacman

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"
)

// chaseLayout has the player and a single red adversary on the same corridor,
// two tiles apart.
func chaseLayout() Layout {
	l := withoutAdversaries(DefaultLayout)
	l[15] = "X  X     P r   X  X"
	return l
}

// singlePelletLayout leaves one collectible, right of the player start.
func singlePelletLayout() Layout {
	l := withoutAdversaries(DefaultLayout)
	for i, row := range l {
		l[i] = strings.ReplaceAll(row, " ", "O")
	}
	l[15] = "XOOXOOOOOP OOOOXOOX"
	return l
}

func newTestRound(t *testing.T, opts Options) *Round {
	t.Helper()
	r, err := NewRound(opts)
	if err != nil {
		t.Fatalf("NewRound() error = %v", err)
	}
	return r
}

// skipIntro advances through the intro countdown.
func skipIntro(t *testing.T, r *Round) {
	t.Helper()
	for i := 0; i < r.IntroTicks(); i++ {
		r.AdvanceTick()
	}
	if r.Phase() != PhasePlaying {
		t.Fatalf("phase after intro = %v, expected playing", r.Phase())
	}
}

func samePositions(a, b Snapshot) bool {
	if a.Player != b.Player || len(a.Adversaries) != len(b.Adversaries) {
		return false
	}
	for i := range a.Adversaries {
		if a.Adversaries[i] != b.Adversaries[i] {
			return false
		}
	}
	return true
}

func TestIntroTicks(t *testing.T) {
	tests := []struct {
		tick     time.Duration
		intro    time.Duration
		expected int
	}{
		{50 * time.Millisecond, 1200 * time.Millisecond, 24},
		{40 * time.Millisecond, 1200 * time.Millisecond, 30},
		{60 * time.Millisecond, 1200 * time.Millisecond, 20},
		{7 * time.Millisecond, 1200 * time.Millisecond, 171},
		{2 * time.Second, 1200 * time.Millisecond, 1},
		{50 * time.Millisecond, 0, 1},
	}

	for _, tt := range tests {
		if got := IntroTicks(tt.tick, tt.intro); got != tt.expected {
			t.Errorf("IntroTicks(%v, %v) = %d, expected %d", tt.tick, tt.intro, got, tt.expected)
		}
	}
}

func TestNewRoundErrors(t *testing.T) {
	noPlayer := withoutAdversaries(DefaultLayout)
	noPlayer[15] = strings.Replace(noPlayer[15], "P", " ", 1)

	tests := []struct {
		name     string
		opts     Options
		expected error
	}{
		{"missing player", Options{Layout: noPlayer}, ErrPlayerMarker},
		{"short layout", Options{Layout: Layout{"XXX"}}, ErrMalformedLayout},
		{"bad tile size", Options{TileSize: 10}, ErrTileSize},
		{"sub-millisecond tick", Options{TickInterval: time.Microsecond}, ErrOptions},
		{"negative lives", Options{StartingLives: -1}, ErrOptions},
		{"funnel below map", Options{FunnelRow: Rows}, ErrOptions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRound(tt.opts)
			if !errors.Is(err, tt.expected) {
				t.Errorf("NewRound() error = %v, expected %v", err, tt.expected)
			}
			if r != nil {
				t.Error("NewRound() should not return a round on error")
			}
		})
	}
}

func TestNewRoundInitialState(t *testing.T) {
	r := newTestRound(t, Options{Seed: 1})
	s := r.Snapshot()

	if s.Phase != PhaseIntro || s.Score != 0 || s.Lives != 3 || s.Level != 1 {
		t.Errorf("initial snapshot = %+v", s)
	}
	if s.IntroTicksLeft != 24 {
		t.Errorf("IntroTicksLeft = %d, expected 24", s.IntroTicksLeft)
	}
	if s.CollectiblesLeft != 184 || r.CollectiblesPerLevel() != 184 {
		t.Errorf("collectibles = %d, expected 184", s.CollectiblesLeft)
	}
	if len(s.Adversaries) != 4 {
		t.Errorf("adversaries = %d, expected 4", len(s.Adversaries))
	}
}

func TestIntroFreezesOccupants(t *testing.T) {
	r := newTestRound(t, Options{TickInterval: 50 * time.Millisecond, StartingLives: 3, Seed: 42})
	start := r.Snapshot()

	for i := 1; i < r.IntroTicks(); i++ {
		s := r.AdvanceTick()
		if s.Phase != PhaseIntro {
			t.Fatalf("tick %d: phase = %v, expected intro", i, s.Phase)
		}
		if s.IntroTicksLeft != r.IntroTicks()-i {
			t.Errorf("tick %d: IntroTicksLeft = %d, expected %d", i, s.IntroTicksLeft, r.IntroTicks()-i)
		}
		if !samePositions(s, start) {
			t.Fatalf("tick %d: occupants moved during intro", i)
		}
	}

	s := r.AdvanceTick()
	if s.Phase != PhasePlaying {
		t.Fatalf("phase after %d ticks = %v, expected playing", r.IntroTicks(), s.Phase)
	}
	if !samePositions(s, start) {
		t.Error("occupants moved on the tick that ended the intro")
	}
}

func TestFirstPlayingTickMovesPlayerRight(t *testing.T) {
	r := newTestRound(t, Options{TickInterval: 50 * time.Millisecond, StartingLives: 3, Seed: 42})
	origin := r.Snapshot().Player

	skipIntro(t, r)
	s := r.AdvanceTick()

	if s.Player.X != origin.X+8 || s.Player.Y != origin.Y {
		t.Errorf("player at (%d,%d), expected (%d,%d)", s.Player.X, s.Player.Y, origin.X+8, origin.Y)
	}
	if s.Player.Heading != Right {
		t.Errorf("player heading = %v, expected right", s.Player.Heading)
	}
}

func TestDesiredHeadingDuringIntro(t *testing.T) {
	r := newTestRound(t, Options{Layout: withoutAdversaries(DefaultLayout)})

	r.AdvanceTick()
	r.SetDesiredHeading(Left)
	if r.Phase() != PhaseIntro {
		t.Fatal("input must not end the intro")
	}

	skipRemainingIntro(r)
	s := r.AdvanceTick()

	if s.Player.X != 288-8 || s.Player.Heading != Left {
		t.Errorf("player at x=%d heading %v, expected x=280 left", s.Player.X, s.Player.Heading)
	}
}

func skipRemainingIntro(r *Round) {
	for r.Phase() == PhaseIntro {
		r.AdvanceTick()
	}
}

func TestBlockedDesiredHeadingStaysPending(t *testing.T) {
	r := newTestRound(t, Options{Layout: withoutAdversaries(DefaultLayout)})
	skipIntro(t, r)

	// Up is walled off until the player reaches column 10.
	r.SetDesiredHeading(Up)
	expected := []struct {
		x, y    int
		heading Heading
	}{
		{296, 480, Right},
		{304, 480, Right},
		{312, 480, Right},
		{320, 480, Right},
		{320, 472, Up},
		{320, 464, Up},
	}

	for i, e := range expected {
		s := r.AdvanceTick()
		if s.Player.X != e.x || s.Player.Y != e.y || s.Player.Heading != e.heading {
			t.Fatalf("tick %d: player (%d,%d) %v, expected (%d,%d) %v",
				i+1, s.Player.X, s.Player.Y, s.Player.Heading, e.x, e.y, e.heading)
		}
	}
}

func TestPlayerStallsAgainstWallKeepingHeading(t *testing.T) {
	r := newTestRound(t, Options{Layout: withoutAdversaries(DefaultLayout)})
	skipIntro(t, r)

	var s Snapshot
	for i := 0; i < 40; i++ {
		s = r.AdvanceTick()
	}

	// Column 15 on this row is a wall.
	if s.Player.X != 14*32 || s.Player.Y != 15*32 {
		t.Errorf("player at (%d,%d), expected (448,480)", s.Player.X, s.Player.Y)
	}
	if s.Player.Heading != Right {
		t.Errorf("heading = %v, expected right after stalling", s.Player.Heading)
	}
	// Five pellets between the start and the wall.
	if s.Score != 50 {
		t.Errorf("score = %d, expected 50", s.Score)
	}
	if s.CollectiblesLeft != 184-5 {
		t.Errorf("collectibles left = %d, expected %d", s.CollectiblesLeft, 184-5)
	}
}

func TestLevelClear(t *testing.T) {
	r := newTestRound(t, Options{Layout: singlePelletLayout(), Seed: 5})
	if r.CollectiblesPerLevel() != 1 {
		t.Fatalf("collectibles = %d, expected 1", r.CollectiblesPerLevel())
	}
	origin := r.Snapshot().Player
	skipIntro(t, r)

	s := r.AdvanceTick()
	if s.Phase != PhasePlaying || s.Score != 0 {
		t.Fatalf("tick 1: phase %v score %d", s.Phase, s.Score)
	}

	s = r.AdvanceTick()
	if s.Score != 10 {
		t.Errorf("score = %d, expected 10", s.Score)
	}
	if s.Phase != PhaseIntro {
		t.Errorf("phase = %v, expected intro after clearing the level", s.Phase)
	}
	if s.Level != 2 {
		t.Errorf("level = %d, expected 2", s.Level)
	}
	if s.CollectiblesLeft != 1 {
		t.Errorf("collectibles = %d, expected a fresh set of 1", s.CollectiblesLeft)
	}
	if s.Player != origin {
		t.Errorf("player = %+v, expected origin %+v", s.Player, origin)
	}
	if s.IntroTicksLeft != r.IntroTicks() {
		t.Errorf("IntroTicksLeft = %d, expected %d", s.IntroTicksLeft, r.IntroTicks())
	}
	if s.Lives != 3 {
		t.Errorf("lives = %d, expected 3", s.Lives)
	}
}

func TestAdversaryContactCostsLife(t *testing.T) {
	r := newTestRound(t, Options{Layout: chaseLayout(), Rand: fixedSource(2)})
	start := r.Snapshot()
	if start.Adversaries[0].Heading != Left {
		t.Fatalf("adversary heading = %v, expected the drawn left", start.Adversaries[0].Heading)
	}
	skipIntro(t, r)

	r.AdvanceTick()
	s := r.AdvanceTick()
	if s.Lives != 3 {
		t.Fatalf("touching edges must not count as contact, lives = %d", s.Lives)
	}
	if s.Score != 10 {
		t.Errorf("score = %d, expected 10 after the first pellet", s.Score)
	}

	s = r.AdvanceTick()
	if s.Lives != 2 {
		t.Fatalf("lives = %d, expected 2 after contact", s.Lives)
	}
	if s.Phase != PhaseIntro {
		t.Errorf("phase = %v, expected intro", s.Phase)
	}
	if !samePositions(s, start) {
		t.Errorf("mobiles not reset: player %+v adversaries %+v", s.Player, s.Adversaries)
	}
	if s.Score != 10 {
		t.Errorf("score = %d, expected 10 to survive a lost life", s.Score)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	r := newTestRound(t, Options{Layout: chaseLayout(), Rand: fixedSource(2), StartingLives: 1})
	start := r.Snapshot()
	skipIntro(t, r)

	if r.RequestRestart() {
		t.Error("RequestRestart() acted upon while playing")
	}

	var s Snapshot
	for i := 0; i < 3; i++ {
		s = r.AdvanceTick()
	}
	if s.Phase != PhaseGameOver || s.Lives != 0 {
		t.Fatalf("phase %v lives %d, expected game over with 0 lives", s.Phase, s.Lives)
	}
	// Positions stay where the contact happened.
	if s.Player.X != 312 || s.Adversaries[0].X != 328 {
		t.Errorf("player x=%d adversary x=%d, expected 312 and 328", s.Player.X, s.Adversaries[0].X)
	}

	// Frozen: ticks and input change nothing but the tick counter.
	r.SetDesiredHeading(Left)
	for i := 0; i < 5; i++ {
		next := r.AdvanceTick()
		if next.Phase != PhaseGameOver || !samePositions(next, s) || next.Score != s.Score {
			t.Fatalf("state changed during game over: %+v", next)
		}
		if next.Tick != s.Tick+uint64(i+1) {
			t.Errorf("tick = %d, expected %d", next.Tick, s.Tick+uint64(i+1))
		}
	}

	if !r.RequestRestart() {
		t.Fatal("RequestRestart() ignored in game over")
	}
	s = r.Snapshot()
	if s.Phase != PhaseIntro || s.Score != 0 || s.Lives != 1 || s.Level != 1 {
		t.Errorf("after restart: phase %v score %d lives %d level %d", s.Phase, s.Score, s.Lives, s.Level)
	}
	if !samePositions(s, start) {
		t.Error("mobiles not at origin after restart")
	}
	if s.CollectiblesLeft != r.CollectiblesPerLevel() {
		t.Errorf("collectibles = %d, expected a full set of %d", s.CollectiblesLeft, r.CollectiblesPerLevel())
	}

	if r.RequestRestart() {
		t.Error("RequestRestart() acted upon during intro")
	}
}

func TestRequestQuit(t *testing.T) {
	r := newTestRound(t, Options{Seed: 3})
	skipIntro(t, r)
	r.AdvanceTick()

	r.RequestQuit()
	before := r.Snapshot()
	if !before.Quit {
		t.Fatal("Snapshot().Quit = false after RequestQuit()")
	}

	after := r.AdvanceTick()
	if !after.Equal(before) {
		t.Errorf("AdvanceTick() after quit changed state: %+v", after)
	}
	if r.RequestRestart() {
		t.Error("RequestRestart() acted upon after quit")
	}
}

func TestSetDesiredHeadingPanicsOnNonCardinal(t *testing.T) {
	r := newTestRound(t, Options{})

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a non-cardinal heading")
		}
	}()
	r.SetDesiredHeading(Heading(-1))
}

func TestDeterminism(t *testing.T) {
	opts := Options{Seed: 12345}
	r1 := newTestRound(t, opts)
	r2 := newTestRound(t, opts)

	inputs := map[int]Heading{30: Left, 45: Up, 60: Right, 80: Down, 120: Left}
	for i := 0; i < 600; i++ {
		if h, ok := inputs[i]; ok {
			r1.SetDesiredHeading(h)
			r2.SetDesiredHeading(h)
		}
		s1 := r1.AdvanceTick()
		s2 := r2.AdvanceTick()
		if !s1.Equal(s2) {
			t.Fatalf("tick %d: snapshots diverged\n%+v\n%+v", i, s1, s2)
		}
	}
}

// TestInvariantsUnderRandomPlay runs a long game with random input and checks
// the per-tick invariants, restarting whenever the game ends.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	const startLives = 3
	r := newTestRound(t, Options{Seed: 7, StartingLives: startLives})
	input := rand.New(rand.NewSource(11))
	prev := r.Snapshot()
	restarts := 0

	for i := 0; i < 5000; i++ {
		if input.Intn(6) == 0 {
			r.SetDesiredHeading(Headings[input.Intn(len(Headings))])
		}
		s := r.AdvanceTick()

		for _, m := range append([]OccupantView{s.Player}, s.Adversaries...) {
			if r.Board().Blocked(m.Rect()) {
				t.Fatalf("tick %d: %v at (%d,%d) overlaps a wall", i, m.Kind, m.X, m.Y)
			}
		}
		if s.Lives < 0 || s.Lives > startLives {
			t.Fatalf("tick %d: lives = %d", i, s.Lives)
		}
		if s.Lives < prev.Lives && s.Lives > 0 && s.Phase != PhaseIntro {
			t.Fatalf("tick %d: lost a life without re-entering intro", i)
		}
		if s.Lives == 0 && s.Phase != PhaseGameOver {
			t.Fatalf("tick %d: no lives left but phase = %v", i, s.Phase)
		}
		if s.Score < prev.Score {
			t.Fatalf("tick %d: score dropped from %d to %d", i, prev.Score, s.Score)
		}
		if (s.Score-prev.Score)%PointsPerCollectible != 0 {
			t.Fatalf("tick %d: score moved by %d", i, s.Score-prev.Score)
		}
		if s.Level == prev.Level && s.Score-prev.Score != PointsPerCollectible*(prev.CollectiblesLeft-s.CollectiblesLeft) {
			t.Fatalf("tick %d: score +%d for %d collectibles", i, s.Score-prev.Score, prev.CollectiblesLeft-s.CollectiblesLeft)
		}

		if s.Phase == PhaseGameOver {
			r.RequestRestart()
			restarts++
			s = r.Snapshot()
		}
		prev = s
	}
	t.Logf("%d restarts", restarts)
}
