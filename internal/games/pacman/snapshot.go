package pacman

import (
	"sort"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// OccupantView is the observable part of an occupant.
type OccupantView struct {
	Kind    Kind
	Variant Variant
	X, Y    int
	W, H    int
	Heading Heading
}

// Snapshot captures the complete observable round state for rendering,
// determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Phase          Phase
	Score          int
	Lives          int
	Level          int
	IntroTicksLeft int
	Quit           bool

	Player      OccupantView
	Adversaries []OccupantView

	// Collectibles are in row-major order so equal states compare equal.
	Collectibles     []OccupantView
	CollectiblesLeft int
}

// Rect returns the occupant's bounding box.
func (o OccupantView) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

func mobileView(m *Mobile) OccupantView {
	return OccupantView{
		Kind:    m.Kind,
		Variant: m.Variant,
		X:       m.Rect.X,
		Y:       m.Rect.Y,
		W:       m.Rect.W,
		H:       m.Rect.H,
		Heading: m.Heading,
	}
}

// Snapshot returns the current round state.
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		Tick:             r.tick,
		Phase:            r.phase,
		Score:            r.score,
		Lives:            r.lives,
		Level:            r.level,
		IntroTicksLeft:   r.introLeft,
		Quit:             r.quit,
		Player:           mobileView(&r.player),
		Adversaries:      make([]OccupantView, 0, len(r.adversaries)),
		Collectibles:     make([]OccupantView, 0, len(r.collectibles)),
		CollectiblesLeft: len(r.collectibles),
	}

	for i := range r.adversaries {
		s.Adversaries = append(s.Adversaries, mobileView(&r.adversaries[i]))
	}

	cells := make([]Cell, 0, len(r.collectibles))
	for cell := range r.collectibles {
		cells = append(cells, cell)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	for _, cell := range cells {
		c := r.collectibles[cell]
		s.Collectibles = append(s.Collectibles, OccupantView{
			Kind: c.Kind,
			X:    c.Rect.X,
			Y:    c.Rect.Y,
			W:    c.Rect.W,
			H:    c.Rect.H,
		})
	}

	return s
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Phase != o.Phase || s.Score != o.Score ||
		s.Lives != o.Lives || s.Level != o.Level ||
		s.IntroTicksLeft != o.IntroTicksLeft || s.Quit != o.Quit ||
		s.Player != o.Player || s.CollectiblesLeft != o.CollectiblesLeft {
		return false
	}
	if len(s.Adversaries) != len(o.Adversaries) || len(s.Collectibles) != len(o.Collectibles) {
		return false
	}
	for i := range s.Adversaries {
		if s.Adversaries[i] != o.Adversaries[i] {
			return false
		}
	}
	for i := range s.Collectibles {
		if s.Collectibles[i] != o.Collectibles[i] {
			return false
		}
	}
	return true
}
