package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Heading is one of the four cardinal directions.
type Heading int

const (
	Up Heading = iota
	Down
	Left
	Right
)

// Headings lists every heading in draw order for random selection.
var Headings = [...]Heading{Up, Down, Left, Right}

// Valid reports whether h is a cardinal heading.
func (h Heading) Valid() bool {
	return h >= Up && h <= Right
}

// Horizontal reports whether h moves along the x axis.
func (h Heading) Horizontal() bool {
	return h == Left || h == Right
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("heading(%d)", int(h))
	}
}

// mustCardinal panics on a non-cardinal heading. Callers passing one have a bug.
func mustCardinal(h Heading) {
	if !h.Valid() {
		panic(fmt.Sprintf("pacman: non-cardinal heading %d", int(h)))
	}
}

// Kind tells what an occupant is.
type Kind int

const (
	KindWall Kind = iota
	KindCollectible
	KindPlayer
	KindAdversary
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindCollectible:
		return "collectible"
	case KindPlayer:
		return "player"
	case KindAdversary:
		return "adversary"
	default:
		return "unknown"
	}
}

// Variant is the visual tag of an adversary. It has no behavioral effect.
type Variant int

const (
	VariantNone Variant = iota
	VariantBlue
	VariantOrange
	VariantPink
	VariantRed
)

func (v Variant) String() string {
	switch v {
	case VariantBlue:
		return "blue"
	case VariantOrange:
		return "orange"
	case VariantPink:
		return "pink"
	case VariantRed:
		return "red"
	default:
		return "none"
	}
}

// Static is a fixed occupant: a wall or a collectible.
type Static struct {
	Kind Kind
	Cell Cell
	Rect core.Rect
}

// Mobile is a moving occupant. The player and the adversaries share this type
// and differ only in where their heading comes from.
type Mobile struct {
	Kind    Kind
	Variant Variant
	Rect    core.Rect
	Heading Heading

	speed         int
	originX       int
	originY       int
	originHeading Heading
}

func newMobile(kind Kind, variant Variant, x, y, tileSize int, heading Heading) Mobile {
	return Mobile{
		Kind:          kind,
		Variant:       variant,
		Rect:          core.NewRect(x, y, tileSize, tileSize),
		Heading:       heading,
		speed:         tileSize / 4,
		originX:       x,
		originY:       y,
		originHeading: heading,
	}
}

// Velocity returns the per-tick displacement for the current heading.
// Exactly one component is non-zero.
func (m *Mobile) Velocity() (dx, dy int) {
	return velocity(m.Heading, m.speed)
}

func velocity(h Heading, speed int) (dx, dy int) {
	switch h {
	case Up:
		return 0, -speed
	case Down:
		return 0, speed
	case Left:
		return -speed, 0
	case Right:
		return speed, 0
	}
	panic(fmt.Sprintf("pacman: non-cardinal heading %d", int(h)))
}

// Origin returns the spawn position.
func (m *Mobile) Origin() (x, y int) {
	return m.originX, m.originY
}

// AtOrigin reports whether the occupant is on its spawn position.
func (m *Mobile) AtOrigin() bool {
	return m.Rect.X == m.originX && m.Rect.Y == m.originY
}

// Reset moves the occupant back to its spawn position and heading.
func (m *Mobile) Reset() {
	m.Rect.X = m.originX
	m.Rect.Y = m.originY
	m.Heading = m.originHeading
}
