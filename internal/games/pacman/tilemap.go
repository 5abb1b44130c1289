package pacman

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Map dimensions in tiles.
const (
	Rows    = 21
	Columns = 19
)

// DefaultTileSize is the edge length of one tile in pixel units.
const DefaultTileSize = 32

// Layout markers.
const (
	markWall        = 'X'
	markCollectible = ' '
	markEmpty       = 'O'
	markPlayer      = 'P'
	markBlue        = 'b'
	markOrange      = 'o'
	markPink        = 'p'
	markRed         = 'r'
)

// Layout is an ordered sequence of text rows, one character per tile.
type Layout []string

// DefaultLayout is the classic maze.
//
//	X = wall, O = empty, P = player start, ' ' = collectible
//	b, o, p, r = blue, orange, pink and red adversaries
var DefaultLayout = Layout{
	"XXXXXXXXXXXXXXXXXXX",
	"X        X        X",
	"X XX XXX X XXX XX X",
	"X                 X",
	"X XX X XXXXX X XX X",
	"X    X       X    X",
	"XXXX XXXX XXXX XXXX",
	"OOOX X       X XOOO",
	"XXXX X XXrXX X XXXX",
	"O       bpo       O",
	"XXXX X XXXXX X XXXX",
	"OOOX X       X XOOO",
	"XXXX X XXXXX X XXXX",
	"X        X        X",
	"X XX XXX X XXX XX X",
	"X  X     P     X  X",
	"XX X X XXXXX X X XX",
	"X    X   X   X    X",
	"X XXXXXX X XXXXXX X",
	"X                 X",
	"XXXXXXXXXXXXXXXXXXX",
}

// Configuration errors returned by ParseLayout. They are fatal at construction.
var (
	ErrMalformedLayout = errors.New("pacman: malformed layout")
	ErrPlayerMarker    = errors.New("pacman: layout must contain exactly one player start")
	ErrTileSize        = errors.New("pacman: tile size must be a positive multiple of 8")
)

// Cell addresses a tile by row and column.
type Cell struct {
	Row, Col int
}

// Board is the static geometry of a parsed layout: walls and map bounds.
type Board struct {
	tileSize int
	bounds   core.Rect
	walls    []Static
	wallAt   map[Cell]bool
}

// Level is everything a layout parses into. The board is shared read-only;
// the collectibles and mobiles belong to whichever round loaded the level.
type Level struct {
	Board        *Board
	Collectibles map[Cell]Static
	Player       Mobile
	Adversaries  []Mobile
}

// Validate checks the layout shape and player marker without building occupants.
func (l Layout) Validate() error {
	if len(l) != Rows {
		return fmt.Errorf("%w: %d rows, expected %d", ErrMalformedLayout, len(l), Rows)
	}

	players := 0
	for r, row := range l {
		if len(row) != Columns {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", ErrMalformedLayout, r, len(row), Columns)
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case markPlayer:
				players++
			case markWall, markCollectible, markEmpty, markBlue, markOrange, markPink, markRed:
			default:
				return fmt.Errorf("%w: unknown marker %q at row %d, column %d", ErrMalformedLayout, row[c], r, c)
			}
		}
	}

	if players != 1 {
		return fmt.Errorf("%w: found %d", ErrPlayerMarker, players)
	}
	return nil
}

// ParseLayout turns a layout into walls, collectibles, the player and the adversaries.
// Adversaries are returned in row-major order of their markers.
func ParseLayout(layout Layout, tileSize int) (*Level, error) {
	if tileSize < 8 || tileSize%8 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrTileSize, tileSize)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	board := &Board{
		tileSize: tileSize,
		bounds:   core.NewRect(0, 0, Columns*tileSize, Rows*tileSize),
		wallAt:   make(map[Cell]bool),
	}
	level := &Level{
		Board:        board,
		Collectibles: make(map[Cell]Static),
	}

	pelletSize := tileSize / 8
	pelletOffset := (tileSize - pelletSize) / 2

	for r, row := range layout {
		for c := 0; c < len(row); c++ {
			cell := Cell{Row: r, Col: c}
			x, y := c*tileSize, r*tileSize

			switch ch := row[c]; ch {
			case markWall:
				board.walls = append(board.walls, Static{
					Kind: KindWall,
					Cell: cell,
					Rect: core.NewRect(x, y, tileSize, tileSize),
				})
				board.wallAt[cell] = true
			case markCollectible:
				level.Collectibles[cell] = Static{
					Kind: KindCollectible,
					Cell: cell,
					Rect: core.NewRect(x+pelletOffset, y+pelletOffset, pelletSize, pelletSize),
				}
			case markPlayer:
				level.Player = newMobile(KindPlayer, VariantNone, x, y, tileSize, Right)
			case markBlue, markOrange, markPink, markRed:
				level.Adversaries = append(level.Adversaries,
					newMobile(KindAdversary, variantFor(ch), x, y, tileSize, Up))
			}
		}
	}

	return level, nil
}

func variantFor(ch byte) Variant {
	switch ch {
	case markBlue:
		return VariantBlue
	case markOrange:
		return VariantOrange
	case markPink:
		return VariantPink
	case markRed:
		return VariantRed
	default:
		return VariantNone
	}
}

// TileSize returns the tile edge length in pixels.
func (b *Board) TileSize() int {
	return b.tileSize
}

// Bounds returns the board rectangle in pixels.
func (b *Board) Bounds() core.Rect {
	return b.bounds
}

// Walls returns the wall occupants in row-major order.
func (b *Board) Walls() []Static {
	return b.walls
}

// IsWall reports whether the given cell holds a wall.
func (b *Board) IsWall(cell Cell) bool {
	return b.wallAt[cell]
}

// Blocked reports whether a box leaves the board or overlaps any wall.
// Only the cells the box spans are consulted, which gives the same answer
// as testing every wall.
func (b *Board) Blocked(r core.Rect) bool {
	if !r.Within(b.bounds) {
		return true
	}
	for row := r.Y / b.tileSize; row <= (r.Bottom()-1)/b.tileSize; row++ {
		for col := r.X / b.tileSize; col <= (r.Right()-1)/b.tileSize; col++ {
			if b.wallAt[Cell{Row: row, Col: col}] {
				return true
			}
		}
	}
	return false
}
