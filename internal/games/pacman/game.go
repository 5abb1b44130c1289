package pacman

import (
	"sync"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// ID is the registry identifier and the game id stored with scores.
const ID = "pacman"

// Package-level base options, set from the loaded config before games are created.
var (
	baseMu      sync.RWMutex
	baseOptions Options
)

// SetOptions sets the base options used by every game created afterwards.
// TickInterval, StartingLives and Seed are overridden by the runtime config;
// a Rand set here still takes precedence over the seed.
func SetOptions(opts Options) {
	baseMu.Lock()
	defer baseMu.Unlock()
	baseOptions = opts
}

// BaseOptions returns the options set by SetOptions.
func BaseOptions() Options {
	baseMu.RLock()
	defer baseMu.RUnlock()
	return baseOptions
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game adapts a Round to the registry.Game interface driven by the terminal platform.
type Game struct {
	round      *Round
	err        error
	difficulty string
}

// New creates an idle game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Reset builds a fresh round from the base options and the runtime config.
// A configuration error leaves the game without a round; Err reports it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	opts := BaseOptions()
	opts.TickInterval = cfg.TickInterval
	opts.StartingLives = cfg.StartingLives
	opts.Seed = cfg.Seed

	g.difficulty = cfg.Difficulty
	g.round, g.err = NewRound(opts)
}

// Err returns the error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Round exposes the underlying round, nil after a failed Reset.
func (g *Game) Round() *Round {
	return g.round
}

// Step merges the frame's input into the round and advances one tick.
//
// Quit ends the round. In GameOver any other input restarts; a direction
// pressed with it becomes the first desired heading of the new game.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.round.RequestQuit()
		return core.StepResult{State: g.State()}
	}

	if g.round.Phase() == PhaseGameOver && !in.Empty() {
		g.round.RequestRestart()
	}

	if h, ok := headingFor(in.Last); ok {
		g.round.SetDesiredHeading(h)
	}

	g.round.AdvanceTick()
	return core.StepResult{State: g.State()}
}

func headingFor(a core.Action) (Heading, bool) {
	switch a {
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.round.Score(),
		Lives:    g.round.Lives(),
		Level:    g.round.Level(),
		Phase:    g.round.Phase().String(),
		GameOver: g.round.Phase() == PhaseGameOver,
		Quit:     g.round.Quit(),
	}
}

// Snapshot returns the round snapshot, or the zero value before Reset.
func (g *Game) Snapshot() Snapshot {
	if g.round == nil {
		return Snapshot{}
	}
	return g.round.Snapshot()
}
