package pacman

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Phase is the round lifecycle state.
type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Defaults applied to zero-valued Options fields.
const (
	DefaultTickInterval  = 50 * time.Millisecond
	DefaultIntroDuration = 1200 * time.Millisecond
	DefaultStartingLives = 3
	PointsPerCollectible = 10
)

// ErrOptions reports an unusable construction parameter.
var ErrOptions = errors.New("pacman: invalid options")

// Options are the construction parameters of a Round.
// Zero values select the defaults.
type Options struct {
	Layout        Layout
	TileSize      int
	FunnelRow     int
	TickInterval  time.Duration
	IntroDuration time.Duration
	StartingLives int
	Seed          int64

	// Rand overrides the generator built from Seed.
	Rand HeadingSource
}

func (o Options) withDefaults() Options {
	if o.Layout == nil {
		o.Layout = DefaultLayout
	}
	if o.TileSize == 0 {
		o.TileSize = DefaultTileSize
	}
	if o.FunnelRow == 0 {
		o.FunnelRow = DefaultFunnelRow
	}
	if o.TickInterval == 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.IntroDuration == 0 {
		o.IntroDuration = DefaultIntroDuration
	}
	if o.StartingLives == 0 {
		o.StartingLives = DefaultStartingLives
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(o.Seed))
	}
	return o
}

// IntroTicks returns how many ticks the intro lasts: max(1, intro / tick) in
// whole milliseconds.
func IntroTicks(tickInterval, intro time.Duration) int {
	tickMs := int(tickInterval / time.Millisecond)
	if tickMs <= 0 {
		return 1
	}
	return max(1, int(intro/time.Millisecond)/tickMs)
}

// Round owns every mutable entity of one playthrough and advances it one tick
// at a time. It is not safe for concurrent use; the host serializes input and
// ticks onto one goroutine.
type Round struct {
	opts       Options
	rng        HeadingSource
	introTicks int
	funnelY    int

	board        *Board
	player       Mobile
	adversaries  []Mobile
	collectibles map[Cell]Static
	perLevel     int

	desired    Heading
	hasDesired bool

	phase     Phase
	introLeft int
	score     int
	lives     int
	level     int
	tick      uint64
	quit      bool
}

// NewRound validates the options, parses the layout and starts in Intro.
func NewRound(opts Options) (*Round, error) {
	opts = opts.withDefaults()

	if opts.TickInterval < time.Millisecond {
		return nil, fmt.Errorf("%w: tick interval %v is below 1ms", ErrOptions, opts.TickInterval)
	}
	if opts.IntroDuration < 0 {
		return nil, fmt.Errorf("%w: negative intro duration %v", ErrOptions, opts.IntroDuration)
	}
	if opts.StartingLives < 0 {
		return nil, fmt.Errorf("%w: starting lives %d", ErrOptions, opts.StartingLives)
	}
	if opts.FunnelRow < 0 || opts.FunnelRow >= Rows {
		return nil, fmt.Errorf("%w: funnel row %d outside 0..%d", ErrOptions, opts.FunnelRow, Rows-1)
	}
	if _, err := ParseLayout(opts.Layout, opts.TileSize); err != nil {
		return nil, err
	}

	r := &Round{
		opts:       opts,
		rng:        opts.Rand,
		introTicks: IntroTicks(opts.TickInterval, opts.IntroDuration),
		funnelY:    opts.FunnelRow * opts.TileSize,
	}
	r.start()
	return r, nil
}

// start resets score, lives and level and loads a fresh level.
func (r *Round) start() {
	r.score = 0
	r.lives = r.opts.StartingLives
	r.level = 1
	r.loadLevel()
	r.enterIntro()
}

// loadLevel re-parses the layout into fresh occupants with new adversary headings.
func (r *Round) loadLevel() {
	level, err := ParseLayout(r.opts.Layout, r.opts.TileSize)
	if err != nil {
		// NewRound already parsed this exact layout.
		panic(err)
	}
	r.board = level.Board
	r.player = level.Player
	r.adversaries = level.Adversaries
	r.collectibles = level.Collectibles
	r.perLevel = len(level.Collectibles)
	r.hasDesired = false
	for i := range r.adversaries {
		redrawHeading(&r.adversaries[i], r.board, r.rng)
	}
}

func (r *Round) enterIntro() {
	r.phase = PhaseIntro
	r.introLeft = r.introTicks
}

// resetMobiles returns every mobile to its origin and redraws adversary headings.
func (r *Round) resetMobiles() {
	r.player.Reset()
	r.hasDesired = false
	for i := range r.adversaries {
		r.adversaries[i].Reset()
		redrawHeading(&r.adversaries[i], r.board, r.rng)
	}
}

// AdvanceTick runs one simulation step and returns the resulting state.
// After RequestQuit it does nothing.
func (r *Round) AdvanceTick() Snapshot {
	if r.quit {
		return r.Snapshot()
	}
	r.tick++

	switch r.phase {
	case PhaseIntro:
		r.introLeft--
		if r.introLeft <= 0 {
			r.introLeft = 0
			r.phase = PhasePlaying
		}
	case PhasePlaying:
		r.play()
	case PhaseGameOver:
	}

	return r.Snapshot()
}

// play is one Playing tick: move, then detect against the settled positions,
// then apply the outcome.
func (r *Round) play() {
	r.movePlayer()
	for i := range r.adversaries {
		stepAdversary(&r.adversaries[i], r.board, r.funnelY, r.rng)
	}

	hit, eaten := r.detect()

	if hit {
		r.loseLife()
		return
	}

	for _, cell := range eaten {
		delete(r.collectibles, cell)
		r.score += PointsPerCollectible
	}
	if len(r.collectibles) == 0 {
		r.clearLevel()
	}
}

// movePlayer applies a pending turn through the resolver; an accepted turn is
// the player's step for the tick. Otherwise the player continues straight and
// stalls against walls without losing its heading.
func (r *Round) movePlayer() {
	if r.hasDesired {
		if AttemptHeadingChange(&r.player, r.desired, r.board) {
			r.hasDesired = false
			return
		}
	}
	Advance(&r.player, r.board)
}

// detect is the read pass over the occupant sets. Nothing is mutated here.
func (r *Round) detect() (hit bool, eaten []Cell) {
	for i := range r.adversaries {
		if r.player.Rect.Intersects(r.adversaries[i].Rect) {
			hit = true
			break
		}
	}
	for cell, c := range r.collectibles {
		if r.player.Rect.Intersects(c.Rect) {
			eaten = append(eaten, cell)
		}
	}
	return hit, eaten
}

func (r *Round) loseLife() {
	r.lives--
	if r.lives <= 0 {
		r.lives = 0
		r.phase = PhaseGameOver
		return
	}
	r.resetMobiles()
	r.enterIntro()
}

func (r *Round) clearLevel() {
	r.level++
	r.loadLevel()
	r.enterIntro()
}

// SetDesiredHeading records player intent. It is accepted in every phase and
// validated on the next Playing tick; a blocked heading stays pending until
// it fits or is replaced.
//
// It panics if h is not a cardinal heading.
func (r *Round) SetDesiredHeading(h Heading) {
	mustCardinal(h)
	r.desired = h
	r.hasDesired = true
}

// RequestRestart starts a new game from GameOver. It reports whether the
// request was acted upon; in any other phase it is ignored.
func (r *Round) RequestRestart() bool {
	if r.quit || r.phase != PhaseGameOver {
		return false
	}
	r.start()
	return true
}

// RequestQuit ends the round. Later ticks and restarts are no-ops.
func (r *Round) RequestQuit() {
	r.quit = true
}

// Phase returns the current lifecycle phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Score returns the points earned this game.
func (r *Round) Score() int {
	return r.score
}

// Lives returns the remaining lives.
func (r *Round) Lives() int {
	return r.lives
}

// Level returns the 1-indexed level number.
func (r *Round) Level() int {
	return r.level
}

// Quit reports whether RequestQuit was honored.
func (r *Round) Quit() bool {
	return r.quit
}

// Board returns the static geometry of the current level.
func (r *Round) Board() *Board {
	return r.board
}

// IntroTicks returns the configured intro length in ticks.
func (r *Round) IntroTicks() int {
	return r.introTicks
}

// CollectiblesPerLevel returns how many collectibles a fresh level holds.
func (r *Round) CollectiblesPerLevel() int {
	return r.perLevel
}
