// Package blocks implements a falling-block puzzle game on a 10x20 well.
// Pieces fall under gravity, can be shifted and rotated, lock when they
// can no longer descend, and full rows are cleared for points.
package blocks

import (
	"io"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Points awarded for clearing 0-4 rows with a single lock.
var lineScores = [...]int{0, 100, 300, 500, 800}

// Status messages shown after each lock, indexed by rows cleared.
var clearMessages = [...]string{
	"You can do it!",
	"Good job!",
	"Wow!",
	"That's amazing!",
	"Four rows!!!",
}

const (
	welcomeMessage  = "Welcome to Blocks!"
	gameOverMessage = "You lost!"
)

// Package-level settings applied to games built by the registry factory.
var (
	gameConfig = config.DefaultBlocksConfig()
	gameLogger = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.BlocksConfig) {
	gameConfig = cfg
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	gameLogger = l
}

// Option customizes a Game created with New.
type Option func(*Game)

// WithConfig overrides the package-level configuration.
func WithConfig(cfg config.BlocksConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithClock sets the time source driving gravity.
func WithClock(c clock.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithSequencer fixes the piece sequence. Reset keeps using it instead
// of seeding a random one.
func WithSequencer(s Sequencer) Option {
	return func(g *Game) {
		g.seq = s
		g.fixedSeq = true
	}
}

// WithLogger overrides the package-level logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Game is the whole mutable state of one play session. It has exactly
// one writer: the loop calling Step or Tick.
type Game struct {
	cfg      config.BlocksConfig
	clock    clock.Clock
	logger   *log.Logger
	seq      Sequencer
	fixedSeq bool
	runtime  core.RuntimeConfig

	board     Board
	active    Piece
	hasActive bool // false means game over
	next      Shape

	score    int
	lines    int
	pieces   int
	ramp     *config.SpeedRamp
	interval time.Duration
	lastDrop time.Time
	message  string

	paused   bool
	pausedAt time.Time
	tick     uint64
}

// New creates a blocks game. Call Reset before use.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    gameConfig,
		clock:  clock.New(),
		logger: gameLogger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blocks"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if !g.fixedSeq {
		g.seq = NewRandomSequencer(cfg.Seed)
	}

	g.board = Board{}
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.ramp = config.NewSpeedRamp(g.cfg)
	g.interval = g.cfg.Timing.DropInterval()
	g.lastDrop = g.clock.Now()
	g.message = welcomeMessage
	g.paused = false
	g.tick = 0

	first := g.seq.Next(NoKind)
	g.next = first
	g.spawn()
	g.logger.Debug("game started", "seed", cfg.Seed, "interval", g.interval)
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.IsOver() {
		g.runtime.Seed++
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.IsOver() {
		g.SetPaused(!g.paused)
	}

	g.Tick(CommandFor(in.Latest()))
	return core.StepResult{State: g.State()}
}

// Tick applies one command and then gravity, if its interval has elapsed.
// It does nothing once the game is over or while paused.
func (g *Game) Tick(cmd Command) {
	if !g.hasActive || g.paused {
		return
	}

	g.apply(cmd)

	if g.clock.Since(g.lastDrop) < g.interval {
		return
	}
	step := g.interval
	if g.active.CanMoveDown(&g.board) {
		g.active = g.active.Moved(1, 0)
	} else {
		g.lockActive()
	}
	// Advance by one interval rather than to now so late ticks don't drift.
	g.lastDrop = g.lastDrop.Add(step)
}

// apply dispatches a command to the active piece.
func (g *Game) apply(cmd Command) {
	switch cmd {
	case Left:
		g.active = g.active.Move(&g.board, 0, -1)
	case Right:
		g.active = g.active.Move(&g.board, 0, 1)
	case SoftDrop:
		g.active = g.active.Move(&g.board, 1, 0)
	case UpNudge:
		g.active = g.active.Move(&g.board, -1, 0)
	case RotateCCW:
		g.active = g.active.Rotate(&g.board, CounterClockwise)
	case RotateCW:
		g.active = g.active.Rotate(&g.board, Clockwise)
	case DebugCycleShape:
		g.active = g.active.CycleShape()
	}
}

// lockActive merges the active piece into the board, clears rows, and
// brings in the next piece.
func (g *Game) lockActive() {
	g.board.lock(g.active)
	g.pieces++
	g.logger.Debug("piece locked", "shape", g.active.Shape, "row", g.active.Row, "col", g.active.Col)

	cleared := g.board.clearRows()
	g.award(cleared)
	g.spawn()
}

// spawn places the held next shape and draws a new one. A failed
// placement ends the game.
func (g *Game) spawn() {
	shape := g.next
	g.next = g.seq.Next(shape.Kind)

	p, ok := Place(shape, &g.board)
	if !ok {
		g.hasActive = false
		g.active = Piece{}
		g.message = gameOverMessage
		g.logger.Debug("game over", "score", g.score, "lines", g.lines, "pieces", g.pieces)
		return
	}
	g.active = p
	g.hasActive = true
}

// award scores a clear and applies the speed ramp.
func (g *Game) award(cleared int) {
	cleared = min(cleared, len(lineScores)-1)
	g.message = clearMessages[cleared]
	if cleared == 0 {
		return
	}

	g.lines += cleared
	g.score += lineScores[cleared]
	g.logger.Debug("rows cleared", "rows", cleared, "score", g.score)

	before := g.interval
	g.interval = g.ramp.Apply(g.score, g.interval)
	if g.interval != before {
		g.logger.Debug("speed up", "from", before, "to", g.interval, "level", g.Level())
	}
}

// SetPaused freezes or resumes gravity. Time spent paused does not count
// toward the next drop.
func (g *Game) SetPaused(paused bool) {
	if paused == g.paused {
		return
	}
	now := g.clock.Now()
	if paused {
		g.pausedAt = now
	} else {
		g.lastDrop = g.lastDrop.Add(now.Sub(g.pausedAt))
	}
	g.paused = paused
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return !g.hasActive
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.IsOver(),
		Paused:   g.paused,
	}
}

// ActivePiece returns the falling piece, or false once the game is over.
func (g *Game) ActivePiece() (Piece, bool) {
	return g.active, g.hasActive
}

// Board returns a copy of the settled cells.
func (g *Game) Board() Board {
	return g.board
}

// NextShape returns the shape that will spawn after the active piece.
func (g *Game) NextShape() Shape {
	return g.next
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Message returns the current status line.
func (g *Game) Message() string {
	return g.message
}

// Lines returns the total number of rows cleared.
func (g *Game) Lines() int {
	return g.lines
}

// Level returns how many speed thresholds the score has passed.
func (g *Game) Level() int {
	if g.ramp == nil {
		return 0
	}
	return g.ramp.Crossings()
}

// Interval returns the current time between automatic drops.
func (g *Game) Interval() time.Duration {
	return g.interval
}

// Preview is the small grid used for the next-piece display.
type Preview [2][4]Cell

// RenderBoard returns the settled cells overlaid with the landing ghost
// and then the live piece, which wins where they overlap.
func (g *Game) RenderBoard() Board {
	out := g.board
	if !g.hasActive {
		return out
	}

	ghost := g.active.Landed(&g.board)
	for _, c := range ghost.Cells() {
		if InBounds(c.Row, c.Col) {
			out[c.Row][c.Col] = ghost.Shape.Kind.GhostTag()
		}
	}
	for _, c := range g.active.Cells() {
		if InBounds(c.Row, c.Col) {
			out[c.Row][c.Col] = g.active.Shape.Kind.Tag()
		}
	}
	return out
}

// RenderNextPiece returns the next shape drawn in its preview box.
func (g *Game) RenderNextPiece() Preview {
	var p Preview
	if g.next.Kind == NoKind {
		return p
	}
	for _, o := range g.next.Kind.Preview() {
		p[o.Row][o.Col] = g.next.Kind.Tag()
	}
	return p
}
