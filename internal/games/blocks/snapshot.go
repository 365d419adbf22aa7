package blocks

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
// It is comparable with ==.
type Snapshot struct {
	Tick       uint64
	Score      int
	Lines      int
	Level      int
	Pieces     int
	Active     Piece // Zero value once the game is over
	Next       Shape
	Board      Board
	IntervalMS int64
	Message    string
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.IsOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		Lines:      g.lines,
		Level:      g.Level(),
		Pieces:     g.pieces,
		Active:     g.active,
		Next:       g.next,
		Board:      g.board,
		IntervalMS: g.interval.Milliseconds(),
		Message:    g.message,
		State:      state,
	}
}
