package core

// RuntimeConfig contains platform parameters passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Mode is the top-level session mode.
type Mode int

const (
	ModeNotStarted Mode = iota
	ModeRunning
	ModePaused
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNotStarted:
		return "not-started"
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// GameState summarizes a game for the platform layer.
type GameState struct {
	Score    int  // Current score
	Distance int  // Distance travelled this session
	Mode     Mode // Current session mode
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the session is paused
	Session  int  // Session generation, increments on every start
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// HighScoreStore is the persistence boundary for the single best score.
// Implementations may fail; callers treat failures as "no high score".
type HighScoreStore interface {
	GetHighScore() (int, error)
	SetHighScore(score int) error
}
