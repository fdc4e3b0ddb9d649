// Package flappy implements a Flappy Bird-style obstacle dodger.
// The player flaps through gaps in approaching pipes while collecting
// shields and slow-motion power-ups, building score, combos and distance.
//
// All simulation happens in Step, one fixed tick at a time. The game owns a
// single State aggregate; every periodic activity and one-shot timer is
// driven from that tick, so a tick is applied as a whole or not at all.
package flappy

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Game implements the session controller.
type Game struct {
	profile    Profile
	env        registry.Env
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	cfgErr     error // Setup failure; sessions refuse to start while set
	log        *log.Logger

	st        *State
	seed      int64
	highScore int
	newRecord bool
}

// New creates a game for the given tuning profile.
func New(p Profile, env registry.Env) *Game {
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		profile: p,
		env:     env,
		log:     logger.With("profile", p.ID),
	}
}

// NewWithConfig creates a game with an explicit configuration, skipping
// the file search. Used by tests and embedders.
func NewWithConfig(cfg config.FlappyConfig, env registry.Env) *Game {
	g := New(Profile{ID: "custom", Title: "Custom"}, env)
	g.cfg = cfg
	g.profile.config = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.profile.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.profile.Title
}

// Reset initializes the controller: loads and validates configuration,
// reads the stored high score and waits for a start intent.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.seed = rc.Seed
	g.cfg, g.cfgErr = g.profile.Load(g.env)
	if g.cfgErr != nil {
		g.log.Error("configuration rejected", "error", g.cfgErr)
		g.cfg = config.DefaultFlappyConfig()
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.highScore = g.loadHighScore()
	g.newRecord = false
	g.st = newState(g.cfg, g.seed, 0, g.difficulty.Speed(0))
}

// Err returns the configuration error that blocks sessions, if any.
func (g *Game) Err() error {
	return g.cfgErr
}

// TickInterval returns the wall-clock length of one simulation tick.
func (g *Game) TickInterval() time.Duration {
	ms := g.cfg.Timing.TickMS
	if ms <= 0 {
		ms = config.DefaultFlappyConfig().Timing.TickMS
	}
	return time.Duration(ms) * time.Millisecond
}

// Step processes this tick's intents and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.st == nil {
		g.Reset(core.DefaultConfig())
	}

	switch g.st.Mode {
	case core.ModeNotStarted, core.ModeGameOver:
		if in.Has(core.ActionStartOrRestart) {
			g.start()
			return core.StepResult{State: g.State()}
		}
	case core.ModeRunning, core.ModePaused:
		if in.Has(core.ActionTogglePause) {
			g.togglePause()
		}
	}

	switch g.st.Mode {
	case core.ModeRunning:
		if in.Has(core.ActionJump) {
			g.jump()
		}
		g.move(in.Count(core.ActionMoveRight) - in.Count(core.ActionMoveLeft))
		g.tick()
	case core.ModeGameOver:
		g.aftermath()
	}

	return core.StepResult{State: g.State()}
}

// tick is one running simulation step.
func (g *Game) tick() {
	dt := g.cfg.Timing.TickMS
	g.st.Tick++
	g.st.Clock += int64(dt)
	g.expireTimers(g.st.Clock - int64(dt))

	if g.stepPhysics() {
		return
	}
	if g.stepWorld() {
		return
	}
	g.spawn(dt)
	g.stepAmbient(dt)
}

// aftermath keeps cosmetic effects (debris, shake) running after game over.
// Score, distance and the world stay frozen.
func (g *Game) aftermath() {
	dt := g.cfg.Timing.TickMS
	g.st.Clock += int64(dt)
	g.expireTimers(g.st.Clock - int64(dt))
	g.stepAmbient(dt)
}

// start begins a new session, replacing all session state.
func (g *Game) start() {
	if g.cfgErr != nil {
		g.log.Warn("cannot start session", "error", g.cfgErr)
		return
	}

	// Other sessions may share the store; pick up their records.
	if best := g.loadHighScore(); best > g.highScore {
		g.highScore = best
	}

	session := g.st.Session + 1
	g.st = newState(g.cfg, g.seed+int64(session-1), session, g.difficulty.Speed(0))
	g.st.Mode = core.ModeRunning
	g.st.Timers.Arm(EffectInvincible, g.st.Clock, g.cfg.Effects.InvincibleMS)
	g.newRecord = false

	g.log.Debug("session started", "session", session, "high_score", g.highScore)
}

func (g *Game) togglePause() {
	switch g.st.Mode {
	case core.ModeRunning:
		g.st.Mode = core.ModePaused
	case core.ModePaused:
		g.st.Mode = core.ModeRunning
	}
}

// endSession enters game over and commits the high score once.
func (g *Game) endSession(cause string) {
	g.st.Mode = core.ModeGameOver
	g.burst()
	g.st.Timers.Arm(EffectShake, g.st.Clock, g.cfg.Effects.ShakeMS)

	g.log.Info("game over",
		"cause", cause,
		"score", g.st.Score,
		"distance", int(g.st.Distance),
		"session", g.st.Session,
	)

	if g.st.Score > g.highScore {
		g.highScore = g.st.Score
		g.newRecord = true
		g.saveHighScore(g.st.Score)
	}
}

// loadHighScore reads the stored best; storage failures count as 0.
func (g *Game) loadHighScore() int {
	if g.env.HighScores == nil {
		return 0
	}
	score, err := g.env.HighScores.GetHighScore()
	if err != nil {
		g.log.Warn("could not read high score", "error", err)
		return 0
	}
	return score
}

func (g *Game) saveHighScore(score int) {
	if g.env.HighScores == nil {
		return
	}
	if err := g.env.HighScores.SetHighScore(score); err != nil {
		g.log.Warn("could not save high score", "score", score, "error", err)
		return
	}
	g.log.Info("new high score", "score", score)
}

// HighScore returns the best known score.
func (g *Game) HighScore() int {
	return g.highScore
}

// State returns the platform-level summary of the game.
func (g *Game) State() core.GameState {
	if g.st == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.st.Score,
		Distance: int(g.st.Distance),
		Mode:     g.st.Mode,
		GameOver: g.st.Mode == core.ModeGameOver,
		Paused:   g.st.Mode == core.ModePaused,
		Session:  g.st.Session,
	}
}
