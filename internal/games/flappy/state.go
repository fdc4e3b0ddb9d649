package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the single owned aggregate of everything a session mutates.
// Replacing it with newState is the whole reset; nothing lives outside it.
type State struct {
	Mode    core.Mode
	Session int    // Generation, increments on every start
	Tick    uint64 // Running ticks in this session
	Clock   int64  // Session time in ms; frozen while paused

	Player    Player
	Obstacles []Obstacle
	PowerUps  []PowerUp
	Particles []Particle
	Clouds    []Cloud
	Ground    float64 // Ground scroll offset in (-pattern, 0]

	Score    int
	Distance float64
	Speed    float64 // Base obstacle speed, derived from score
	Combo    int
	Timers   Timers

	nextObstacleID int
	nextPowerUpID  int
	nextParticleID int

	rng           *rand.Rand
	obstacleClock Cadence
	powerUpClock  Cadence
	particleClock Cadence
	cloudClock    Cadence
	groundClock   Cadence
}

// newState builds the initial state for a session.
func newState(cfg config.FlappyConfig, seed int64, session int, speed float64) *State {
	clouds := make([]Cloud, len(initialClouds))
	copy(clouds, initialClouds)

	return &State{
		Mode:    core.ModeNotStarted,
		Session: session,
		Player: Player{
			X:    cfg.Player.StartX,
			Y:    cfg.Player.StartY,
			Size: cfg.Player.Size,
		},
		Obstacles: make([]Obstacle, 0, 8),
		PowerUps:  make([]PowerUp, 0, 4),
		Clouds:    clouds,
		Speed:     speed,

		rng:           rand.New(rand.NewSource(seed)),
		obstacleClock: NewCadence(cfg.Obstacles.SpawnPeriod),
		powerUpClock:  NewCadence(cfg.PowerUps.SpawnPeriod),
		particleClock: NewCadence(cfg.Timing.ParticleMS),
		cloudClock:    NewCadence(cfg.Timing.CloudMS),
		groundClock:   NewCadence(cfg.Timing.GroundMS),
	}
}
