// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import "fmt"

// FlappyConfig contains every tunable of the game. Distances are in world
// units (the logical play field), durations in milliseconds.
type FlappyConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	PowerUps   PowerUpConfig    `yaml:"power_ups"`
	Effects    EffectsConfig    `yaml:"effects"`
	Ambient    AmbientConfig    `yaml:"ambient"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the logical play field.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // Strip at the bottom the player may not enter
}

// PlayerConfig defines the player's bounding square and spawn point.
type PlayerConfig struct {
	Size   float64 `yaml:"size"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// PhysicsConfig defines per-tick physics parameters.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`          // Added to velocity every tick
	JumpStrength    float64 `yaml:"jump_strength"`    // Velocity set on jump (negative = up)
	HorizontalSpeed float64 `yaml:"horizontal_speed"` // Distance per move intent
}

// ObstacleConfig defines pipe geometry and spawning.
type ObstacleConfig struct {
	Width        float64 `yaml:"width"`
	GapSize      float64 `yaml:"gap_size"`
	TopMargin    float64 `yaml:"top_margin"`    // Smallest gap start offset
	BottomMargin float64 `yaml:"bottom_margin"` // Space kept below the gap's end
	SpawnPeriod  int     `yaml:"spawn_period_ms"`
}

// PowerUpConfig defines collectible spawning and effects.
type PowerUpConfig struct {
	SpawnPeriod   int     `yaml:"spawn_period_ms"`
	Probability   float64 `yaml:"probability"`
	TopMargin     float64 `yaml:"top_margin"`
	BottomMargin  float64 `yaml:"bottom_margin"`
	PickupRadius  float64 `yaml:"pickup_radius"`
	ExitX         float64 `yaml:"exit_x"` // Removed once x reaches this value
	ShieldMS      int     `yaml:"shield_ms"`
	SlowMotionMS  int     `yaml:"slow_motion_ms"`
	SlowMotionMul float64 `yaml:"slow_motion_factor"`
}

// EffectsConfig defines status timers and collision effects.
type EffectsConfig struct {
	InvincibleMS   int     `yaml:"invincible_ms"`
	ComboDecayMS   int     `yaml:"combo_decay_ms"`
	ComboBannerMS  int     `yaml:"combo_banner_ms"`
	JumpFlashMS    int     `yaml:"jump_flash_ms"`
	ShakeMS        int     `yaml:"shake_ms"`
	ParticleCount  int     `yaml:"particle_count"`
	ParticleSpeed  float64 `yaml:"particle_speed"` // Spread of initial velocity on each axis
	ParticleWeight float64 `yaml:"particle_gravity"`
}

// AmbientConfig defines purely cosmetic scrolling.
type AmbientConfig struct {
	GroundSpeed   float64 `yaml:"ground_speed"`
	GroundPattern float64 `yaml:"ground_pattern"` // Offset wraps modulo this length
	CloudDrift    float64 `yaml:"cloud_drift"`
	CloudExitX    float64 `yaml:"cloud_exit_x"`
	CloudReentry  float64 `yaml:"cloud_reentry"` // Added to field width on wrap
}

// TimingConfig defines the cadence of each periodic activity.
type TimingConfig struct {
	TickMS     int `yaml:"tick_ms"`
	ParticleMS int `yaml:"particle_ms"`
	CloudMS    int `yaml:"cloud_ms"`
	GroundMS   int `yaml:"ground_ms"`
}

// DifficultyConfig defines the speed ramp driven by score.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	BaseSpeed      float64 `yaml:"base_speed"`
	ScoreStep      int     `yaml:"score_step"`
	SpeedIncrement float64 `yaml:"speed_increment"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset resolves a preset name. The empty string keeps the
// configured difficulty.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// SpeedFactorForPreset returns the base speed multiplier for a preset.
func SpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
