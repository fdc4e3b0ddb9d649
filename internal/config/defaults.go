package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FieldConfig{
			Width:        800,
			Height:       500,
			GroundHeight: 80,
		},
		Player: PlayerConfig{
			Size:   45,
			StartX: 50,
			StartY: 250,
		},
		Physics: PhysicsConfig{
			Gravity:         0.5,
			JumpStrength:    -10,
			HorizontalSpeed: 8,
		},
		Obstacles: ObstacleConfig{
			Width:        60,
			GapSize:      200,
			TopMargin:    50,
			BottomMargin: 130,
			SpawnPeriod:  2500,
		},
		PowerUps: PowerUpConfig{
			SpawnPeriod:   5000,
			Probability:   0.2,
			TopMargin:     50,
			BottomMargin:  100,
			PickupRadius:  40,
			ExitX:         -30,
			ShieldMS:      5000,
			SlowMotionMS:  3000,
			SlowMotionMul: 0.5,
		},
		Effects: EffectsConfig{
			InvincibleMS:   2000,
			ComboDecayMS:   3000,
			ComboBannerMS:  1000,
			JumpFlashMS:    200,
			ShakeMS:        200,
			ParticleCount:  15,
			ParticleSpeed:  12,
			ParticleWeight: 0.5,
		},
		Ambient: AmbientConfig{
			GroundSpeed:   2.5,
			GroundPattern: 100,
			CloudDrift:    0.5,
			CloudExitX:    -100,
			CloudReentry:  50,
		},
		Timing: TimingConfig{
			TickMS:     20,
			ParticleMS: 30,
			CloudMS:    50,
			GroundMS:   20,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			BaseSpeed:      2.5,
			ScoreStep:      15,
			SpeedIncrement: 0.3,
		},
	}
}
