package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable field.
func (c FlappyConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		add("field must have positive size, got %gx%g", c.Field.Width, c.Field.Height)
	}
	if c.Player.Size <= 0 || c.Player.Size > c.Field.Width {
		add("player size %g must be in (0, field width]", c.Player.Size)
	}
	if c.Obstacles.Width <= 0 {
		add("obstacle width must be positive, got %g", c.Obstacles.Width)
	}
	if c.Obstacles.GapSize >= c.Field.Height {
		add("gap size %g must be smaller than field height %g", c.Obstacles.GapSize, c.Field.Height)
	}
	if c.Obstacles.GapSize <= c.Player.Size {
		add("gap size %g must exceed player size %g", c.Obstacles.GapSize, c.Player.Size)
	}
	if maxGapY := c.Field.Height - c.Obstacles.GapSize - c.Obstacles.BottomMargin; maxGapY < c.Obstacles.TopMargin {
		add("gap with margins does not fit: max gap start %g < top margin %g", maxGapY, c.Obstacles.TopMargin)
	}
	if c.Field.Height-c.Player.Size-c.Field.GroundHeight < 0 {
		add("player does not fit above ground")
	}
	if c.PowerUps.Probability < 0 || c.PowerUps.Probability > 1 {
		add("power-up probability %g must be in [0, 1]", c.PowerUps.Probability)
	}
	if c.PowerUps.SlowMotionMul <= 0 {
		add("slow motion factor must be positive, got %g", c.PowerUps.SlowMotionMul)
	}

	if c.Ambient.GroundPattern <= 0 {
		add("ambient.ground_pattern must be positive, got %g", c.Ambient.GroundPattern)
	}

	if c.Player.StartX < 0 || c.Player.StartX > c.Field.Width-c.Player.Size {
		add("player.start_x %g must keep the player inside the field", c.Player.StartX)
	}
	if c.Player.StartY < 0 || c.Player.StartY > c.Field.Height-c.Player.Size-c.Field.GroundHeight {
		add("player.start_y %g must keep the player above the ground", c.Player.StartY)
	}
	if c.PowerUps.PickupRadius <= 0 {
		add("power_ups.pickup_radius must be positive, got %g", c.PowerUps.PickupRadius)
	}

	positive := []struct {
		name string
		v    int
	}{
		{"obstacles.spawn_period_ms", c.Obstacles.SpawnPeriod},
		{"power_ups.spawn_period_ms", c.PowerUps.SpawnPeriod},
		{"power_ups.shield_ms", c.PowerUps.ShieldMS},
		{"power_ups.slow_motion_ms", c.PowerUps.SlowMotionMS},
		{"effects.invincible_ms", c.Effects.InvincibleMS},
		{"effects.combo_decay_ms", c.Effects.ComboDecayMS},
		{"timing.tick_ms", c.Timing.TickMS},
		{"timing.particle_ms", c.Timing.ParticleMS},
		{"timing.cloud_ms", c.Timing.CloudMS},
		{"timing.ground_ms", c.Timing.GroundMS},
	}
	for _, p := range positive {
		if p.v <= 0 {
			add("%s must be positive, got %d", p.name, p.v)
		}
	}

	if c.Difficulty.Enabled && c.Difficulty.ScoreStep <= 0 {
		add("difficulty.score_step must be positive, got %d", c.Difficulty.ScoreStep)
	}
	if c.Difficulty.SpeedIncrement < 0 {
		add("difficulty.speed_increment must not be negative, got %g", c.Difficulty.SpeedIncrement)
	}
	if c.Difficulty.BaseSpeed <= 0 {
		add("difficulty.base_speed must be positive, got %g", c.Difficulty.BaseSpeed)
	}

	return errors.Join(errs...)
}
