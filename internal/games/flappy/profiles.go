package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Profile is a named tuning of the game.
type Profile struct {
	ID    string
	Title string

	// SpawnPeriod overrides obstacles.spawn_period_ms when positive.
	SpawnPeriod int

	config *config.FlappyConfig // Fixed config, bypasses file loading
}

// Profiles lists the built-in tunings.
var Profiles = []Profile{
	{ID: "classic", Title: "Flappy Classic"},
	{ID: "rush", Title: "Flappy Rush", SpawnPeriod: 2000},
}

// Load resolves the profile's configuration for the given environment and
// validates it.
func (p Profile) Load(env registry.Env) (config.FlappyConfig, error) {
	var cfg config.FlappyConfig
	if p.config != nil {
		cfg = *p.config
	} else {
		loaded, err := config.LoadFlappy(env.ConfigPath)
		if err != nil {
			return config.FlappyConfig{}, err
		}
		cfg = loaded
		preset, err := config.ParseDifficultyPreset(env.Preset)
		if err != nil {
			return config.FlappyConfig{}, err
		}
		config.ApplyFlappyPreset(&cfg, preset)
		if p.SpawnPeriod > 0 {
			cfg.Obstacles.SpawnPeriod = p.SpawnPeriod
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.FlappyConfig{}, fmt.Errorf("profile %s: %w", p.ID, err)
	}
	return cfg, nil
}

// Register the profiles with the registry
func init() {
	for _, p := range Profiles {
		registry.Register(p.ID, p.Title, func(env registry.Env) registry.Game {
			return New(p, env)
		})
	}
}

// ProfileByID looks up a built-in profile.
func ProfileByID(id string) (Profile, bool) {
	for _, p := range Profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}
