package config

// DifficultyManager maps score to obstacle speed.
// Speed is a pure, non-decreasing function of score; time plays no part.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.ScoreStep > 0
}

// Level returns the number of completed score steps.
func (d *DifficultyManager) Level(score int) int {
	if !d.IsEnabled() || score <= 0 {
		return 0
	}
	return score / d.cfg.ScoreStep
}

// Speed returns base + floor(score/step) * increment.
func (d *DifficultyManager) Speed(score int) float64 {
	return d.cfg.BaseSpeed + float64(d.Level(score))*d.cfg.SpeedIncrement
}
