package config

import (
	"math"
	"testing"
)

func TestDifficultySpeedCurve(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 2.5},
		{14, 2.5},
		{15, 2.8},
		{29, 2.8},
		{30, 3.1},
		{100, 2.5 + 6*0.3},
	}

	for _, tc := range tests {
		if got := d.Speed(tc.score); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Speed(%d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultySpeedMonotone(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)
	prev := d.Speed(0)
	for score := 1; score <= 500; score++ {
		s := d.Speed(score)
		if s < prev {
			t.Fatalf("Speed decreased at score %d: %f < %f", score, s, prev)
		}
		prev = s
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultFlappyConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if d.Speed(1000) != cfg.BaseSpeed {
		t.Errorf("disabled ramp should stay at base speed, got %f", d.Speed(1000))
	}
}
