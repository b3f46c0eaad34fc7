package config

import (
	"math"
	"testing"
)

func TestPaceDisabledIsBase(t *testing.T) {
	cfg := DefaultShooterConfig()
	dm := NewDifficultyManager(cfg.Difficulty)

	if dm.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	for _, score := range []int{0, 10, 1000} {
		got := dm.Pace(cfg.Tokens, score, score*10)
		if got.TokenSpeed != 1.0 || got.SpawnInterval != 60 {
			t.Errorf("Pace at score %d = %+v, expected base {1 60}", score, got)
		}
	}
}

func TestPaceScoreProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, SpawnReduction: 0.5},
	})
	base := TokenConfig{Speed: 1.0, SpawnInterval: 60}

	tests := []struct {
		score    int
		level    float64
		speed    float64
		interval int
	}{
		{0, 0.0, 1.0, 60},
		{5, 0.5, 1.5, 45},
		{10, 1.0, 2.0, 30},
		{50, 1.0, 2.0, 30},
	}

	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); math.Abs(got-tc.level) > 1e-12 {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.level)
		}
		p := dm.Pace(base, tc.score, 0)
		if math.Abs(p.TokenSpeed-tc.speed) > 1e-12 || p.SpawnInterval != tc.interval {
			t.Errorf("Pace(%d) = %+v, expected {%f %d}", tc.score, p, tc.speed, tc.interval)
		}
	}
}

func TestLevelTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})

	if got := dm.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %f, expected 0.5", got)
	}
	if got := dm.Level(0, 50); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("Level halfway = %f, expected 0.75", got)
	}
	if got := dm.Level(99, 0); got != 0.5 {
		t.Errorf("score should not drive time progression, got %f", got)
	}
}

func TestLevelClampsInitial(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{InitialLevel: 3})
	if got := dm.Level(0, 0); got != 1 {
		t.Errorf("Level = %f, expected clamp to 1", got)
	}
}

func TestPaceIntervalNeverZero(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1},
		Scaling:     ScalingConfig{SpawnReduction: 0.99},
	})
	if got := dm.Pace(TokenConfig{Speed: 1, SpawnInterval: 1}, 5, 0); got.SpawnInterval != 1 {
		t.Errorf("SpawnInterval = %d, expected floor of 1", got.SpawnInterval)
	}
}
