package config

import "math"

// Pace is how fast words arrive at a given point of a run.
type Pace struct {
	TokenSpeed    float64
	SpawnInterval int
}

// DifficultyManager ramps up the token pace as a run goes on.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a manager; InitialLevel is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		start: math.Max(0, math.Min(1, cfg.InitialLevel)),
	}
}

// IsEnabled reports whether the pace changes during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty in [0, 1]. It rises linearly from the
// initial level to 1 as score (or ticks, for "time") approaches MaxAt.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.start
	}

	var n int
	switch d.cfg.Progression.Type {
	case "score":
		n = score
	case "time":
		n = ticks
	default:
		return d.start
	}

	progress := 1.0
	if d.cfg.Progression.MaxAt > 0 {
		progress = math.Min(1, float64(n)/float64(d.cfg.Progression.MaxAt))
	}
	return d.start + progress*(1-d.start)
}

// Pace returns the token pace for the current score and tick. With
// difficulty disabled it is exactly the configured base.
func (d *DifficultyManager) Pace(base TokenConfig, score int, ticks int) Pace {
	p := Pace{TokenSpeed: base.Speed, SpawnInterval: base.SpawnInterval}
	if !d.cfg.Enabled {
		return p
	}

	level := d.Level(score, ticks)
	p.TokenSpeed = base.Speed * (1 + level*d.cfg.Scaling.SpeedMultiplier)
	shrink := level * d.cfg.Scaling.SpawnReduction
	p.SpawnInterval = max(1, int(math.Round(float64(base.SpawnInterval)*(1-shrink))))
	return p
}
