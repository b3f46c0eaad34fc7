package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default sentence shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Width:    160,
			Height:   120,
			UIHeight: 35,
		},
		Player: PlayerConfig{
			Speed:  2.0,
			Size:   8,
			StartX: 20,
		},
		Bullets: BulletConfig{
			Speed: 5.0,
			Size:  2,
		},
		Tokens: TokenConfig{
			Speed:         1.0,
			SpawnInterval: 60,
			MinBatch:      2,
			MaxBatch:      3,
			SpawnOffset:   10,
			EdgeMargin:    10,
			ExitX:         -30,
		},
		Collision: CollisionConfig{
			Tolerance: 6,
		},
		Language: LanguageConfig{
			PerplexityThreshold: 50.0,
			Smoothing:           1e-2,
			Terminator:          "</s>",
			TerminatorRatio:     10,
			RecentWords:         5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnReduction:  0.5,
			},
		},
	}
}

// DefaultShooterYAML returns the embedded default YAML.
func DefaultShooterYAML() []byte {
	return defaultShooterYAML
}
