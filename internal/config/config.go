// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import "fmt"

// ShooterConfig contains all tunable constants of the sentence shooter.
// Coordinates are play-area units, not terminal cells.
type ShooterConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Tokens     TokenConfig      `yaml:"tokens"`
	Collision  CollisionConfig  `yaml:"collision"`
	Language   LanguageConfig   `yaml:"language"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play area. The top UIHeight rows hold the HUD
// and are off limits to the player.
type FieldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	UIHeight float64 `yaml:"ui_height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`
	Size   float64 `yaml:"size"`
	StartX float64 `yaml:"start_x"`
}

// BulletConfig defines bullets.
type BulletConfig struct {
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

// TokenConfig defines word tokens and their spawning.
type TokenConfig struct {
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between batches
	MinBatch      int     `yaml:"min_batch"`
	MaxBatch      int     `yaml:"max_batch"`
	SpawnOffset   float64 `yaml:"spawn_offset"` // Distance past the right edge
	EdgeMargin    int     `yaml:"edge_margin"`  // Vertical margin inside the play area
	ExitX         float64 `yaml:"exit_x"`       // Tokens left of this are gone
}

// CollisionConfig defines bullet/token hit detection.
type CollisionConfig struct {
	Tolerance float64 `yaml:"tolerance"` // Max distance on each axis
}

// LanguageConfig defines the language model side of the game.
type LanguageConfig struct {
	PerplexityThreshold float64 `yaml:"perplexity_threshold"`
	Smoothing           float64 `yaml:"smoothing"`
	Terminator          string  `yaml:"terminator"`
	TerminatorRatio     int     `yaml:"terminator_ratio"` // One terminator per N pool words
	RecentWords         int     `yaml:"recent_words"`     // Words shown in the HUD
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to token speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ThresholdForPreset returns the perplexity threshold for a preset, or
// fallback when the preset does not change it.
func ThresholdForPreset(preset DifficultyPreset, fallback float64) float64 {
	switch preset {
	case DifficultyEasy:
		return 80
	case DifficultyHard:
		return 35
	default:
		return fallback
	}
}

// ParsePreset validates a preset name. An empty name is accepted and means
// "keep the configured values".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
	cfg.Language.PerplexityThreshold = ThresholdForPreset(preset, cfg.Language.PerplexityThreshold)
}
