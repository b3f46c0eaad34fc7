package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads the sentence shooter configuration.
// Search order: customPath -> ~/.wordshot/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseShooter(data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shooter.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseShooter(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "shooter.yaml")); err == nil {
		if cfg, err := ParseShooter(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseShooter(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseShooter decodes YAML on top of the defaults, so a file only needs
// to list the values it changes.
func ParseShooter(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordshot", "configs", filename)
}

// Validate reports values the simulation cannot run with.
func (c ShooterConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	f := c.Field
	check(f.Width > c.Player.Size, "field.width %.1f must exceed player.size %.1f", f.Width, c.Player.Size)
	check(f.UIHeight >= 0, "field.ui_height must not be negative")
	check(f.Height-f.UIHeight > c.Player.Size, "field.height %.1f leaves no room below the %.1f ui strip", f.Height, f.UIHeight)
	check(c.Player.Speed > 0, "player.speed must be positive")
	check(c.Bullets.Speed > 0, "bullets.speed must be positive")
	check(c.Tokens.Speed > 0, "tokens.speed must be positive")
	check(c.Tokens.SpawnInterval > 0, "tokens.spawn_interval must be positive")
	check(c.Tokens.MinBatch > 0 && c.Tokens.MinBatch <= c.Tokens.MaxBatch,
		"tokens batch bounds [%d, %d] are invalid", c.Tokens.MinBatch, c.Tokens.MaxBatch)
	check(float64(2*c.Tokens.EdgeMargin) <= f.Height-f.UIHeight, "tokens.edge_margin %d is too large for the field", c.Tokens.EdgeMargin)
	check(c.Collision.Tolerance > 0, "collision.tolerance must be positive")
	check(c.Language.Smoothing > 0 && c.Language.Smoothing <= 1, "language.smoothing %g must be in (0, 1]", c.Language.Smoothing)
	check(c.Language.PerplexityThreshold > 0, "language.perplexity_threshold must be positive")
	check(c.Language.Terminator != "", "language.terminator must not be empty")
	check(c.Language.TerminatorRatio >= 1, "language.terminator_ratio must be at least 1")
	check(c.Language.RecentWords >= 1, "language.recent_words must be at least 1")
	check(c.Difficulty.Scaling.SpeedMultiplier >= 0, "difficulty.scaling.speed_multiplier must not be negative")
	check(c.Difficulty.Scaling.SpawnReduction >= 0 && c.Difficulty.Scaling.SpawnReduction < 1,
		"difficulty.scaling.spawn_reduction %g must be in [0, 1)", c.Difficulty.Scaling.SpawnReduction)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid shooter config: %w", errors.Join(errs...))
	}
	return nil
}
