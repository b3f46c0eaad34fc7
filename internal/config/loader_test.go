package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := ParseShooter(DefaultShooterYAML())
	if err != nil {
		t.Fatalf("ParseShooter(embedded) failed: %v", err)
	}

	if cfg != DefaultShooterConfig() {
		t.Errorf("embedded YAML and DefaultShooterConfig disagree:\n yaml: %+v\n code: %+v", cfg, DefaultShooterConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultShooterConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadShooterCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	data := []byte("language:\n  perplexity_threshold: 75\ntokens:\n  spawn_interval: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}

	if cfg.Language.PerplexityThreshold != 75 {
		t.Errorf("threshold = %f, expected 75", cfg.Language.PerplexityThreshold)
	}
	if cfg.Tokens.SpawnInterval != 30 {
		t.Errorf("spawn interval = %d, expected 30", cfg.Tokens.SpawnInterval)
	}
	// Unlisted values keep their defaults
	if cfg.Field.Width != 160 || cfg.Language.Terminator != "</s>" {
		t.Errorf("partial config should keep defaults, got %+v", cfg)
	}
}

func TestLoadShooterErrors(t *testing.T) {
	if _, err := LoadShooter(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadShooter(path); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
		want   string
	}{
		{"zero spawn interval", func(c *ShooterConfig) { c.Tokens.SpawnInterval = 0 }, "spawn_interval"},
		{"inverted batch", func(c *ShooterConfig) { c.Tokens.MinBatch = 4 }, "batch bounds"},
		{"smoothing too large", func(c *ShooterConfig) { c.Language.Smoothing = 2 }, "smoothing"},
		{"zero smoothing", func(c *ShooterConfig) { c.Language.Smoothing = 0 }, "smoothing"},
		{"empty terminator", func(c *ShooterConfig) { c.Language.Terminator = "" }, "terminator"},
		{"ui strip fills field", func(c *ShooterConfig) { c.Field.UIHeight = 115 }, "ui strip"},
		{"narrow field", func(c *ShooterConfig) { c.Field.Width = 4 }, "field.width"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestApplyShooterPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		threshold float64
	}{
		{"", false, 50},
		{DifficultyEasy, true, 80},
		{DifficultyNormal, true, 50},
		{DifficultyHard, true, 35},
		{DifficultyFixed, false, 50},
	}

	for _, tc := range tests {
		cfg := DefaultShooterConfig()
		ApplyShooterPreset(&cfg, tc.preset)

		if cfg.Difficulty.Enabled != tc.enabled {
			t.Errorf("preset %q: enabled = %v, expected %v", tc.preset, cfg.Difficulty.Enabled, tc.enabled)
		}
		if cfg.Language.PerplexityThreshold != tc.threshold {
			t.Errorf("preset %q: threshold = %f, expected %f", tc.preset, cfg.Language.PerplexityThreshold, tc.threshold)
		}
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
}
