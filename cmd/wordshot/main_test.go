package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/wordshot/internal/config"
)

func TestNormalizeSentence(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"The Cat sat.", "the cat sat"},
		{"  i   like  to read  ", "i like to read"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeSentence(tt.in); got != tt.want {
			t.Errorf("normalizeSentence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVerdict(t *testing.T) {
	cfg := config.DefaultShooterConfig()

	if got := verdict(49.9, cfg); got != "ok" {
		t.Errorf("verdict below threshold = %q", got)
	}
	if got := verdict(50, cfg); got != "ok" {
		t.Errorf("verdict at threshold = %q, game over needs strictly greater", got)
	}
	if got := verdict(50.1, cfg); got != "game over" {
		t.Errorf("verdict above threshold = %q", got)
	}
}

func TestGameFlagsLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f := gameFlags{config: writeConfig(t, "{}")}
		cfg, err := f.load()
		if err != nil {
			t.Fatalf("load() failed: %v", err)
		}
		if cfg.Language.PerplexityThreshold != 50 || cfg.Difficulty.Enabled {
			t.Errorf("unexpected config: %+v", cfg.Language)
		}
	})

	t.Run("preset", func(t *testing.T) {
		f := gameFlags{config: writeConfig(t, "{}"), difficulty: "easy"}
		cfg, err := f.load()
		if err != nil {
			t.Fatalf("load() failed: %v", err)
		}
		if !cfg.Difficulty.Enabled || cfg.Language.PerplexityThreshold != 80 {
			t.Errorf("easy preset not applied: %+v", cfg)
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		f := gameFlags{config: writeConfig(t, "{}"), difficulty: "insane"}
		if _, err := f.load(); err == nil {
			t.Error("expected error for unknown preset")
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		f := gameFlags{config: writeConfig(t, "bullets:\n  speed: 0\n")}
		if _, err := f.load(); err == nil {
			t.Error("expected validation error")
		}
	})
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
