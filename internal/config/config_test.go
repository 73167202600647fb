package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesDefaultsPartially(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.toml")
	if err := os.WriteFile(path, []byte("seed = 42\ndifficulty = 24\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("Seed = %d; want 42", cfg.Seed)
	}
	if cfg.Difficulty != 24 {
		t.Fatalf("Difficulty = %d; want 24", cfg.Difficulty)
	}
	if cfg.Frames != Default().Frames {
		t.Fatalf("Frames = %d; want default %d (untouched by partial document)", cfg.Frames, Default().Frames)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("Load() on missing file returned nil error")
	}
}
