package easel

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "easel.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRunConfig(t *testing.T) {
	path := writeConfig(t, `
title = "demo"
width = 1024
height = 768
debug = true
`)
	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatalf("LoadRunConfig: %v", err)
	}
	want := RunConfig{Title: "demo", Width: 1024, Height: 768, Debug: true}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadRunConfig_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `title = "demo"`)
	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "demo" || cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRunConfig_MissingFileIsDefaults(t *testing.T) {
	cfg, err := LoadRunConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("a missing config file is not an error: %v", err)
	}
	if cfg != DefaultRunConfig {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadRunConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"malformed", `title = `},
		{"zero width", `width = 0`},
		{"negative height", `height = -1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.contents)
			if _, err := LoadRunConfig(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
