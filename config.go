package easel

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Debug  bool   `toml:"debug"`
}

// DefaultRunConfig is the configuration used when no file overrides it.
var DefaultRunConfig = RunConfig{
	Title:  "easel",
	Width:  800,
	Height: 600,
}

// LoadRunConfig reads a TOML config file over the defaults. A missing file
// is not an error: the defaults are returned unchanged.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("load config %s: window size must be positive, got %dx%d",
			path, cfg.Width, cfg.Height)
	}
	return cfg, nil
}
