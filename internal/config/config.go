// Package config loads generator defaults from an optional TOML file.
// Flag values always win over the file; the file wins over the built-in
// defaults, which match the historical generator scripts.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Board holds default ChArUco board parameters.
type Board struct {
	SquaresX       int     `toml:"squares_x"`
	SquaresY       int     `toml:"squares_y"`
	SquareLengthMM float64 `toml:"square_length_mm"`
	MarkerLengthMM float64 `toml:"marker_length_mm"`
	MarginMM       float64 `toml:"margin_mm"`
}

// Markers holds default marker sheet parameters.
type Markers struct {
	PageWidthMM  float64 `toml:"page_width_mm"`
	PageHeightMM float64 `toml:"page_height_mm"`
	MarkerSizeMM float64 `toml:"marker_size_mm"`
	BorderMM     float64 `toml:"border_mm"`
	Columns      int     `toml:"columns"`
	Rows         int     `toml:"rows"`
}

// Timeline holds default acoustics timeline parameters.
type Timeline struct {
	Preset      string  `toml:"preset"`
	Gain        float64 `toml:"gain"`
	Spacing     float64 `toml:"spacing_seconds"`
	Passes      int     `toml:"passes"`
	LeadTime    float64 `toml:"lead_time_seconds"`
	StartOffset float64 `toml:"start_offset_seconds"`
}

// Config is the full defaults file.
type Config struct {
	DPI        int      `toml:"dpi"`
	Dictionary string   `toml:"dictionary"`
	Board      Board    `toml:"board"`
	Markers    Markers  `toml:"markers"`
	Timeline   Timeline `toml:"timeline"`
}

// Default returns the built-in defaults: a 5x7 board of 45mm squares with
// 33mm markers, an A4 sheet of eight 45mm markers, and the 23s staggered
// sample timeline.
func Default() Config {
	return Config{
		DPI:        300,
		Dictionary: "DICT_4X4_50",
		Board: Board{
			SquaresX:       5,
			SquaresY:       7,
			SquareLengthMM: 45,
			MarkerLengthMM: 33,
			MarginMM:       10,
		},
		Markers: Markers{
			PageWidthMM:  210,
			PageHeightMM: 297,
			MarkerSizeMM: 45,
			BorderMM:     3,
			Columns:      2,
			Rows:         4,
		},
		Timeline: Timeline{
			Preset:   "sample",
			Gain:     1.0,
			Spacing:  23,
			Passes:   1,
			LeadTime: 8,
		},
	}
}

// Load reads a TOML defaults file over the built-in defaults. An empty
// path returns the defaults unchanged; a missing file is an error because
// the user asked for it explicitly.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
