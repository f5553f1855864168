// Package config defines the batch job file: which tuning, layout and
// fill combinations to generate, and which outputs each should produce.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FillConfig places the mapping on the board. Anchor coordinates are in
// offset-grid units (column, row); Left and Right are column extents from
// the anchor.
type FillConfig struct {
	AnchorX int    `json:"anchorX"`
	AnchorY int    `json:"anchorY"`
	Left    int    `json:"left"`
	Right   int    `json:"right"`
	Mode    string `json:"mode"` // "wide" or "split"
}

// OutputConfig selects which files a job writes.
type OutputConfig struct {
	LTN  bool `json:"ltn"`
	SVG  bool `json:"svg"`
	MIDI bool `json:"midi"`
}

// Job is one (tuning, layout, fill) combination to generate.
type Job struct {
	Name      string       `json:"name"`
	Tuning    string       `json:"tuning"` // "edo12", "edo19", "edo31"
	Layout    string       `json:"layout"` // "wicki-hayden", "harmonic-table"
	Fill      FillConfig   `json:"fill"`
	Outputs   OutputConfig `json:"outputs"`
	FlatNames bool         `json:"flatNames,omitempty"`
}

// Config is the main configuration structure.
type Config struct {
	Jobs    []Job  `json:"jobs"`
	OutDir  string `json:"outDir,omitempty"`
	Palette string `json:"palette,omitempty"` // optional .gpl file for key colors
}

// centerAnchor is the middle of the board's longest row, where the stock
// jobs put middle C.
var centerAnchor = FillConfig{AnchorX: 14, AnchorY: 9, Left: 14, Right: 15, Mode: "wide"}

// DefaultConfig returns the stock jobs: a Wicki-Hayden board in 12-EDO
// and a split Harmonic Table board in 19-EDO.
func DefaultConfig() *Config {
	allOut := OutputConfig{LTN: true, SVG: true, MIDI: true}
	return &Config{
		OutDir: ".",
		Jobs: []Job{
			{
				Name:    "wicki-hayden-12",
				Tuning:  "edo12",
				Layout:  "wicki-hayden",
				Fill:    centerAnchor,
				Outputs: allOut,
			},
			{
				Name:   "harmonic-table-19",
				Tuning: "edo19",
				Layout: "harmonic-table",
				Fill: FillConfig{
					AnchorX: 7, AnchorY: 9, Left: 7, Right: 7, Mode: "split",
				},
				Outputs: allOut,
			},
		},
	}
}

// Load reads a config file from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if len(cfg.Jobs) == 0 {
		return nil, fmt.Errorf("load config %s: no jobs", path)
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	return &cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FindJob finds a job by name.
func (c *Config) FindJob(name string) *Job {
	for i := range c.Jobs {
		if c.Jobs[i].Name == name {
			return &c.Jobs[i]
		}
	}
	return nil
}
