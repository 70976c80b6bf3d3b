package config

import (
	"math"
	"sort"

	"github.com/san-kum/sheetview/internal/index"
	"github.com/san-kum/sheetview/internal/sheet"
)

func period(v float64) *float64 { return &v }

var Presets = map[string]*Config{
	"time": {
		Bounds:   sheet.Radius(0.5),
		Index:    IndexConfig{Feature: "time", Ascending: true, Backend: string(index.SliceBackend)},
		Grid:     GridConfig{Rows: 24, Cols: 24},
		Dt:       0.05,
		Duration: 1.0,
	},
	"orientation": {
		Bounds:         sheet.Radius(0.5),
		CyclicInterval: period(math.Pi),
		Index:          IndexConfig{Feature: "orientation", Ascending: true, Backend: string(index.SliceBackend)},
		Grid:           GridConfig{Rows: 24, Cols: 24},
		Dt:             math.Pi / 8,
		Duration:       math.Pi,
		Labels:         map[string]any{"units": "radians"},
	},
	"phase": {
		Bounds:         sheet.Radius(0.5),
		CyclicInterval: period(2 * math.Pi),
		Index:          IndexConfig{Feature: "phase", Ascending: true, Backend: string(index.SliceBackend)},
		Grid:           GridConfig{Rows: 24, Cols: 24},
		Dt:             math.Pi / 4,
		Duration:       2 * math.Pi,
	},
	"long_run": {
		Bounds:   sheet.Radius(1.0),
		Index:    IndexConfig{Feature: "time", Ascending: true, Backend: string(index.BTreeBackend)},
		Grid:     GridConfig{Rows: 48, Cols: 48},
		Dt:       0.01,
		Duration: 20.0,
	},
	"trials": {
		Bounds:   sheet.Radius(0.5),
		Index:    IndexConfig{Feature: "trial", Ascending: false, Backend: string(index.SliceBackend)},
		Grid:     GridConfig{Rows: 12, Cols: 12},
		Dt:       1,
		Duration: 10,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
