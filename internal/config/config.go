package config

import (
	"fmt"
	"maps"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sheetview/internal/dataview"
	"github.com/san-kum/sheetview/internal/index"
	"github.com/san-kum/sheetview/internal/sheet"
)

const (
	DefaultRadius   = 0.5
	DefaultRows     = 24
	DefaultCols     = 24
	DefaultDt       = 0.05
	DefaultDuration = 1.0
)

type Config struct {
	Bounds         sheet.Bounds   `yaml:"bounds"`
	Timestamp      *float64       `yaml:"timestamp,omitempty"`
	CyclicInterval *float64       `yaml:"cyclic_interval,omitempty"`
	ROI            *sheet.Bounds  `yaml:"roi,omitempty"`
	Labels         map[string]any `yaml:"labels,omitempty"`
	Style          map[string]any `yaml:"style,omitempty"`
	Index          IndexConfig    `yaml:"index"`
	Grid           GridConfig     `yaml:"grid"`
	Dt             float64        `yaml:"dt"`
	Duration       float64        `yaml:"duration"`
}

type IndexConfig struct {
	Feature   string `yaml:"feature"`
	Ascending bool   `yaml:"ascending"`
	Backend   string `yaml:"backend"`
}

// GridConfig is the shape of recorded snapshots.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

func DefaultConfig() *Config {
	return &Config{
		Bounds: sheet.Radius(DefaultRadius),
		Index: IndexConfig{
			Feature:   dataview.DefaultIndexedFeature,
			Ascending: true,
			Backend:   string(index.SliceBackend),
		},
		Grid:     GridConfig{Rows: DefaultRows, Cols: DefaultCols},
		Dt:       DefaultDt,
		Duration: DefaultDuration,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options converts the file representation into view options.
func (c *Config) Options() dataview.Options {
	opts := dataview.DefaultOptions()
	opts.Timestamp = c.Timestamp
	opts.CyclicInterval = c.CyclicInterval
	opts.ROI = c.ROI
	opts.Labels = c.Labels
	opts.Style = c.Style
	opts.IndexedFeature = c.Index.Feature
	opts.IndexedAscending = c.Index.Ascending
	opts.Backend = index.Backend(c.Index.Backend)
	return opts
}

func (c *Config) Validate() error {
	if err := c.Options().Validate(c.Bounds); err != nil {
		return err
	}
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("%w: grid must be positive, got %dx%d", dataview.ErrParameterBounds, c.Grid.Rows, c.Grid.Cols)
	}
	if !positive(c.Dt) {
		return fmt.Errorf("%w: dt must be positive and finite, got %f", dataview.ErrParameterBounds, c.Dt)
	}
	if !positive(c.Duration) {
		return fmt.Errorf("%w: duration must be positive and finite, got %f", dataview.ErrParameterBounds, c.Duration)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Steps is the number of snapshots a recording of Duration at Dt holds.
func (c *Config) Steps() int {
	return int(c.Duration/c.Dt + 0.5)
}

func (c *Config) Clone() *Config {
	out := *c
	if c.Timestamp != nil {
		v := *c.Timestamp
		out.Timestamp = &v
	}
	if c.CyclicInterval != nil {
		v := *c.CyclicInterval
		out.CyclicInterval = &v
	}
	if c.ROI != nil {
		v := *c.ROI
		out.ROI = &v
	}
	out.Labels = maps.Clone(c.Labels)
	out.Style = maps.Clone(c.Style)
	return &out
}
