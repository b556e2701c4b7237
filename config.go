package cmm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the cell-mapping configuration for the fill step. When Mode is
// "default" the distance and radius values go to contiguous cells in one
// column each, starting at row 1; "custom" uses the explicit cell lists.
type Config struct {
	Template string `yaml:"template"`
	Sheet    string `yaml:"sheet"`
	Cells    struct {
		Mode           string   `yaml:"mode"`
		DistanceColumn string   `yaml:"distance_column"`
		RadiusColumn   string   `yaml:"radius_column"`
		Distance       []string `yaml:"distance"`
		Radius         []string `yaml:"radius"`
	} `yaml:"cells"`
}

// DefaultConfig maps distances into column A and radii into column C. Column
// B stays clear of the fixed B1-B3 header cells.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Cells.Mode = "default"
	cfg.Cells.DistanceColumn = "A"
	cfg.Cells.RadiusColumn = "C"
	return cfg
}

// LoadConfig reads a yaml cell-mapping file. Missing cell settings fall back
// to the defaults.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Cells.Mode == "" {
		cfg.Cells.Mode = "default"
	}
	if cfg.Cells.DistanceColumn == "" {
		cfg.Cells.DistanceColumn = "A"
	}
	if cfg.Cells.RadiusColumn == "" {
		cfg.Cells.RadiusColumn = "C"
	}
	return cfg, nil
}

// DistanceCells resolves the target cells for n distance values.
func (c *Config) DistanceCells(n int) []string {
	if c.Cells.Mode == "custom" {
		return c.Cells.Distance
	}
	return DefaultCells(c.Cells.DistanceColumn, n)
}

// RadiusCells resolves the target cells for n radius values.
func (c *Config) RadiusCells(n int) []string {
	if c.Cells.Mode == "custom" {
		return c.Cells.Radius
	}
	return DefaultCells(c.Cells.RadiusColumn, n)
}

// DefaultCells builds n contiguous references in one column starting at
// row 1, e.g. DefaultCells("A", 3) = [A1 A2 A3].
func DefaultCells(column string, n int) []string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = fmt.Sprintf("%s%d", column, i+1)
	}
	return cells
}
