package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/qfleet/qfleet/internal/board"
	"github.com/qfleet/qfleet/internal/scan"
)

// Config represents the top-level qfleet.yml configuration.
type Config struct {
	Version string      `yaml:"version"`
	Board   BoardConfig `yaml:"board"`
	Ships   []int       `yaml:"ships"` // One length per ship
	Scan    ScanConfig  `yaml:"scan,omitempty"`
	Seed    int64       `yaml:"seed,omitempty"` // 0 = time-based seed
}

// BoardConfig specifies the playing grid.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// ScanConfig tunes the quantum line scans.
type ScanConfig struct {
	Shots      int     `yaml:"shots,omitempty"`       // Shot batch per line (default 128)
	ZeroCutoff float64 `yaml:"zero_cutoff,omitempty"` // MISS iff zero-state mass >= cutoff (default 0.96)
}

// Default returns the configuration used when no qfleet.yml is given:
// an 8x8 board with the classic 4/3/3/2 fleet.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Board:   BoardConfig{Size: 8},
		Ships:   []int{4, 3, 3, 2},
		Scan: ScanConfig{
			Shots:      scan.DefaultShots,
			ZeroCutoff: scan.DefaultZeroCutoff,
		},
	}
}

// Validate performs strict validation, applying scan defaults for
// omitted fields. It fails fast with a descriptive message so a broken
// setup never reaches the simulator.
func (c *Config) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Board.Size < board.MinSize || c.Board.Size > board.MaxSize {
		return fmt.Errorf("board.size must be %d-%d, got %d", board.MinSize, board.MaxSize, c.Board.Size)
	}

	// Required: at least one ship
	if len(c.Ships) == 0 {
		return fmt.Errorf("no ships defined")
	}

	totalCells := 0
	for i, length := range c.Ships {
		if length < 1 {
			return fmt.Errorf("ship %d: length must be >= 1, got %d", i, length)
		}
		if length > c.Board.Size {
			return fmt.Errorf("ship %d: length %d does not fit on a %dx%d board", i, length, c.Board.Size, c.Board.Size)
		}
		totalCells += length
	}
	if totalCells >= c.Board.Size*c.Board.Size {
		return fmt.Errorf("fleet needs %d cells but the %dx%d board only has %d",
			totalCells, c.Board.Size, c.Board.Size, c.Board.Size*c.Board.Size)
	}

	// Apply scan defaults for omitted fields
	if c.Scan.Shots == 0 {
		c.Scan.Shots = scan.DefaultShots
	}
	if c.Scan.ZeroCutoff == 0 {
		c.Scan.ZeroCutoff = scan.DefaultZeroCutoff
	}

	if c.Scan.Shots < 1 {
		return fmt.Errorf("scan.shots must be >= 1, got %d", c.Scan.Shots)
	}
	if c.Scan.ZeroCutoff <= 0.5 || c.Scan.ZeroCutoff > 1 {
		return fmt.Errorf("scan.zero_cutoff must be in (0.5, 1], got %g", c.Scan.ZeroCutoff)
	}

	return nil
}

// Load reads and validates qfleet.yml from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
