package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/mole-rush/constants"
)

// Config holds all gameplay tuning, overridable at construction
// Invalid configuration is a construction-time error, never a runtime one
type Config struct {
	GridRows    int
	GridCols    int
	GridSpacing float64

	HoleRadius   float64
	TargetRadius float64

	HiddenDepth   float64 // Vertical offset while retracted, below surface
	ExposedHeight float64 // Vertical offset while fully up

	RiseDuration        time.Duration
	UpDuration          time.Duration
	RetreatHitDuration  time.Duration
	RetreatMissDuration time.Duration
	PopIntervalMin      time.Duration
	PopIntervalMax      time.Duration
}

// DefaultConfig returns the stock tuning from constants
func DefaultConfig() Config {
	return Config{
		GridRows:            constants.DefaultGridRows,
		GridCols:            constants.DefaultGridCols,
		GridSpacing:         constants.DefaultGridSpacing,
		HoleRadius:          constants.DefaultHoleRadius,
		TargetRadius:        constants.DefaultTargetRadius,
		HiddenDepth:         constants.TargetHiddenDepth,
		ExposedHeight:       constants.TargetExposedHeight,
		RiseDuration:        constants.PopRiseDuration,
		UpDuration:          constants.UpDuration,
		RetreatHitDuration:  constants.RetreatHitDuration,
		RetreatMissDuration: constants.RetreatMissDuration,
		PopIntervalMin:      constants.PopIntervalMin,
		PopIntervalMax:      constants.PopIntervalMax,
	}
}

// Validate checks construction-time invariants
func (c Config) Validate() error {
	if c.GridRows <= 0 || c.GridCols <= 0 {
		return fmt.Errorf("config: grid must have at least one slot, got %dx%d", c.GridRows, c.GridCols)
	}
	if c.GridSpacing <= 0 {
		return fmt.Errorf("config: grid spacing must be positive, got %f", c.GridSpacing)
	}
	if c.TargetRadius <= 0 {
		return fmt.Errorf("config: target radius must be positive, got %f", c.TargetRadius)
	}
	if c.ExposedHeight <= c.HiddenDepth {
		return fmt.Errorf("config: exposed height %f must exceed hidden depth %f", c.ExposedHeight, c.HiddenDepth)
	}
	for _, d := range []struct {
		name string
		val  time.Duration
	}{
		{"rise duration", c.RiseDuration},
		{"up duration", c.UpDuration},
		{"retreat hit duration", c.RetreatHitDuration},
		{"retreat miss duration", c.RetreatMissDuration},
		{"pop interval min", c.PopIntervalMin},
		{"pop interval max", c.PopIntervalMax},
	} {
		if d.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", d.name, d.val)
		}
	}
	if c.PopIntervalMax < c.PopIntervalMin {
		return fmt.Errorf("config: pop interval max %v below min %v", c.PopIntervalMax, c.PopIntervalMin)
	}
	return nil
}

// fileConfig is the yaml representation; durations are in milliseconds
// Zero-valued fields keep their defaults
type fileConfig struct {
	GridRows    int     `yaml:"gridRows"`
	GridCols    int     `yaml:"gridCols"`
	GridSpacing float64 `yaml:"gridSpacing"`

	HoleRadius   float64 `yaml:"holeRadius"`
	TargetRadius float64 `yaml:"targetRadius"`

	RiseMs        int `yaml:"riseMs"`
	UpMs          int `yaml:"upMs"`
	RetreatHitMs  int `yaml:"retreatHitMs"`
	RetreatMissMs int `yaml:"retreatMissMs"`
	PopMinMs      int `yaml:"popMinMs"`
	PopMaxMs      int `yaml:"popMaxMs"`
}

// LoadConfig reads yaml overrides on top of the defaults
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if fc.GridRows != 0 {
		cfg.GridRows = fc.GridRows
	}
	if fc.GridCols != 0 {
		cfg.GridCols = fc.GridCols
	}
	if fc.GridSpacing != 0 {
		cfg.GridSpacing = fc.GridSpacing
	}
	if fc.HoleRadius != 0 {
		cfg.HoleRadius = fc.HoleRadius
	}
	if fc.TargetRadius != 0 {
		cfg.TargetRadius = fc.TargetRadius
	}
	if fc.RiseMs != 0 {
		cfg.RiseDuration = time.Duration(fc.RiseMs) * time.Millisecond
	}
	if fc.UpMs != 0 {
		cfg.UpDuration = time.Duration(fc.UpMs) * time.Millisecond
	}
	if fc.RetreatHitMs != 0 {
		cfg.RetreatHitDuration = time.Duration(fc.RetreatHitMs) * time.Millisecond
	}
	if fc.RetreatMissMs != 0 {
		cfg.RetreatMissDuration = time.Duration(fc.RetreatMissMs) * time.Millisecond
	}
	if fc.PopMinMs != 0 {
		cfg.PopIntervalMin = time.Duration(fc.PopMinMs) * time.Millisecond
	}
	if fc.PopMaxMs != 0 {
		cfg.PopIntervalMax = time.Duration(fc.PopMaxMs) * time.Millisecond
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
