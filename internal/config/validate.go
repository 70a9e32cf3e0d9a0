package config

import (
	"errors"
	"fmt"
	"regexp"
)

// Validation failure classes. A *ConfigError wraps exactly one of these.
var (
	ErrDimensions      = errors.New("world width and height must be positive")
	ErrBirdPosition    = errors.New("bird start position must be non-negative")
	ErrGapRange        = errors.New("gap_min must be less than gap_max")
	ErrRowCount        = errors.New("row_count must be greater than gap_max")
	ErrBackgroundColor = errors.New("background must be a #RRGGBB color")
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ConfigError reports the first invalid field found by Validate.
type ConfigError struct {
	Field  string
	Reason error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: invalid %s: %v", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Reason
}

// Validate checks cfg in a fixed order and returns the first failure.
func Validate(cfg FlappyConfig) error {
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return &ConfigError{Field: "world", Reason: ErrDimensions}
	}
	if cfg.Bird.X < 0 || cfg.Bird.Y < 0 {
		return &ConfigError{Field: "bird", Reason: ErrBirdPosition}
	}
	if cfg.Pipes.GapMin >= cfg.Pipes.GapMax {
		return &ConfigError{Field: "pipes.gap_min", Reason: ErrGapRange}
	}
	if cfg.Pipes.RowCount <= cfg.Pipes.GapMax {
		return &ConfigError{Field: "pipes.row_count", Reason: ErrRowCount}
	}
	if !hexColor.MatchString(cfg.World.Background) {
		return &ConfigError{Field: "world.background", Reason: ErrBackgroundColor}
	}
	return nil
}
