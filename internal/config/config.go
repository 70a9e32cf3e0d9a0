// Package config provides YAML-based game configuration loading and
// validation for the Flappy game.
package config

import "time"

// Spawn interval bounds applied when the interval is used.
const (
	MinSpawnInterval = 500 * time.Millisecond
	MaxSpawnInterval = 5000 * time.Millisecond
)

// FlappyConfig contains all configuration for the Flappy game.
type FlappyConfig struct {
	World WorldConfig `yaml:"world"`
	Bird  BirdConfig  `yaml:"bird"`
	Pipes PipesConfig `yaml:"pipes"`
	Score ScoreConfig `yaml:"score"`
}

// WorldConfig defines the playfield and its physics.
type WorldConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Gravity    float64 `yaml:"gravity"`    // Downward acceleration, px/s²
	Background string  `yaml:"background"` // #RRGGBB
}

// BirdConfig defines the controllable body.
type BirdConfig struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Vertical velocity set on jump (negative = up)
	MaxAngle    float64 `yaml:"max_angle"`
	MinAngle    float64 `yaml:"min_angle"`
	AngleStep   float64 `yaml:"angle_step"` // Rotation per frame toward MaxAngle
	JumpTweenMS int     `yaml:"jump_tween_ms"`
}

// PipesConfig defines obstacle rows and the spawner.
type PipesConfig struct {
	Velocity        float64 `yaml:"velocity"` // Horizontal velocity (negative = left)
	RowSpacing      float64 `yaml:"row_spacing"`
	RowOffset       float64 `yaml:"row_offset"`
	GapMin          int     `yaml:"gap_min"`
	GapMax          int     `yaml:"gap_max"`
	RowCount        int     `yaml:"row_count"`
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
	PoolSize        int     `yaml:"pool_size"`
}

// ScoreConfig defines the score label.
type ScoreConfig struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	FontSize int     `yaml:"font_size"`
}

// SpawnInterval returns the spawner period clamped to
// [MinSpawnInterval, MaxSpawnInterval].
func (c FlappyConfig) SpawnInterval() time.Duration {
	d := time.Duration(c.Pipes.SpawnIntervalMS) * time.Millisecond
	if d < MinSpawnInterval {
		return MinSpawnInterval
	}
	if d > MaxSpawnInterval {
		return MaxSpawnInterval
	}
	return d
}

// JumpTween returns the duration of the rotate-on-jump animation.
func (c FlappyConfig) JumpTween() time.Duration {
	return time.Duration(c.Bird.JumpTweenMS) * time.Millisecond
}

// MaxPipeY returns the y coordinate of the lowest pipe row.
func (c FlappyConfig) MaxPipeY() float64 {
	return float64(c.Pipes.RowCount-1)*c.Pipes.RowSpacing + c.Pipes.RowOffset
}
