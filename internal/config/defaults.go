package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in Flappy configuration.
// It matches defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:      400,
			Height:     490,
			Gravity:    1000,
			Background: "#71c5cf",
		},
		Bird: BirdConfig{
			X:           100,
			Y:           245,
			JumpImpulse: -350,
			MaxAngle:    20,
			MinAngle:    -20,
			AngleStep:   1,
			JumpTweenMS: 100,
		},
		Pipes: PipesConfig{
			Velocity:        -200,
			RowSpacing:      60,
			RowOffset:       10,
			GapMin:          1,
			GapMax:          5,
			RowCount:        8,
			SpawnIntervalMS: 1500,
			PoolSize:        20,
		},
		Score: ScoreConfig{
			X:        20,
			Y:        20,
			FontSize: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
