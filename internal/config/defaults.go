package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in configuration.
// It matches defaults/dodge.yaml and is used when the embedded file cannot be parsed.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:         50,
			MoveStep:     20,
			BottomMargin: 10,
		},
		Obstacles: EntityConfig{
			Size:  50,
			Count: 1,
		},
		Collectibles: EntityConfig{
			Size:  30,
			Count: 1,
		},
		Speed: SpeedConfig{
			Initial:    5,
			Increment:  0.5,
			IntervalMs: 5000,
		},
		Scoring: ScoringConfig{
			Reward: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
