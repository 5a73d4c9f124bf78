// Package config provides YAML-based game configuration loading for the
// dodge game: playfield bounds, entity sizes and the speed ramp.
package config

import (
	"errors"
	"fmt"
)

// DodgeConfig contains all tunable constants for a session.
// It is fixed for the lifetime of a GameState.
type DodgeConfig struct {
	Playfield    PlayfieldConfig `yaml:"playfield"`
	Player       PlayerConfig    `yaml:"player"`
	Obstacles    EntityConfig    `yaml:"obstacles"`
	Collectibles EntityConfig    `yaml:"collectibles"`
	Speed        SpeedConfig     `yaml:"speed"`
	Scoring      ScoringConfig   `yaml:"scoring"`
}

// PlayfieldConfig defines the world bounds in world units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player square.
type PlayerConfig struct {
	Size         float64 `yaml:"size"`
	MoveStep     float64 `yaml:"move_step"`
	BottomMargin float64 `yaml:"bottom_margin"`
}

// EntityConfig defines one kind of falling entity.
type EntityConfig struct {
	Size  float64 `yaml:"size"`
	Count int     `yaml:"count"` // Entities of this kind kept in play
}

// SpeedConfig defines the linear speed ramp.
type SpeedConfig struct {
	Initial    float64 `yaml:"initial"`
	Increment  float64 `yaml:"increment"`
	IntervalMs int64   `yaml:"interval_ms"`
}

// ScoringConfig defines rewards.
type ScoringConfig struct {
	Reward int `yaml:"reward"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks the preconditions the simulation relies on.
// The game itself never validates; loaders call this before handing a config out.
func (c DodgeConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: playfield must be positive, got %vx%v",
			ErrInvalid, c.Playfield.Width, c.Playfield.Height))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("%w: player.size must be positive", ErrInvalid))
	}
	if c.Player.MoveStep <= 0 {
		errs = append(errs, fmt.Errorf("%w: player.move_step must be positive", ErrInvalid))
	}
	if c.Player.BottomMargin < 0 {
		errs = append(errs, fmt.Errorf("%w: player.bottom_margin must not be negative", ErrInvalid))
	}

	for _, e := range []struct {
		name string
		cfg  EntityConfig
	}{
		{"obstacles", c.Obstacles},
		{"collectibles", c.Collectibles},
	} {
		if e.cfg.Size <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s.size must be positive", ErrInvalid, e.name))
		}
		if e.cfg.Count < 1 {
			errs = append(errs, fmt.Errorf("%w: %s.count must be at least 1", ErrInvalid, e.name))
		}
		if e.cfg.Size >= c.Playfield.Width {
			errs = append(errs, fmt.Errorf("%w: %s.size must be smaller than playfield width", ErrInvalid, e.name))
		}
	}

	if c.Player.Size >= c.Playfield.Width ||
		c.Player.Size+c.Player.BottomMargin > c.Playfield.Height {
		errs = append(errs, fmt.Errorf("%w: player does not fit in the playfield", ErrInvalid))
	}
	if c.Speed.Initial <= 0 {
		errs = append(errs, fmt.Errorf("%w: speed.initial must be positive", ErrInvalid))
	}
	if c.Speed.Increment < 0 {
		errs = append(errs, fmt.Errorf("%w: speed.increment must not be negative", ErrInvalid))
	}
	if c.Speed.IntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("%w: speed.interval_ms must be positive", ErrInvalid))
	}
	if c.Scoring.Reward < 0 {
		errs = append(errs, fmt.Errorf("%w: scoring.reward must not be negative", ErrInvalid))
	}

	return errors.Join(errs...)
}
