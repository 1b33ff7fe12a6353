// Package config provides YAML-based tuning configuration for the game:
// physics constants, world geometry, and audio switches.
package config

import (
	"fmt"
	"math"
)

// Tuning contains the full tunable surface of the simulation and its
// collaborators. The numbers define the tuned difficulty; levels supply
// only a speed multiplier on top of Physics.BaseSpeed.
type Tuning struct {
	Physics PhysicsTuning `yaml:"physics"`
	Player  PlayerTuning  `yaml:"player"`
	World   WorldTuning   `yaml:"world"`
	Audio   AudioTuning   `yaml:"audio"`
}

// PhysicsTuning defines the vertical physics and the frame clamp.
type PhysicsTuning struct {
	Gravity   float64 `yaml:"gravity"`    // downward acceleration, units/s²
	JumpForce float64 `yaml:"jump_force"` // upward launch speed, units/s
	BaseSpeed float64 `yaml:"base_speed"` // horizontal scroll speed at 1.0x, units/s

	// MaxFrameDT caps the delta time fed into one simulation step so a
	// stalled frame cannot tunnel the player through an obstacle.
	MaxFrameDT float64 `yaml:"max_frame_dt"`
}

// PlayerTuning defines the player square.
type PlayerTuning struct {
	X    float64 `yaml:"x"`    // fixed horizontal screen position
	Size float64 `yaml:"size"` // square side length
}

// WorldTuning defines the world-unit viewport the simulation runs in.
// The terminal renderer projects this viewport onto whatever cell grid
// is available.
type WorldTuning struct {
	FloorY  float64 `yaml:"floor_y"`
	ScreenW float64 `yaml:"screen_w"`
	ScreenH float64 `yaml:"screen_h"`
}

// AudioTuning defines the audio collaborator switches.
type AudioTuning struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// ValidationError describes why a tuning document was rejected.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the tuning against the construction-time contract.
func (t Tuning) Validate() error {
	check := func(code, name string, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return ValidationError{
				Code:    code,
				Message: fmt.Sprintf("%s %v must be a positive number", name, v),
			}
		}
		return nil
	}

	if err := check("BAD_PHYSICS", "gravity", t.Physics.Gravity); err != nil {
		return err
	}
	if err := check("BAD_PHYSICS", "jump_force", t.Physics.JumpForce); err != nil {
		return err
	}
	if err := check("BAD_PHYSICS", "base_speed", t.Physics.BaseSpeed); err != nil {
		return err
	}
	if err := check("BAD_PHYSICS", "max_frame_dt", t.Physics.MaxFrameDT); err != nil {
		return err
	}
	if err := check("BAD_PLAYER", "player size", t.Player.Size); err != nil {
		return err
	}
	if err := check("BAD_WORLD", "floor_y", t.World.FloorY); err != nil {
		return err
	}
	if err := check("BAD_WORLD", "screen_w", t.World.ScreenW); err != nil {
		return err
	}
	if err := check("BAD_WORLD", "screen_h", t.World.ScreenH); err != nil {
		return err
	}

	if t.Player.X < 0 || t.Player.X+t.Player.Size > t.World.ScreenW {
		return ValidationError{
			Code:    "BAD_PLAYER",
			Message: fmt.Sprintf("player x %v does not fit the %v-unit screen", t.Player.X, t.World.ScreenW),
		}
	}
	if t.World.FloorY > t.World.ScreenH {
		return ValidationError{
			Code:    "BAD_WORLD",
			Message: fmt.Sprintf("floor_y %v is below the %v-unit screen", t.World.FloorY, t.World.ScreenH),
		}
	}
	if t.Audio.Volume < 0 || t.Audio.Volume > 1 {
		return ValidationError{
			Code:    "BAD_AUDIO",
			Message: fmt.Sprintf("volume %v must be within [0, 1]", t.Audio.Volume),
		}
	}
	if t.Audio.SampleRate <= 0 {
		return ValidationError{
			Code:    "BAD_AUDIO",
			Message: fmt.Sprintf("sample_rate %d must be positive", t.Audio.SampleRate),
		}
	}

	return nil
}
