package level

import (
	"fmt"
	"math"
)

// ValidationError describes why a level definition was rejected.
// Code is stable for callers that branch; Message is for humans.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a level against the construction-time contract: non-empty
// identity, positive finite length and speed, positive obstacle dimensions,
// obstacle positions inside the track. A level with no obstacles is legal.
func Validate(lvl Level) error {
	if lvl.ID == "" {
		return ValidationError{Code: "EMPTY_ID", Message: "level id is required"}
	}
	if lvl.Name == "" {
		return ValidationError{
			Code:    "EMPTY_NAME",
			Message: fmt.Sprintf("level %s has no name", lvl.ID),
		}
	}
	if !finitePositive(lvl.Length) {
		return ValidationError{
			Code:    "BAD_LENGTH",
			Message: fmt.Sprintf("level %s: length %v must be a positive number", lvl.ID, lvl.Length),
		}
	}
	if !finitePositive(lvl.SpeedMultiplier) {
		return ValidationError{
			Code:    "BAD_MULTIPLIER",
			Message: fmt.Sprintf("level %s: speed multiplier %v must be a positive number", lvl.ID, lvl.SpeedMultiplier),
		}
	}

	for i, o := range lvl.Obstacles {
		if o.Kind != Spike && o.Kind != Block {
			return ValidationError{
				Code:    "BAD_OBSTACLE",
				Message: fmt.Sprintf("level %s: obstacle %d has unknown kind %d", lvl.ID, i, o.Kind),
			}
		}
		if !finitePositive(o.Width) || !finitePositive(o.Height) {
			return ValidationError{
				Code:    "BAD_OBSTACLE",
				Message: fmt.Sprintf("level %s: obstacle %d dimensions %vx%v must be positive", lvl.ID, i, o.Width, o.Height),
			}
		}
		if math.IsNaN(o.X) || o.X < 0 {
			return ValidationError{
				Code:    "BAD_OBSTACLE",
				Message: fmt.Sprintf("level %s: obstacle %d position %v must be >= 0", lvl.ID, i, o.X),
			}
		}
		if o.X >= lvl.Length {
			return ValidationError{
				Code:    "OBSTACLE_PAST_END",
				Message: fmt.Sprintf("level %s: obstacle %d at %v is beyond track length %v", lvl.ID, i, o.X, lvl.Length),
			}
		}
	}

	return nil
}

func finitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
