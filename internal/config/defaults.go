package config

import (
	_ "embed"
)

//go:embed defaults/tuning.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the default tuning. These values mirror the
// embedded defaults/tuning.yaml and serve as the hardcoded fallback if
// the embedded document cannot be parsed.
func DefaultTuning() Tuning {
	return Tuning{
		Physics: PhysicsTuning{
			Gravity:    2300,
			JumpForce:  860,
			BaseSpeed:  360,
			MaxFrameDT: 1.0 / 30.0,
		},
		Player: PlayerTuning{
			X:    150,
			Size: 40,
		},
		World: WorldTuning{
			FloorY:  440,
			ScreenW: 900,
			ScreenH: 540,
		},
		Audio: AudioTuning{
			Enabled:    true,
			Volume:     0.8,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default tuning document, for tooling
// that wants to show or scaffold a config file.
func DefaultYAML() []byte {
	return defaultTuningYAML
}
