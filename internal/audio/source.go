package audio

import (
	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
)

// Source produces the streamers behind each game sound. One-shot streamers
// (Jump, Crash, Win) are finite and freshly allocated per call so several
// can overlap in the mixer. Music is endless; the Player gates it with a
// beep.Ctrl.
type Source interface {
	Jump() beep.Streamer
	Crash() beep.Streamer
	Win() beep.Streamer
	Music() beep.Streamer
}

// NewSource returns the sample-backed source when dir is set and all clips
// load, and the synthesized source otherwise. Falling back is logged, never
// fatal: the game always has audio to offer, even with no assets on disk.
func NewSource(dir string, rate beep.SampleRate, logger *log.Logger) Source {
	if dir == "" {
		return NewSynthSource(rate)
	}
	src, err := NewSampleSource(dir, rate)
	if err != nil {
		if logger != nil {
			logger.Warn("falling back to synthesized audio", "dir", dir, "error", err)
		}
		return NewSynthSource(rate)
	}
	return src
}
