// Package audio renders the game's sound events through a beep speaker.
// Sounds come from a Source: the synthesized source needs no assets, the
// sample source plays WAV clips from a directory. Audio is strictly best
// effort: a speaker that cannot open, a muted config or missing assets all
// degrade to silence and never reach the game loop as errors.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/cuberush/cuberush/internal/config"
	"github.com/cuberush/cuberush/internal/game"
)

const speakerBuffer = time.Millisecond * 100

// Player owns the speaker and realizes game sound events. It implements
// game.SoundSink. The speaker is process global, so create at most one
// active Player per process. All methods are safe on a silent player.
type Player struct {
	mu     sync.Mutex
	source Source
	mixer  *beep.Mixer
	music  *beep.Ctrl
	rate   beep.SampleRate
	volume float64
	active bool
}

// NewPlayer opens the speaker and starts the mixer. A disabled config, a
// zero volume, a nil source or a speaker that cannot open all yield a
// silent player.
func NewPlayer(cfg config.AudioTuning, src Source, logger *log.Logger) *Player {
	p := &Player{
		source: src,
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
	}
	if !cfg.Enabled || cfg.Volume <= 0 || src == nil {
		return p
	}
	if err := speaker.Init(p.rate, p.rate.N(speakerBuffer)); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing silent", "error", err)
		}
		return p
	}
	speaker.Play(p.mixer)
	p.active = true
	return p
}

// Silent reports whether the player produces no output.
func (p *Player) Silent() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.active
}

// Play mixes in the one-shot streamer for s.
func (p *Player) Play(s game.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return
	}

	var st beep.Streamer
	switch s {
	case game.SoundJump:
		st = p.source.Jump()
	case game.SoundCrash:
		st = p.source.Crash()
	case game.SoundWin:
		st = p.source.Win()
	}
	if st == nil {
		return
	}

	// The speaker pulls from the mixer on its own goroutine; all mixer
	// mutations happen under speaker.Lock.
	speaker.Lock()
	p.mixer.Add(newVolume(st, p.volume))
	speaker.Unlock()
}

// MusicStart begins the backing track from the top. Any previous track is
// drained out of the mixer.
func (p *Player) MusicStart() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return
	}

	ctrl := &beep.Ctrl{Streamer: newVolume(p.source.Music(), p.volume)}
	speaker.Lock()
	if p.music != nil {
		p.music.Streamer = nil // a nil Ctrl streamer ends, and the mixer drops it
	}
	p.music = ctrl
	p.mixer.Add(ctrl)
	speaker.Unlock()
}

// MusicStop pauses the backing track. One-shot sounds keep playing.
func (p *Player) MusicStop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active || p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// Close silences the player. beep has no global speaker close; clearing the
// mixer is enough to stop output.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return
	}
	speaker.Lock()
	p.music = nil
	p.mixer.Clear()
	speaker.Unlock()
	p.active = false
}
