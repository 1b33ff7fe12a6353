package audio

import (
	"testing"

	"github.com/cuberush/cuberush/internal/config"
	"github.com/cuberush/cuberush/internal/game"
)

var _ game.SoundSink = (*Player)(nil)

func drivePlayer(p *Player) {
	p.Play(game.SoundJump)
	p.MusicStart()
	p.Play(game.SoundCrash)
	p.MusicStop()
	p.MusicStart()
	p.Play(game.SoundWin)
	p.Close()
}

func TestPlayerSilentWhenDisabled(t *testing.T) {
	cfg := config.DefaultTuning().Audio
	cfg.Enabled = false

	p := NewPlayer(cfg, NewSynthSource(testRate), nil)
	if !p.Silent() {
		t.Fatal("disabled config must yield a silent player")
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("silent player panicked: %v", r)
		}
	}()
	drivePlayer(p)
}

func TestPlayerSilentAtZeroVolume(t *testing.T) {
	cfg := config.DefaultTuning().Audio
	cfg.Volume = 0

	p := NewPlayer(cfg, NewSynthSource(testRate), nil)
	if !p.Silent() {
		t.Fatal("zero volume must yield a silent player")
	}
	drivePlayer(p)
}

func TestPlayerSilentWithNilSource(t *testing.T) {
	p := NewPlayer(config.DefaultTuning().Audio, nil, nil)
	if !p.Silent() {
		t.Fatal("nil source must yield a silent player")
	}
	drivePlayer(p)
}

func TestPlayerLifecycle(t *testing.T) {
	// Speaker initialization fails on machines without an audio device.
	// That is the degradation path, not a test failure.
	p := NewPlayer(config.DefaultTuning().Audio, NewSynthSource(testRate), nil)
	if p.Silent() {
		t.Log("speaker unavailable, player degraded to silent")
		drivePlayer(p)
		return
	}

	drivePlayer(p)
	if !p.Silent() {
		t.Fatal("closed player must report silent")
	}

	// Operations after close stay safe.
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("closed player panicked: %v", r)
		}
	}()
	p.Play(game.SoundJump)
	p.MusicStart()
	p.MusicStop()
	p.Close()
}
