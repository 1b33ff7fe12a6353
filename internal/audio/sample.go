package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// Clip file names the sample source expects in its directory.
const (
	sampleJump  = "jump.wav"
	sampleCrash = "crash.wav"
	sampleWin   = "win.wav"
	sampleMusic = "music.wav"
)

const resampleQuality = 4

// SampleSource plays prerecorded WAV clips decoded into memory. All four
// clips must load; a missing or corrupt file fails construction so the
// caller can fall back to synthesis.
type SampleSource struct {
	jump  *beep.Buffer
	crash *beep.Buffer
	win   *beep.Buffer
	music *beep.Buffer
}

// NewSampleSource loads the clips from dir, resampling each to rate.
func NewSampleSource(dir string, rate beep.SampleRate) (*SampleSource, error) {
	s := &SampleSource{}
	for _, clip := range []struct {
		name string
		dst  **beep.Buffer
	}{
		{sampleJump, &s.jump},
		{sampleCrash, &s.crash},
		{sampleWin, &s.win},
		{sampleMusic, &s.music},
	} {
		buf, err := loadWAV(filepath.Join(dir, clip.name), rate)
		if err != nil {
			return nil, err
		}
		*clip.dst = buf
	}
	return s, nil
}

func loadWAV(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sample: %w", err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
		format.SampleRate = rate
	}

	buf := beep.NewBuffer(format)
	buf.Append(src)
	return buf, nil
}

func (s *SampleSource) Jump() beep.Streamer {
	return s.jump.Streamer(0, s.jump.Len())
}

func (s *SampleSource) Crash() beep.Streamer {
	return s.crash.Streamer(0, s.crash.Len())
}

func (s *SampleSource) Win() beep.Streamer {
	return s.win.Streamer(0, s.win.Len())
}

// Music loops the buffered track forever. Buffer streamers can seek, so
// looping is legal here where it is not on raw generators.
func (s *SampleSource) Music() beep.Streamer {
	shot := s.music.Streamer(0, s.music.Len())
	loop, err := beep.Loop2(shot)
	if err != nil {
		return shot
	}
	return loop
}
