package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

const (
	jumpDuration    = time.Millisecond * 140
	crashDuration   = time.Millisecond * 350
	winNoteDuration = time.Millisecond * 130

	jumpChirpLowHz  = 280.0
	jumpChirpHighHz = 660.0
	crashRumbleHz   = 70.0

	trackBeat    = time.Millisecond * 480 // 125 BPM
	trackKickLen = time.Millisecond * 90
	trackKickHz  = 55.0
)

// winNotes is an ascending C major arpeggio (C5, E5, G5).
var winNotes = [3]float64{523.25, 659.25, 783.99}

// trackBassLine cycles one note per beat (A2, A2, F2, G2).
var trackBassLine = [4]float64{110.0, 110.0, 87.31, 98.0}

// SynthSource synthesizes every sound from oscillators, so the game has
// audio without any asset files on disk.
type SynthSource struct {
	rate beep.SampleRate
}

func NewSynthSource(rate beep.SampleRate) *SynthSource {
	return &SynthSource{rate: rate}
}

// Jump is a quick upward chirp.
func (s *SynthSource) Jump() beep.Streamer {
	sweep := newChirp(s.rate, jumpChirpLowHz, jumpChirpHighHz, jumpDuration)
	shaped := newEnvelope(sweep, jumpDuration, time.Millisecond*5, time.Millisecond*60, s.rate)
	return newVolume(shaped, 0.5)
}

// Crash is a noise burst over a low rumble, decaying exponentially.
func (s *SynthSource) Crash() beep.Streamer {
	burst := beep.Take(s.rate.N(crashDuration), newCrackle(s.rate))
	return newVolume(burst, 0.8)
}

// Win is three ascending square notes.
func (s *SynthSource) Win() beep.Streamer {
	parts := make([]beep.Streamer, 0, len(winNotes))
	for _, freq := range winNotes {
		note := newTone(s.rate, freq, waveSquare)
		parts = append(parts, newEnvelope(note, winNoteDuration, time.Millisecond*4, time.Millisecond*70, s.rate))
	}
	return newVolume(beep.Seq(parts...), 0.35)
}

// Music is an endless kick-and-bass track.
func (s *SynthSource) Music() beep.Streamer {
	return newVolume(newTrack(s.rate), 0.4)
}

// waveform selects the oscillator shape.
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveTriangle
)

// tone is an endless fixed-frequency oscillator. Wrap it in an envelope or
// beep.Take to bound it.
type tone struct {
	rate  beep.SampleRate
	freq  float64
	wave  waveform
	phase float64
}

func newTone(rate beep.SampleRate, freq float64, wave waveform) *tone {
	return &tone{rate: rate, freq: freq, wave: wave}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var v float64
		switch t.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				v = 1.0
			} else {
				v = -1.0
			}
		case waveTriangle:
			v = 1.0 - 4.0*math.Abs(t.phase-0.5)
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // keep in [0, 1)
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// chirp sweeps linearly between two frequencies over its lifetime, then
// reports the end of the stream.
type chirp struct {
	rate     beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	total    int
}

func newChirp(rate beep.SampleRate, from, to float64, d time.Duration) *chirp {
	return &chirp{rate: rate, from: from, to: to, total: rate.N(d)}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.pos >= c.total {
			return i, i > 0
		}
		progress := float64(c.pos) / float64(c.total)
		freq := c.from + (c.to-c.from)*progress

		v := math.Sin(2 * math.Pi * c.phase)
		samples[i][0] = v
		samples[i][1] = v

		c.phase += freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.pos++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// crackle is white noise over a low rumble, both under an exponential
// decay. The noise comes from a cheap LCG so no global RNG state is
// touched on the audio path.
type crackle struct {
	rate beep.SampleRate
	pos  int
	seed int64
}

func newCrackle(rate beep.SampleRate) *crackle {
	return &crackle{rate: rate, seed: time.Now().UnixNano()}
}

func (g *crackle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.rate)
		env := math.Exp(-t * 9)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.35 * math.Sin(2*math.Pi*crashRumbleHz*t)

		v := env * (0.3*noise + rumble)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *crackle) Err() error { return nil }

// track is the endless backing loop: a pitch-dropping kick on each beat, a
// bass note cycling over a four-beat bar and a noise tick on the off-beat.
// It never reports the end of the stream; the Player gates it with a
// beep.Ctrl.
type track struct {
	rate    beep.SampleRate
	pos     int
	beat    int
	kickLen int
	hatLen  int
	seed    int64
}

func newTrack(rate beep.SampleRate) *track {
	return &track{
		rate:    rate,
		beat:    rate.N(trackBeat),
		kickLen: rate.N(trackKickLen),
		hatLen:  rate.N(time.Millisecond * 30),
		seed:    1,
	}
}

func (g *track) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.beat
		bar := (g.pos / g.beat) % len(trackBassLine)
		t := float64(beatPos) / float64(g.rate)

		kick := 0.0
		if beatPos < g.kickLen {
			env := 1.0 - float64(beatPos)/float64(g.kickLen)
			kick = 0.5 * env * math.Sin(2*math.Pi*trackKickHz*(1+2*env)*t)
		}

		bass := 0.18 * math.Sin(2*math.Pi*trackBassLine[bar]*t)

		hat := 0.0
		if off := beatPos - g.beat/2; off >= 0 && off < g.hatLen {
			g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
			env := 1.0 - float64(off)/float64(g.hatLen)
			hat = 0.08 * env * (float64(g.seed)/float64(0x7fffffff)*2 - 1)
		}

		v := kick + bass + hat
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *track) Err() error { return nil }

// envelope shapes a streamer with a linear attack and release and truncates
// it at the configured duration, so endless generators become one-shots.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			rel = 0
		}
	}
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if start := e.total - e.release; e.release > 0 && e.pos >= start {
			gain = float64(e.total-e.pos) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer with a logarithmic volume control.
// math.Log2(0) is -Inf, so zero and negative volumes mute instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
