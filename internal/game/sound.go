package game

// Sound identifies an abstract audio event emitted by the simulation.
// The core never touches audio primitives; realization (synthesized tone,
// decoded sample, or nothing at all) belongs to the sink.
type Sound int

const (
	SoundJump Sound = iota
	SoundCrash
	SoundWin
)

// SoundSink receives audio events from the simulation. A nil sink is
// valid and silent, so headless drivers pass nothing.
type SoundSink interface {
	Play(s Sound)
	MusicStart()
	MusicStop()
}

func (g *Game) play(s Sound) {
	if g.sink != nil {
		g.sink.Play(s)
	}
}

func (g *Game) musicStart() {
	if g.sink != nil {
		g.sink.MusicStart()
	}
}

func (g *Game) musicStop() {
	if g.sink != nil {
		g.sink.MusicStop()
	}
}
