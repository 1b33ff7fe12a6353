// Package game implements the simulation core: player physics, obstacle
// collision, level progression and win/loss resolution. The package has no
// rendering, input, or audio dependencies; drivers feed it elapsed time and
// commands, and read it back each frame through Snapshot.
package game

import (
	"fmt"
	"math"

	"github.com/cuberush/cuberush/internal/config"
	"github.com/cuberush/cuberush/internal/geom"
	"github.com/cuberush/cuberush/internal/level"
)

// PlayerState is the player square's kinematic state. Y uses the top-left
// convention. Rotation is radians, purely cosmetic, and never affects
// collision.
type PlayerState struct {
	X        float64
	Y        float64
	VY       float64
	Size     float64
	Grounded bool
	Rotation float64
}

// RunState is the full mutable state of one run. StartRun reinitializes it
// in place; only the step function and the commands mutate it. Running and
// Over are mutually exclusive once Over is set; both start false (idle).
type RunState struct {
	Running bool
	Over    bool
	Won     bool
	Paused  bool

	Score         float64
	LevelIndex    int
	Distance      float64 // into the current level
	TotalDistance float64

	Player PlayerState
}

// Game owns one RunState and the fixed context it runs against: the level
// sequence, the tuning constants, and the sound sink. It is single-threaded
// by contract; one driver calls the commands and Advance from one goroutine.
type Game struct {
	levels []level.Level
	tuning config.Tuning
	sink   SoundSink

	state RunState
}

// New creates a game over the given level sequence. Levels and tuning are
// validated up front so a bad table fails at construction, not mid-run.
// sink may be nil for headless runs.
func New(levels []level.Level, tuning config.Tuning, sink SoundSink) (*Game, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("at least one level is required")
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	coreW := tuning.Player.Size - 2*geom.HitboxInset
	if coreW <= 0 {
		return nil, fmt.Errorf("player size %.0f leaves no hitbox after the %.0f unit leniency inset", tuning.Player.Size, geom.HitboxInset)
	}

	for _, lvl := range levels {
		if err := level.Validate(lvl); err != nil {
			return nil, err
		}

		// The frame clamp bounds how far the track moves in one step; an
		// obstacle whose overlap span is narrower than that step can slip
		// between two samples at full speed.
		maxStep := tuning.Physics.BaseSpeed * lvl.SpeedMultiplier * tuning.Physics.MaxFrameDT
		for _, obs := range lvl.Obstacles {
			hitW := obs.Width
			if obs.Kind == level.Spike {
				hitW -= 2 * geom.HitboxInset
			}
			if hitW <= 0 {
				continue // no hitbox, purely decorative
			}
			if maxStep >= coreW+hitW {
				return nil, fmt.Errorf("level %s: obstacle at x=%.0f is too narrow for speed %.2gx, one clamped frame can step past it", lvl.ID, obs.X, lvl.SpeedMultiplier)
			}
		}
	}

	return &Game{
		levels: levels,
		tuning: tuning,
		sink:   sink,
	}, nil
}

// Levels returns the level sequence the game runs against.
func (g *Game) Levels() []level.Level {
	return g.levels
}

// Tuning returns the tuning constants the game runs against.
func (g *Game) Tuning() config.Tuning {
	return g.tuning
}

// State returns a copy of the current run state.
func (g *Game) State() RunState {
	return g.state
}

// StartRun fully reinitializes the run: level 0, zero score and distances,
// player grounded on the floor. Safe to call at any time; calling it twice
// in a row yields the same state as calling it once.
func (g *Game) StartRun() {
	t := g.tuning
	g.state = RunState{
		Running: true,
		Player: PlayerState{
			X:        t.Player.X,
			Y:        t.World.FloorY - t.Player.Size,
			Size:     t.Player.Size,
			Grounded: true,
		},
	}
	g.musicStart()
}

// Jump launches the player if possible. Airborne presses are ignored;
// there is no input buffering and no variable jump height.
func (g *Game) Jump() {
	if !g.state.Running || g.state.Over || g.state.Paused {
		return
	}
	if !g.state.Player.Grounded {
		return
	}
	g.state.Player.VY = -g.tuning.Physics.JumpForce
	g.state.Player.Grounded = false
	g.play(SoundJump)
}

// TogglePause flips the pause flag, freezing Advance without touching the
// rest of the run state. Ignored when no run is active.
func (g *Game) TogglePause() {
	if !g.state.Running || g.state.Over {
		return
	}
	g.state.Paused = !g.state.Paused
}

// Advance moves the simulation forward by dt seconds. It is a no-op unless
// a run is active. dt is clamped into [0, MaxFrameDT] so a stalled or
// hostile driver cannot tunnel the player through an obstacle. Within one
// call, integration happens strictly before the collision scan and the
// collision scan strictly before the level-advance check, so a frame that
// kills the player cannot also complete a level.
func (g *Game) Advance(dt float64) {
	if !g.state.Running || g.state.Over || g.state.Paused {
		return
	}
	dt = clampDT(dt, g.tuning.Physics.MaxFrameDT)
	if dt == 0 {
		return
	}

	t := g.tuning
	st := &g.state
	p := &st.Player
	lvl := g.levels[st.LevelIndex]
	speed := t.Physics.BaseSpeed * lvl.SpeedMultiplier

	// 1. Vertical integration.
	p.VY += t.Physics.Gravity * dt
	p.Y += p.VY * dt

	// 2. Ground clamp. The floor line is the only grounding mechanism;
	// rotation snaps to zero the instant the player lands.
	if p.Y >= t.World.FloorY-p.Size {
		p.Y = t.World.FloorY - p.Size
		p.VY = 0
		p.Grounded = true
		p.Rotation = 0
	}

	// 3. Visual rotation while airborne.
	if !p.Grounded {
		p.Rotation += speed * dt / 60
	}

	// 4. Distance and score accrual. Score is time-based so it reads the
	// same at every speed multiplier.
	st.Distance += speed * dt
	st.TotalDistance += speed * dt
	st.Score += dt * 60

	// 5. Collision scan. Off-screen obstacles are skipped as a shortcut;
	// they cannot overlap the player.
	playerBox := geom.PlayerHitbox(p.X, p.Y, p.Size)
	for _, obs := range lvl.Obstacles {
		worldX := obs.X - st.Distance
		if worldX+obs.Width < 0 || worldX > t.World.ScreenW {
			continue
		}

		var box geom.Rect
		if obs.Kind == level.Spike {
			box = geom.SpikeHitbox(worldX, t.World.FloorY, obs.Width, obs.Height)
		} else {
			box = geom.BlockHitbox(worldX, t.World.FloorY, obs.Width, obs.Height)
		}

		if playerBox.Overlaps(box) {
			g.setGameOver(false)
			return
		}
	}

	// 6. Level completion.
	if st.Distance >= lvl.Length {
		st.LevelIndex++
		if st.LevelIndex >= len(g.levels) {
			g.setGameOver(true)
			return
		}
		st.Distance = 0
	}
}

// setGameOver ends the run. The final score stays readable; the Over flag
// is what halts future steps (drivers keep ticking, steps degrade to
// no-ops).
func (g *Game) setGameOver(won bool) {
	g.state.Running = false
	g.state.Over = true
	g.state.Won = won
	g.state.Paused = false

	if won {
		g.play(SoundWin)
	} else {
		g.play(SoundCrash)
	}
	g.musicStop()
}

// clampDT bounds a driver-supplied delta time. Negative and non-finite
// values collapse to zero rather than corrupting the physics.
func clampDT(dt, max float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}
