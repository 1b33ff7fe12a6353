package game

import (
	"github.com/cuberush/cuberush/internal/geom"
	"github.com/cuberush/cuberush/internal/level"
)

// Snapshot is a read-only view of the run for presentation. Reads are
// poll-based: the renderer takes one snapshot per frame and never mutates
// the game.
type Snapshot struct {
	Running bool
	Over    bool
	Won     bool
	Paused  bool

	Score         float64
	LevelIndex    int
	LevelCount    int
	LevelName     string
	Progress      float64 // through the current level, clamped to [0, 1]
	TotalDistance float64

	Player    PlayerState
	Obstacles []ObstacleView
}

// ObstacleView is an obstacle positioned in screen space. X carries the
// same obs.X - Distance transform the collision scan uses, so what the
// player sees and what the player hits cannot diverge.
type ObstacleView struct {
	Kind   level.Kind
	X      float64
	Width  float64
	Height float64
}

// Snapshot captures the current state. Only obstacles inside the world
// viewport are included.
func (g *Game) Snapshot() Snapshot {
	st := g.state
	snap := Snapshot{
		Running:       st.Running,
		Over:          st.Over,
		Won:           st.Won,
		Paused:        st.Paused,
		Score:         st.Score,
		LevelIndex:    st.LevelIndex,
		LevelCount:    len(g.levels),
		TotalDistance: st.TotalDistance,
		Player:        st.Player,
	}

	// After a win LevelIndex sits one past the end; report the last level.
	idx := st.LevelIndex
	if idx >= len(g.levels) {
		idx = len(g.levels) - 1
	}
	lvl := g.levels[idx]

	snap.LevelName = lvl.Name
	snap.Progress = geom.Clamp01(st.Distance / lvl.Length)

	for _, obs := range lvl.Obstacles {
		worldX := obs.X - st.Distance
		if worldX+obs.Width < 0 || worldX > g.tuning.World.ScreenW {
			continue
		}
		snap.Obstacles = append(snap.Obstacles, ObstacleView{
			Kind:   obs.Kind,
			X:      worldX,
			Width:  obs.Width,
			Height: obs.Height,
		})
	}

	return snap
}
