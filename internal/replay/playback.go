package replay

import (
	"fmt"

	"github.com/cuberush/cuberush/internal/config"
	"github.com/cuberush/cuberush/internal/game"
	"github.com/cuberush/cuberush/internal/level"
)

// Result is the final state a played-back recording reached.
type Result struct {
	Score      float64
	Won        bool
	Over       bool
	LevelIndex int
	Frames     int // frames consumed before the run ended
}

// Play replays a recording headlessly. The campaign starts on the recorded
// level, exactly as the live run did. Hostile frame deltas are clamped by
// the simulation the same way live input is, so a tampered recording cannot
// desync, only lose.
func Play(rec Recording, cat *level.Catalog, tuning config.Tuning) (Result, error) {
	levels, err := cat.From(rec.LevelID)
	if err != nil {
		return Result{}, fmt.Errorf("resolving recorded level: %w", err)
	}

	g, err := game.New(levels, tuning, nil)
	if err != nil {
		return Result{}, err
	}
	g.StartRun()

	frames := 0
	for _, f := range rec.Frames {
		if f.Jump {
			g.Jump()
		}
		g.Advance(f.DT)
		frames++
		if g.State().Over {
			break
		}
	}

	st := g.State()
	return Result{
		Score:      st.Score,
		Won:        st.Won,
		Over:       st.Over,
		LevelIndex: st.LevelIndex,
		Frames:     frames,
	}, nil
}
