package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cuberush/cuberush/internal/config"
	"github.com/cuberush/cuberush/internal/replay"
)

var flagExpectScore float64

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a recorded run headlessly",
	Long: `Replays a recording produced by 'play --record' through the
simulation, without UI or audio, and prints the outcome.

The simulation is deterministic: the same recording against the same
levels and tuning always lands on the same score. --expect-score turns
that into a check, exiting non-zero on a mismatch.

Examples:
  cuberush replay run.crr
  cuberush replay run.crr --expect-score 437
  cuberush replay run.crr --levels-dir ./levels`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().Float64Var(&flagExpectScore, "expect-score", 0, "Fail unless the replayed score matches")
}

func runReplay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	rec, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading recording: %v\n", err)
		os.Exit(1)
	}

	tuning, err := config.Load(flagConfig, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cat, err := loadCatalog(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	res, err := replay.Play(rec, cat, tuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying: %v\n", err)
		os.Exit(1)
	}

	outcome := "incomplete"
	switch {
	case res.Won:
		outcome = "win"
	case res.Over:
		outcome = "crash"
	}

	logger.Info("replay complete",
		"recording", args[0],
		"level", rec.LevelID,
		"reached", res.LevelIndex,
		"frames", fmt.Sprintf("%d/%d", res.Frames, len(rec.Frames)),
		"duration", rec.Duration().Round(time.Millisecond),
		"outcome", outcome,
		"score", fmt.Sprintf("%.2f", res.Score),
	)

	if cmd.Flags().Changed("expect-score") {
		if math.Abs(res.Score-flagExpectScore) > 1e-6 {
			logger.Error("score mismatch",
				"got", fmt.Sprintf("%.6f", res.Score),
				"want", fmt.Sprintf("%.6f", flagExpectScore),
			)
			os.Exit(1)
		}
		logger.Info("score matches", "score", fmt.Sprintf("%.2f", res.Score))
	}
}
