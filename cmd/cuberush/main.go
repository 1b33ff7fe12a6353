// cuberush is a terminal rhythm runner: one-button jumping over spikes
// and blocks, side-scrolling tracks, synthesized audio.
//
// Usage:
//
//	cuberush play [level]    - Play, with a track picker when no level is given
//	cuberush levels          - List available tracks
//	cuberush replay <file>   - Replay a recorded run headlessly
//	cuberush serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Frame rate (default: 60)
//	--config <path>      - Path to a tuning YAML overlay
//	--levels-dir <path>  - Load tracks from a directory instead of the built-ins
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cuberush/cuberush/internal/level"
)

var (
	// Global flags
	flagFPS       int
	flagConfig    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cuberush",
	Short: "Cube Rush - a one-button runner in your terminal",
	Long: `Cube Rush is a terminal runner: hold the line, jump the spikes,
clear the track. Runs locally or over SSH.

Available commands:
  play     - Play a track, with a picker when none is given
  levels   - Show all available tracks
  replay   - Replay a recorded run headlessly
  serve    - Start SSH server for remote play

Examples:
  cuberush play
  cuberush play liftoff
  cuberush play --levels-dir ./levels --watch
  cuberush play liftoff --record run.crr
  cuberush replay run.crr
  cuberush serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tuning YAML overlay")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of custom level files (replaces built-ins)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the CLI logger. Output goes to stderr so it never
// garbles the alt-screen UI on stdout.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cuberush",
	})
}

// loadCatalog resolves the level catalog: the built-in campaign, or the
// contents of --levels-dir when given.
func loadCatalog(logger *log.Logger) (*level.Catalog, error) {
	if flagLevelsDir == "" {
		return level.Default(), nil
	}

	loader := level.NewLoader(flagLevelsDir)
	loader.Logger = logger
	custom, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(custom) == 0 {
		return nil, fmt.Errorf("no level files found in %s", flagLevelsDir)
	}
	return level.NewCatalog(custom...)
}
