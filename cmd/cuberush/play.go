package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cuberush/cuberush/internal/audio"
	"github.com/cuberush/cuberush/internal/config"
	"github.com/cuberush/cuberush/internal/level"
	"github.com/cuberush/cuberush/internal/platform/tui"
)

var (
	flagLevelFile string
	flagWatch     bool
	flagRecord    string
	flagAssets    string
	flagMute      bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a track",
	Long: `Start a run. With a level ID the campaign starts there; without
one a picker opens first.

Controls:
  Space/Up/W - Jump (launches the run from the start screen)
  P          - Pause
  Esc        - Pause, then back out
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  cuberush play
  cuberush play liftoff
  cuberush play liftoff --record run.crr
  cuberush play --levels-dir ./levels --watch
  cuberush play --level-file track.yaml --watch
  cuberush play --assets ./sounds
  cuberush play --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Play a single custom level YAML instead of the built-ins")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload custom levels when their files change")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write the last run's recording to this file")
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory of WAV clips (jump/crash/win/music), synthesized when empty")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	// The alt-screen UI needs a real terminal.
	if _, _, err := term.GetSize(int(os.Stdout.Fd())); err != nil {
		fmt.Fprintln(os.Stderr, "Error: play requires an interactive terminal")
		os.Exit(1)
	}

	tuning, err := config.Load(flagConfig, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagMute {
		tuning.Audio.Enabled = false
	}

	if flagLevelFile != "" && flagLevelsDir != "" {
		fmt.Fprintln(os.Stderr, "Error: --level-file and --levels-dir are mutually exclusive")
		os.Exit(1)
	}

	cat, err := playCatalog(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 1 && !cat.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'cuberush levels' to see available tracks.")
		os.Exit(1)
	}

	// One speaker per process; a muted or failed speaker plays silently.
	src := audio.NewSource(flagAssets, beep.SampleRate(tuning.Audio.SampleRate), logger)
	player := audio.NewPlayer(tuning.Audio, src, logger)
	defer player.Close()

	var reload <-chan string
	var loaderFn func() (*level.Catalog, error)
	if flagWatch {
		watchRoot := flagLevelsDir
		if watchRoot == "" && flagLevelFile != "" {
			watchRoot = filepath.Dir(flagLevelFile)
		}
		if watchRoot == "" {
			fmt.Fprintln(os.Stderr, "Error: --watch requires --levels-dir or --level-file")
			os.Exit(1)
		}
		watcher, werr := tui.NewLevelWatcher(logger, watchRoot)
		if werr != nil {
			fmt.Fprintf(os.Stderr, "Error watching levels: %v\n", werr)
			os.Exit(1)
		}
		defer watcher.Close()
		reload = watcher.Events()
		loaderFn = func() (*level.Catalog, error) { return playCatalog(logger) }
	}

	opts := tui.Options{
		Catalog: cat,
		Tuning:  tuning,
		Sink:    player,
		FPS:     flagFPS,
		Record:  flagRecord != "",
		Reload:  reload,
		Loader:  loaderFn,
	}

	// Direct play: one session, back quits.
	if len(args) == 1 {
		opts.StartID = args[0]
		final, runErr := tui.Run(opts)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		saveRecording(final, logger)
		return
	}

	// Picker loop: back from a run returns here.
	for {
		result, menuErr := tui.RunMenu(cat)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		if result.Quit {
			return
		}

		opts.Catalog = cat
		opts.StartID = result.LevelID
		final, runErr := tui.Run(opts)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		saveRecording(final, logger)

		if !final.BackRequested() {
			return
		}

		// Pick up on-disk changes between runs when watching.
		if loaderFn != nil {
			if fresh, ferr := loaderFn(); ferr == nil {
				cat = fresh
			}
		}
	}
}

// playCatalog resolves the catalog for play: a single named level file,
// or the shared --levels-dir/built-in resolution. A named file that fails
// to parse or validate is an error, never skipped.
func playCatalog(logger *log.Logger) (*level.Catalog, error) {
	if flagLevelFile == "" {
		return loadCatalog(logger)
	}
	lv, err := level.LoadFile(flagLevelFile)
	if err != nil {
		return nil, err
	}
	return level.NewCatalog(lv)
}

// saveRecording writes the final model's recording when --record is set.
func saveRecording(m tui.Model, logger *log.Logger) {
	if flagRecord == "" {
		return
	}

	rec := m.Recorder()
	if rec == nil || rec.Len() == 0 {
		logger.Warn("no frames recorded, nothing to save")
		return
	}

	if err := rec.Save(flagRecord); err != nil {
		logger.Error("could not save recording", "path", flagRecord, "error", err)
		return
	}
	logger.Info("recording saved", "path", flagRecord, "frames", rec.Len())
}
