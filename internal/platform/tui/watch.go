package tui

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// debounceWindow suppresses the burst of events editors emit for a single
// save.
const debounceWindow = 100 * time.Millisecond

// LevelWatcher watches level directories and emits the path of a level
// file whenever one changes on disk.
type LevelWatcher struct {
	watcher *fsnotify.Watcher
	events  chan string
	logger  *log.Logger
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewLevelWatcher starts watching the given directories. logger may be nil.
func NewLevelWatcher(logger *log.Logger, dirs ...string) (*LevelWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &LevelWatcher{
		watcher: fw,
		events:  make(chan string, 16),
		logger:  logger,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events returns the channel of changed level file paths. The channel
// closes when the watcher is closed.
func (w *LevelWatcher) Events() <-chan string {
	return w.events
}

// Close stops the watcher. Safe to call more than once.
func (w *LevelWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.events)
	})
	return err
}

func (w *LevelWatcher) run() {
	defer close(w.done)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isLevelFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounceWindow {
				continue
			}
			last[event.Name] = now

			select {
			case w.events <- event.Name:
			case <-w.closeCh:
				return
			default:
				// A full queue means a reload is already pending;
				// dropping the event loses nothing.
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.logger != nil {
				w.logger.Warn("level watcher error", "error", err)
			}

		case <-w.closeCh:
			return
		}
	}
}

func isLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
