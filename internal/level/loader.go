package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// yamlLevel is the on-disk document shape for custom levels.
type yamlLevel struct {
	ID              string         `yaml:"id"`
	Name            string         `yaml:"name"`
	Length          float64        `yaml:"length"`
	SpeedMultiplier float64        `yaml:"speed_multiplier,omitempty"`
	Obstacles       []yamlObstacle `yaml:"obstacles"`
}

type yamlObstacle struct {
	Kind   string  `yaml:"kind"`
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Parse decodes and validates a single custom level document.
// An omitted speed_multiplier defaults to 1.0.
func Parse(data []byte) (Level, error) {
	var doc yamlLevel
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	lvl := Level{
		ID:              doc.ID,
		Name:            doc.Name,
		Length:          doc.Length,
		SpeedMultiplier: doc.SpeedMultiplier,
	}
	if lvl.SpeedMultiplier == 0 {
		lvl.SpeedMultiplier = 1.0
	}

	for i, o := range doc.Obstacles {
		kind, ok := ParseKind(o.Kind)
		if !ok {
			return Level{}, ValidationError{
				Code:    "BAD_OBSTACLE",
				Message: fmt.Sprintf("obstacle %d: unknown kind %q", i, o.Kind),
			}
		}
		lvl.Obstacles = append(lvl.Obstacles, Obstacle{
			Kind:   kind,
			X:      o.X,
			Width:  o.Width,
			Height: o.Height,
		})
	}

	if err := Validate(lvl); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// LoadFile loads and validates a single level document.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return lvl, nil
}

// Loader scans a directory tree for custom level documents.
type Loader struct {
	Root string

	// Logger, when set, receives a warning for each skipped file.
	Logger *log.Logger
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively loads every .yaml/.yml level under Root and returns
// them sorted by ID for deterministic ordering. Files that fail to parse or
// validate are logged and skipped; an unreadable tree is an error.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		lvl, perr := LoadFile(path)
		if perr != nil {
			l.warn("skipping level file", "path", path, "error", perr)
			return nil
		}

		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadByID loads a specific level by ID from the loader's tree.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

func (l *Loader) warn(msg string, args ...any) {
	if l.Logger != nil {
		l.Logger.Warn(msg, args...)
	}
}
