// Package replay records runs as frame scripts and plays them back
// headlessly. The simulation is single threaded and advances in a fixed
// order, so a recording replayed against the same level table and tuning
// reproduces its run exactly, score included.
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	// Version is the current recording format version.
	Version = 1

	// Ext is the conventional file extension for recordings.
	Ext = ".crr"
)

// Frame is one simulation step: the delta that was applied and whether a
// jump was pressed before the step advanced.
type Frame struct {
	DT   float64 `json:"dt"`
	Jump bool    `json:"jump,omitempty"`
}

// Recording is a full capture of one run: the level the run started on and
// every frame fed to the simulation, in order.
type Recording struct {
	Version int     `json:"version"`
	LevelID string  `json:"levelId"`
	Frames  []Frame `json:"frames"`
}

// Duration sums the recorded frame deltas.
func (r Recording) Duration() time.Duration {
	var total float64
	for _, f := range r.Frames {
		total += f.DT
	}
	return time.Duration(total * float64(time.Second))
}

// Encode serializes the recording as JSON.
func (r Recording) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// Decode parses and validates a recording.
func Decode(data []byte) (Recording, error) {
	var rec Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return Recording{}, fmt.Errorf("parsing recording: %w", err)
	}
	if rec.Version != Version {
		return Recording{}, fmt.Errorf("unsupported recording version %d", rec.Version)
	}
	if rec.LevelID == "" {
		return Recording{}, errors.New("recording has no level id")
	}
	return rec, nil
}

// Load reads a recording from disk.
func Load(path string) (Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recording{}, fmt.Errorf("reading recording: %w", err)
	}
	rec, err := Decode(data)
	if err != nil {
		return Recording{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Save writes a recording to disk.
func Save(path string, rec Recording) error {
	data, err := rec.Encode()
	if err != nil {
		return fmt.Errorf("encoding recording: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing recording: %w", err)
	}
	return nil
}
