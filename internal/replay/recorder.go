package replay

// Recorder accumulates frames during a live run. The zero value is not
// usable; construct with NewRecorder so the recording carries its level.
type Recorder struct {
	rec Recording
}

func NewRecorder(levelID string) *Recorder {
	return &Recorder{rec: Recording{Version: Version, LevelID: levelID}}
}

// Frame appends one step. dt is the delta handed to the simulation, jump
// reports whether a jump was pressed before that step.
func (r *Recorder) Frame(dt float64, jump bool) {
	r.rec.Frames = append(r.rec.Frames, Frame{DT: dt, Jump: jump})
}

// Len returns the number of captured frames.
func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Recording returns a copy of the capture so far.
func (r *Recorder) Recording() Recording {
	rec := r.rec
	rec.Frames = append([]Frame(nil), r.rec.Frames...)
	return rec
}

// Save writes the capture so far to disk.
func (r *Recorder) Save(path string) error {
	return Save(path, r.rec)
}
