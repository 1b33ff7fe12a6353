package replay

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestRecordingRoundTrip(t *testing.T) {
	r := NewRecorder("liftoff")
	for i := 0; i < 10; i++ {
		r.Frame(1.0/60.0, i == 3)
	}

	path := filepath.Join(t.TempDir(), "run"+Ext)
	if err := r.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, r.Recording()) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, r.Recording())
	}
	if got.Version != Version || got.LevelID != "liftoff" || len(got.Frames) != 10 {
		t.Fatalf("unexpected recording header: %+v", got)
	}
	if !got.Frames[3].Jump || got.Frames[4].Jump {
		t.Fatal("jump flag landed on the wrong frame")
	}
}

func TestRecorderRecordingIsACopy(t *testing.T) {
	r := NewRecorder("liftoff")
	r.Frame(0.016, false)

	snap := r.Recording()
	r.Frame(0.016, true)

	if len(snap.Frames) != 1 {
		t.Fatalf("snapshot grew with the recorder: %d frames", len(snap.Frames))
	}
	if r.Len() != 2 {
		t.Fatalf("recorder lost frames: %d", r.Len())
	}
}

func TestRecordingDuration(t *testing.T) {
	r := NewRecorder("liftoff")
	for i := 0; i < 120; i++ {
		r.Frame(1.0/60.0, false)
	}

	got := r.Recording().Duration()
	if diff := got - 2*time.Second; diff < -time.Millisecond || diff > time.Millisecond {
		t.Fatalf("duration %v, want about 2s", got)
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"garbage", `{not json`},
		{"wrong version", `{"version":99,"levelId":"liftoff","frames":[]}`},
		{"missing level", `{"version":1,"frames":[]}`},
	}
	for _, tc := range cases {
		if _, err := Decode([]byte(tc.data)); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.crr")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
