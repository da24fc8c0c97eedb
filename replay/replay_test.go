package replay

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/sky-pilot/engine"
	"github.com/lixenwraith/sky-pilot/systems"
)

// scriptedInput sweeps the target across the playfield and fires in bursts
func scriptedInput(frame int) engine.Input {
	return engine.Input{
		Target: engine.Target{X: float64(frame%400) - 200, Y: float64(frame%120) - 60},
		Firing: frame%40 < 25,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "last.replay")
	r := NewRecorder()
	r.Start(42, "viper")
	for i := 0; i < 3; i++ {
		r.Record(scriptedInput(i))
	}

	if err := r.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	rec, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if rec.Seed != 42 || rec.Skin != "viper" || rec.Len() != 3 {
		t.Fatalf("Loaded %+v", rec)
	}
	if rec.Frames[1] != (Frame{X: -199, Y: -59, Firing: true}) {
		t.Errorf("Frame 1 = %+v", rec.Frames[1])
	}
}

func TestLoadRejects(t *testing.T) {
	dir := t.TempDir()

	future, err := msgpack.Marshal(&Recording{Version: FormatVersion + 1})
	if err != nil {
		t.Fatal(err)
	}
	futurePath := filepath.Join(dir, "future.replay")
	if err := os.WriteFile(futurePath, future, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(futurePath); !errors.Is(err, ErrVersion) {
		t.Errorf("Load(future) = %v, want ErrVersion", err)
	}

	garbage := filepath.Join(dir, "garbage.replay")
	if err := os.WriteFile(garbage, []byte("not msgpack at all"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(garbage); err == nil {
		t.Error("Load(garbage) succeeded")
	}

	if _, err := Load(filepath.Join(dir, "missing.replay")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v", err)
	}
}

func TestRecorderStartClears(t *testing.T) {
	r := NewRecorder()
	r.Start(1, "default")
	r.Record(scriptedInput(0))
	snapshot := r.Recording()

	r.Start(2, "default")
	if got := r.Recording(); got.Len() != 0 || got.Seed != 2 {
		t.Errorf("After restart: %+v", got)
	}
	if snapshot.Len() != 1 {
		t.Error("Snapshot shares frames with the recorder")
	}
}

func TestPlayerExhausts(t *testing.T) {
	p := NewPlayer(&Recording{Version: FormatVersion, Frames: []Frame{{X: 1}, {X: 2, Firing: true}}})

	var xs []float64
	for {
		in, ok := p.Next()
		if !ok {
			break
		}
		xs = append(xs, in.Target.X)
	}
	if len(xs) != 2 || xs[1] != 2 || !p.Done() {
		t.Errorf("Played %v done=%v", xs, p.Done())
	}

	p.Rewind()
	if in, ok := p.Next(); !ok || in.Target.X != 1 {
		t.Errorf("After rewind: %+v %v", in, ok)
	}
}

// TestReplayReproducesRun records a live run to disk and replays it into a fresh state
func TestReplayReproducesRun(t *testing.T) {
	const seed = 2024
	path := filepath.Join(t.TempDir(), "run.replay")

	live := engine.NewState(seed)
	sim := systems.NewSimulation()
	r := NewRecorder()
	r.Start(seed, "default")
	for frame := 0; frame < 1500 && !live.Crashing(); frame++ {
		in := scriptedInput(frame)
		r.Record(in)
		sim.Step(live, in)
	}
	if err := r.Save(path); err != nil {
		t.Fatal(err)
	}

	rec, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	p := NewPlayer(rec)
	replayed := engine.NewState(p.Seed())
	sim = systems.NewSimulation()
	for {
		in, ok := p.Next()
		if !ok {
			break
		}
		sim.Step(replayed, in)
	}

	liveScore, liveCoins := live.Result()
	gotScore, gotCoins := replayed.Result()
	if gotScore != liveScore || gotCoins != liveCoins || replayed.Frame != live.Frame || replayed.Phase != live.Phase {
		t.Errorf("Replay = (%d, %d, frame %d, %v), live = (%d, %d, frame %d, %v)",
			gotScore, gotCoins, replayed.Frame, replayed.Phase, liveScore, liveCoins, live.Frame, live.Phase)
	}
}
