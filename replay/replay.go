// Package replay records the per-frame input of a run and plays it back
// Together with the run seed this reproduces the run exactly
package replay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/sky-pilot/engine"
)

// FormatVersion is bumped whenever the simulation changes in a way that breaks old recordings
const FormatVersion = 1

// ErrVersion reports a recording made with an incompatible format
var ErrVersion = errors.New("unsupported replay version")

// Frame is the input handed to one simulation step
type Frame struct {
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Firing bool    `msgpack:"f,omitempty"`
}

// Recording is one run: the seed it started from and every frame of input
type Recording struct {
	Version int     `msgpack:"v"`
	Seed    int64   `msgpack:"seed"`
	Skin    string  `msgpack:"skin"`
	Frames  []Frame `msgpack:"frames"`
}

// Len returns the number of recorded frames
func (r *Recording) Len() int {
	return len(r.Frames)
}

// Recorder collects input for the current run
// Owned by the loop goroutine
type Recorder struct {
	rec Recording
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start discards any previous frames and begins a run
func (r *Recorder) Start(seed int64, skin string) {
	r.rec = Recording{Version: FormatVersion, Seed: seed, Skin: skin, Frames: r.rec.Frames[:0]}
}

// Record appends the input of one step
func (r *Recorder) Record(in engine.Input) {
	r.rec.Frames = append(r.rec.Frames, Frame{X: in.Target.X, Y: in.Target.Y, Firing: in.Firing})
}

// Recording returns a snapshot of the run so far
func (r *Recorder) Recording() Recording {
	out := r.rec
	out.Frames = append([]Frame(nil), r.rec.Frames...)
	return out
}

// Save writes the recording atomically
func (r *Recorder) Save(path string) error {
	rec := r.Recording()
	return Save(path, &rec)
}

// Save encodes rec to path through a temp file and rename
func Save(path string, rec *Recording) error {
	data, err := msgpack.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".replay-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// Load decodes a recording from path
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rec Recording
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("%s: version %d: %w", path, rec.Version, ErrVersion)
	}
	return &rec, nil
}

// Player feeds a recording back one frame at a time
type Player struct {
	rec  *Recording
	next int
}

// NewPlayer creates a player positioned at the first frame
func NewPlayer(rec *Recording) *Player {
	return &Player{rec: rec}
}

// Seed returns the seed the recorded run started from
func (p *Player) Seed() int64 {
	return p.rec.Seed
}

// Skin returns the skin id the run was flown with
func (p *Player) Skin() string {
	return p.rec.Skin
}

// Next returns the next recorded input, or false once the recording is exhausted
func (p *Player) Next() (engine.Input, bool) {
	if p.next >= len(p.rec.Frames) {
		return engine.Input{}, false
	}
	f := p.rec.Frames[p.next]
	p.next++
	return engine.Input{Target: engine.Target{X: f.X, Y: f.Y}, Firing: f.Firing}, true
}

// Done reports whether every frame has been played
func (p *Player) Done() bool {
	return p.next >= len(p.rec.Frames)
}

// Rewind restarts playback from the first frame
func (p *Player) Rewind() {
	p.next = 0
}
