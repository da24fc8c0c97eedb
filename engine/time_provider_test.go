package engine

import (
	"testing"
	"time"
)

var (
	_ Clock = (*TimeProvider)(nil)
	_ Clock = (*MockTimeProvider)(nil)
)

func TestTimeProviderAdvances(t *testing.T) {
	clock := NewTimeProvider()
	before := clock.Now()
	time.Sleep(5 * time.Millisecond)

	if elapsed := clock.Now().Sub(before); elapsed < 5*time.Millisecond {
		t.Errorf("Elapsed = %v, want at least 5ms", elapsed)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := NewMockTimeProvider(start)

	steps := []struct {
		name  string
		apply func()
		want  time.Time
	}{
		{"start", func() {}, start},
		{"advance", func() { clock.Advance(800 * time.Millisecond) }, start.Add(800 * time.Millisecond)},
		{"advance again", func() { clock.Advance(time.Second) }, start.Add(1800 * time.Millisecond)},
		{"set", func() { clock.SetTime(start) }, start},
	}
	for _, st := range steps {
		st.apply()
		if got := clock.Now(); !got.Equal(st.want) {
			t.Fatalf("%s: Now = %v, want %v", st.name, got, st.want)
		}
	}
}
