package engine

import (
	"time"
)

// TaskKind identifies delayed work
type TaskKind uint8

const (
	// TaskGameOver invokes the external game-over callback
	TaskGameOver TaskKind = iota
)

// Task is one delayed action tagged with the run that scheduled it
type Task struct {
	Kind  TaskKind
	RunID uint64
	Due   time.Time
}

// Scheduler holds one-shot delayed tasks polled by the loop against a clock
// Owned by the loop goroutine; not safe for concurrent use
type Scheduler struct {
	clock Clock
	tasks []Task
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules a task to become due after delay
func (sc *Scheduler) After(kind TaskKind, runID uint64, delay time.Duration) {
	sc.tasks = append(sc.tasks, Task{Kind: kind, RunID: runID, Due: sc.clock.Now().Add(delay)})
}

// Poll removes and returns every task that is due, in scheduling order
func (sc *Scheduler) Poll() []Task {
	now := sc.clock.Now()
	var due []Task
	kept := sc.tasks[:0]
	for _, t := range sc.tasks {
		if !now.Before(t.Due) {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	sc.tasks = kept
	return due
}

// CancelStale drops tasks scheduled by any run other than runID
func (sc *Scheduler) CancelStale(runID uint64) int {
	kept := sc.tasks[:0]
	for _, t := range sc.tasks {
		if t.RunID == runID {
			kept = append(kept, t)
		}
	}
	dropped := len(sc.tasks) - len(kept)
	sc.tasks = kept
	return dropped
}

// Pending returns the number of scheduled tasks
func (sc *Scheduler) Pending() int {
	return len(sc.tasks)
}
