package buildpipeline

import (
	"sync"
	"time"
)

// Timings accumulates time spent per stage across every file.
type Timings struct {
	mu     sync.Mutex
	stages map[Stage]time.Duration
}

// Add records d against stage.
func (t *Timings) Add(stage Stage, d time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
	t.stages[stage] += d
}

func (t *Timings) Duration(stage Stage) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stages[stage]
}

// Sum returns the total over the given stages.
func (t *Timings) Sum(stages ...Stage) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	var total time.Duration
	for _, s := range stages {
		total += t.stages[s]
	}
	return total
}
