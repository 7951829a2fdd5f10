package main

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestResolveWorkers(t *testing.T) {
	tests := []struct {
		name        string
		flagWorkers int
		cfgWorkers  int
		want        int
	}{
		{name: "flag wins", flagWorkers: 3, cfgWorkers: 8, want: 3},
		{name: "config when flag unset", flagWorkers: 0, cfgWorkers: 8, want: 8},
		{name: "cpu count when both unset", flagWorkers: 0, cfgWorkers: 0, want: runtime.GOMAXPROCS(0)},
		{name: "clamped to minimum", flagWorkers: -2, cfgWorkers: 0, want: minWorkers},
		{name: "clamped to maximum", flagWorkers: 1000, cfgWorkers: 0, want: maxWorkers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveWorkers(tt.flagWorkers, tt.cfgWorkers); got != tt.want {
				t.Errorf("resolveWorkers(%d, %d) = %d, want %d", tt.flagWorkers, tt.cfgWorkers, got, tt.want)
			}
		})
	}
}

func TestProcessAllRunsEveryJob(t *testing.T) {
	jobs := make([]job, 20)
	for i := range jobs {
		jobs[i] = job{src: fmt.Sprintf("page%d.md", i)}
	}

	var mu sync.Mutex
	seen := make(map[string]bool)

	err := processAll(jobs, 4, func(j job) error {
		mu.Lock()
		seen[j.src] = true
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("processAll() = %v, want nil", err)
	}
	if len(seen) != len(jobs) {
		t.Errorf("processed %d jobs, want %d", len(seen), len(jobs))
	}
}

func TestProcessAllCollectsErrors(t *testing.T) {
	jobs := []job{{src: "ok.md"}, {src: "bad.md"}, {src: "worse.md"}}
	boom := errors.New("boom")

	err := processAll(jobs, 2, func(j job) error {
		if j.src == "ok.md" {
			return nil
		}
		return fmt.Errorf("%s: %w", j.src, boom)
	})
	if !errors.Is(err, boom) {
		t.Fatalf("processAll() = %v, want wrapped boom", err)
	}
}

func TestProcessAllBoundsConcurrency(t *testing.T) {
	const workers = 2

	var active, peak atomic.Int32
	jobs := make([]job, 16)

	err := processAll(jobs, workers, func(job) error {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		active.Add(-1)
		return nil
	})
	if err != nil {
		t.Fatalf("processAll() = %v", err)
	}
	if p := peak.Load(); p > workers {
		t.Errorf("peak concurrency = %d, want at most %d", p, workers)
	}
}
