package main

import (
	"errors"
	"runtime"
	"sync"
)

// Worker pool bounds. The filter is CPU-bound string work; more goroutines
// than CPUs just adds scheduling overhead.
const (
	minWorkers = 1
	maxWorkers = 64
)

// resolveWorkers picks the pool size: explicit flag, then config, then
// GOMAXPROCS (automaxprocs has already fitted that to container limits).
func resolveWorkers(flagWorkers, cfgWorkers int) int {
	n := flagWorkers
	if n == 0 {
		n = cfgWorkers
	}
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n < minWorkers {
		n = minWorkers
	}
	if n > maxWorkers {
		n = maxWorkers
	}
	return n
}

// processAll runs fn over all jobs with at most workers goroutines and
// returns the joined per-job errors, nil if every job succeeded. All jobs
// run to completion; one failing page never stops the batch.
func processAll(jobs []job, workers int, fn func(job) error) error {
	sem := make(chan struct{}, workers)
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, j job) {
			defer wg.Done()
			defer func() { <-sem }()
			errs[i] = fn(j)
		}(i, j)
	}
	wg.Wait()

	return errors.Join(errs...)
}
