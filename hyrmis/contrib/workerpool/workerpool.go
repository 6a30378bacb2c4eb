// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for running
// many independent jobs, such as randomized sort verification trials.
//
// Each job is single-threaded; the pool only spreads jobs across workers.
// Jobs are handed out one index at a time through an atomic counter, so
// cheap and expensive jobs balance out across workers.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Run(ctx, trials, func(worker, i int) {
//	    results[worker].add(runTrial(i))
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many Run calls.
// Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one worker's share of a Run call.
type workItem struct {
	fn      func(worker int)
	worker  int
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn(item.worker)
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool. Worker indices passed
// to Run callbacks are in [0, NumWorkers()).
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Pending work completes first.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run calls fn(worker, i) for every i in [0, n) and blocks until all calls
// return. Calls sharing a worker index never run concurrently, so fn may
// write to per-worker state without locking.
//
// Once ctx is done no further indices are handed out and Run returns
// ctx.Err() after in-flight calls finish. A closed pool runs everything on
// the calling goroutine as worker 0.
func (p *Pool) Run(ctx context.Context, n int, fn func(worker, i int)) error {
	if n <= 0 {
		return ctx.Err()
	}

	var next, done atomic.Int64
	drain := func(worker int) {
		for ctx.Err() == nil {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			fn(worker, i)
			done.Add(1)
		}
	}
	finished := func() error {
		if int(done.Load()) < n {
			return ctx.Err()
		}
		return nil
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		drain(0)
		return finished()
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		p.workC <- workItem{fn: drain, worker: w, barrier: &wg}
	}
	wg.Wait()

	return finished()
}
