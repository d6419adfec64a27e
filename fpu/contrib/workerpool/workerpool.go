// Copyright 2025 The go-nofpu Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for applying
// activation kernels to large batches.
//
// A Pool is created once and reused, so each batch costs a channel send per
// worker rather than a goroutine spawn:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, batch := range batches {
//	    activation.ParallelSoftmax(pool, batch.in, batch.out, batch.rows, batch.cols)
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines that execute range tasks.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines. If numWorkers <= 0 it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after queued tasks finish. It is safe to call
// more than once. A closed pool runs further work on the caller's
// goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// ParallelFor splits [0, n) into one contiguous chunk per worker and calls
// fn(start, end) for each. It blocks until every chunk is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.tasks <- task{run: func() { fn(start, end) }, done: &wg}
	}
	wg.Wait()
}

// ParallelForBatched hands out [0, n) in batches of batchSize through an
// atomic cursor, so faster workers take more batches. fn receives
// (start, end) for each batch. It blocks until all batches are done.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	batches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, batches)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var cursor atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for {
					start := int(cursor.Add(int64(batchSize))) - batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
