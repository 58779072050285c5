// Copyright 2025 The go-sortkit Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for the
// parallel sort front end. A Pool is created once and reused across many
// sorts, so each sort pays neither goroutine spawn nor channel allocation.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, batch := range batches {
//	    pool.ParallelFor(len(batch), func(start, end int) {
//	        arrays.Sort(batch[start:end])
//	    })
//	}
//
// A panic raised by fn on a worker is re-raised on the goroutine that
// called ParallelFor or ParallelForAtomic once all workers are done.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one share of a parallel operation.
type workItem struct {
	fn    func()
	batch *batch
}

// batch tracks the shares of one parallel operation and the first panic
// raised by any of them.
type batch struct {
	wg        sync.WaitGroup
	panicOnce sync.Once
	panicked  bool
	panicVal  any
}

func (b *batch) run(fn func()) {
	defer b.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			b.panicOnce.Do(func() {
				b.panicked = true
				b.panicVal = r
			})
		}
	}()
	fn()
}

// wait blocks until every share is done and re-raises the first panic.
func (b *batch) wait() {
	b.wg.Wait()
	if b.panicked {
		panic(b.panicVal)
	}
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.batch.run(item.fn)
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls
// fn(start, end) for each range. Blocks until all work completes.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	b := &batch{}
	for i := range workers {
		start := i * chunkSize
		if start >= n {
			break
		}
		end := min(start+chunkSize, n)

		b.wg.Add(1)
		p.workC <- workItem{
			fn:    func() { fn(start, end) },
			batch: b,
		}
	}

	b.wait()
}

// ParallelForAtomic calls fn(i) for each i in [0, n). Workers claim indices
// through an atomic counter, which balances uneven work such as sorting
// chunks of different difficulty. Blocks until all work completes.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	b := &batch{}
	b.wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			batch: b,
		}
	}

	b.wait()
}
