// Copyright 2025 The go-sortkit Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForCoversUnevenSplit(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	// 9 items over 4 workers gives chunks of 3, so only 3 workers get work.
	var count atomic.Int32
	pool.ParallelFor(9, func(start, end int) {
		count.Add(int32(end - start))
	})
	assert.EqualValues(t, 9, count.Load())
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// Test with n smaller than workers
	n := 3
	var count atomic.Int32

	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})
	pool.ParallelForAtomic(0, func(i int) {
		called = true
	})

	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
}

func TestAfterCloseRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()

	var calls int
	pool.ParallelFor(10, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	})
	assert.Equal(t, 1, calls)

	sum := 0
	pool.ParallelForAtomic(5, func(i int) { sum += i })
	assert.Equal(t, 10, sum)
}

func TestPanicReraisedOnCaller(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	assert.PanicsWithValue(t, "chunk failed", func() {
		pool.ParallelFor(100, func(start, end int) {
			if start == 0 {
				panic("chunk failed")
			}
		})
	})

	assert.PanicsWithValue(t, "index failed", func() {
		pool.ParallelForAtomic(100, func(i int) {
			if i == 42 {
				panic("index failed")
			}
		})
	})

	// The pool stays usable after a panic.
	var count atomic.Int32
	pool.ParallelForAtomic(10, func(int) { count.Add(1) })
	assert.EqualValues(t, 10, count.Load())
}
