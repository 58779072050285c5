// Copyright 2025 go-sortkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package parallel sorts large slices on a workerpool.Pool. The result is
// identical to arrays.SortFunc: the sort is stable.
//
// The slice is cut into one contiguous chunk per worker, the chunks are
// sorted concurrently, and adjacent chunks are then merged pairwise in
// rounds, alternating between the slice and one scratch buffer.
package parallel

import (
	"cmp"

	"github.com/ajroetker/go-sortkit/arrays"
	"github.com/ajroetker/go-sortkit/arrays/contrib/workerpool"
)

const (
	// MinParallelLength: slices shorter than this are sorted on the calling
	// goroutine.
	MinParallelLength = 1 << 13

	// minChunkLength bounds how finely the slice is cut.
	minChunkLength = 1 << 11
)

// Sort sorts data in ascending natural order using pool.
func Sort[E cmp.Ordered](pool *workerpool.Pool, data []E) {
	// cmp.Compare never fails, so neither does the sort.
	_ = SortFunc(pool, data, cmp.Compare[E])
}

// SortFunc stably sorts data using cmp on pool. A nil cmp selects the
// natural ordering; a nil pool sorts on the calling goroutine. Errors and
// panics are those of arrays.SortFunc.
func SortFunc[E any](pool *workerpool.Pool, data []E, cmp func(a, b E) int) error {
	n := len(data)
	if pool == nil || pool.NumWorkers() < 2 || n < MinParallelLength {
		return arrays.SortFunc(data, cmp)
	}

	bounds := chunkBounds(n, min(pool.NumWorkers(), n/minChunkLength))
	chunks := len(bounds) - 1
	errs := make([]error, chunks)

	pool.ParallelForAtomic(chunks, func(i int) {
		errs[i] = arrays.SortFunc(data[bounds[i]:bounds[i+1]], cmp)
	})
	if err := firstError(errs); err != nil {
		return err
	}

	src, dst := data, make([]E, n)
	for width := 1; width < chunks; width *= 2 {
		pairs := (chunks + 2*width - 1) / (2 * width)
		clear(errs)
		pool.ParallelForAtomic(pairs, func(p int) {
			lo := bounds[p*2*width]
			mid := bounds[min(p*2*width+width, chunks)]
			hi := bounds[min(p*2*width+2*width, chunks)]
			errs[p] = arrays.Merge(dst[lo:hi], src[lo:mid], src[mid:hi], cmp)
		})
		if err := firstError(errs); err != nil {
			return err
		}
		src, dst = dst, src
	}

	// An odd number of rounds leaves the result in the scratch buffer.
	if &src[0] != &data[0] {
		pool.ParallelFor(n, func(start, end int) {
			copy(data[start:end], src[start:end])
		})
	}
	return nil
}

// chunkBounds cuts [0, n) into k near-equal chunks and returns the k+1
// boundaries. k is clamped to at least 1.
func chunkBounds(n, k int) []int {
	k = max(k, 1)
	bounds := make([]int, k+1)
	for i := range bounds {
		bounds[i] = i * n / k
	}
	return bounds
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
