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

package arrays

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGallop(t *testing.T) {
	run := []int{1, 1, 2, 3, 5, 8, 13}
	assert.Equal(t, 4, gallopLE(run, 3, cmp.Compare[int]))
	assert.Equal(t, 3, gallopLT(run, 3, cmp.Compare[int]))
	assert.Equal(t, 7, gallopLE(run, 99, cmp.Compare[int]))
	assert.Equal(t, 1, gallopLE([]int{1}, 1, cmp.Compare[int]))
	assert.Equal(t, 2, gallopLE(run, 1, cmp.Compare[int]))
	assert.Equal(t, 2, gallopLT(run, 2, cmp.Compare[int]))
}

// TestGallopExhaustive checks every boundary position, including runs that
// end exactly on a probe offset.
func TestGallopExhaustive(t *testing.T) {
	for n := 1; n <= 130; n++ {
		run := make([]int, n)
		for i := range run {
			run[i] = i
		}
		for p := 0; p < n; p++ {
			if got := gallopLE(run, p, cmp.Compare[int]); got != p+1 {
				t.Fatalf("gallopLE(n=%d, pivot=%d) = %d, want %d", n, p, got, p+1)
			}
		}
		for p := 1; p <= n; p++ {
			if got := gallopLT(run, p, cmp.Compare[int]); got != p {
				t.Fatalf("gallopLT(n=%d, pivot=%d) = %d, want %d", n, p, got, p)
			}
		}
	}
}

func TestMergeRunsGallopsOverBlocks(t *testing.T) {
	var left, right []int
	for i := 0; i < 100; i++ {
		left = append(left, i)
		right = append(right, 100+i)
	}
	for i := 0; i < 100; i++ {
		left = append(left, 200+i)
		right = append(right, 300+i)
	}

	comparisons := 0
	counting := func(a, b int) int {
		comparisons++
		return cmp.Compare(a, b)
	}

	dst := make([]int, len(left)+len(right))
	mergeRuns(dst, left, right, counting)

	for i, v := range dst {
		if v != i {
			t.Fatalf("dst[%d] = %d, want %d", i, v, i)
		}
	}
	// A one-at-a-time merge needs about 400 comparisons here.
	assert.Less(t, comparisons, 100)
}

func TestMergeRunsInOrderSkipsMerge(t *testing.T) {
	comparisons := 0
	counting := func(a, b int) int {
		comparisons++
		return cmp.Compare(a, b)
	}
	dst := make([]int, 6)
	mergeRuns(dst, []int{1, 2, 3}, []int{3, 4, 5}, counting)
	assert.Equal(t, []int{1, 2, 3, 3, 4, 5}, dst)
	assert.Equal(t, 1, comparisons)
}

func TestMergeStable(t *testing.T) {
	left := []tagged{{1, 0}, {2, 1}, {2, 2}, {5, 3}}
	right := []tagged{{0, 4}, {2, 5}, {5, 6}, {6, 7}}
	dst := make([]tagged, len(left)+len(right))

	require.NoError(t, Merge(dst, left, right, byKey))
	want := []tagged{{0, 4}, {1, 0}, {2, 1}, {2, 2}, {2, 5}, {5, 3}, {5, 6}, {6, 7}}
	assert.Equal(t, want, dst)
}

func TestMergeEmptyRuns(t *testing.T) {
	dst := make([]int, 3)
	require.NoError(t, Merge(dst, nil, []int{1, 2, 3}, nil))
	assert.Equal(t, []int{1, 2, 3}, dst)

	require.NoError(t, Merge(dst, []int{4, 5, 6}, nil, nil))
	assert.Equal(t, []int{4, 5, 6}, dst)
}

func TestMergeShortDst(t *testing.T) {
	dst := []int{0, 0}
	err := Merge(dst, []int{1, 2}, []int{3}, cmp.Compare[int])
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, []int{0, 0}, dst)
}

func TestMergeNotComparable(t *testing.T) {
	dst := make([]opaque, 2)
	err := Merge(dst, []opaque{{1}}, []opaque{{0}}, nil)
	assert.ErrorIs(t, err, ErrNotComparable)
}

// TestMergeSortRolesSwap sorts directly through mergeSort to check that the
// scratch slice only needs to start as a copy of the input.
func TestMergeSortRolesSwap(t *testing.T) {
	for _, n := range []int{8, 9, 17, 100, 1023} {
		data := make([]int, n)
		for i := range data {
			data[i] = (i * 7919) % n
		}
		scratch := slices.Clone(data)
		mergeSort(scratch, data, cmp.Compare[int])
		if !isSorted(data) {
			t.Errorf("mergeSort(n=%d) produced unsorted result", n)
		}
	}
}
