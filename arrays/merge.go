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

// mergeSort sorts the elements of dst. On entry src and dst hold the same
// elements in the same order; src is used as scratch and is left clobbered.
//
// Each level sorts the two halves of dst into the matching halves of src
// (roles swapped) and merges them back into dst, so no level copies its
// input before recursing.
func mergeSort[E any](src, dst []E, cmp func(a, b E) int) {
	n := len(dst)
	if n <= insertionSortThreshold {
		insertionSort(dst, cmp)
		return
	}

	mid := int(uint(n) >> 1)
	mergeSort(dst[:mid], src[:mid], cmp)
	mergeSort(dst[mid:], src[mid:], cmp)
	mergeRuns(dst, src[:mid], src[mid:], cmp)
}

// mergeRuns merges the sorted runs left and right into dst, which must not
// overlap either run and must have room for both.
func mergeRuns[E any](dst, left, right []E, cmp func(a, b E) int) {
	if len(left) == 0 || len(right) == 0 || cmp(left[len(left)-1], right[0]) <= 0 {
		// Already in order.
		n := copy(dst, left)
		copy(dst[n:], right)
		return
	}

	k := 0
	takeLeft := cmp(left[0], right[0]) <= 0
	for len(left) > 0 && len(right) > 0 {
		// After a left run, left[0] > right[0]; after a right run,
		// right[0] >= left[0]. Either way the next run is non-empty.
		if takeLeft {
			n := gallopLE(left, right[0], cmp)
			k += copy(dst[k:], left[:n])
			left = left[n:]
		} else {
			n := gallopLT(right, left[0], cmp)
			k += copy(dst[k:], right[:n])
			right = right[n:]
		}
		takeLeft = !takeLeft
	}
	k += copy(dst[k:], left)
	copy(dst[k:], right)
}

// gallopLE returns the length of the longest prefix of run whose elements
// compare <= pivot. run[0] must already be known to qualify.
//
// Probes run at offsets 1, 3, 7, ... until one fails, then binary searches
// the last interval, for O(log k) comparisons where k is the result.
func gallopLE[E any](run []E, pivot E, cmp func(a, b E) int) int {
	lo, hi := 0, 1
	for step := 1; hi < len(run) && cmp(run[hi], pivot) <= 0; {
		lo = hi
		step <<= 1
		hi = lo + step
	}
	hi = min(hi, len(run))

	// run[lo] qualifies; run[hi] does not, or hi == len(run).
	lo++
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if cmp(run[m], pivot) <= 0 {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return lo
}

// gallopLT is gallopLE for the strict prefix whose elements compare < pivot.
func gallopLT[E any](run []E, pivot E, cmp func(a, b E) int) int {
	lo, hi := 0, 1
	for step := 1; hi < len(run) && cmp(run[hi], pivot) < 0; {
		lo = hi
		step <<= 1
		hi = lo + step
	}
	hi = min(hi, len(run))

	lo++
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if cmp(run[m], pivot) < 0 {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return lo
}
