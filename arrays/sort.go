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
	"strings"
)

// Sort sorts data in-place in ascending natural order. The sort is stable.
//
// []string slices are radix sorted; every other type is merge sorted.
// Floating-point NaNs order before all other values.
func Sort[E cmp.Ordered](data []E) {
	if s, ok := any(data).([]string); ok {
		sortStrings(s)
		return
	}
	stableSort(data, cmp.Compare[E])
}

// SortRange sorts data[start:end] in ascending natural order, leaving the
// rest of data untouched. Invalid ranges are rejected before any element
// moves.
func SortRange[E cmp.Ordered](data []E, start, end int) error {
	if err := CheckRange(len(data), start, end); err != nil {
		return err
	}
	Sort(data[start:end])
	return nil
}

// SortFunc sorts data in-place using cmp, which must define a total
// preorder. A nil cmp selects the natural ordering of the elements.
//
// The only error is one wrapping ErrNotComparable, returned when cmp is nil
// and an element has no natural ordering. Panics raised by cmp propagate
// unchanged; data is then left partially sorted.
func SortFunc[E any](data []E, cmp func(a, b E) int) error {
	return SortRangeFunc(data, 0, len(data), cmp)
}

// SortRangeFunc sorts data[start:end] using cmp, leaving the rest of data
// untouched. See SortFunc.
func SortRangeFunc[E any](data []E, start, end int, cmp func(a, b E) int) (err error) {
	if err := CheckRange(len(data), start, end); err != nil {
		return err
	}
	if cmp == nil {
		defer catchCast(&err)
	}
	stableSort(data[start:end], orNatural(cmp))
	return nil
}

// SortComparable sorts data in-place by the elements' CompareTo method.
func SortComparable[E Comparable[E]](data []E) {
	stableSort(data, func(a, b E) int { return a.CompareTo(b) })
}

// SortStrings sorts data in-place in byte-wise lexicographic order.
func SortStrings(data []string) {
	sortStrings(data)
}

// SortStringsRange sorts data[start:end] in byte-wise lexicographic order.
func SortStringsRange(data []string, start, end int) error {
	if err := CheckRange(len(data), start, end); err != nil {
		return err
	}
	sortStrings(data[start:end])
	return nil
}

// SortByKey stably sorts data by the byte-wise order of key(e). key is
// called several times per element and must be deterministic.
func SortByKey[E any](data []E, key func(E) string) {
	sortByKey(data, key)
}

// SortRangeByKey sorts data[start:end] by key. See SortByKey.
func SortRangeByKey[E any](data []E, start, end int, key func(E) string) error {
	if err := CheckRange(len(data), start, end); err != nil {
		return err
	}
	sortByKey(data[start:end], key)
	return nil
}

// Merge merges the sorted runs left and right into dst, taking from left
// on ties. dst must not overlap either run. A nil cmp selects the natural
// ordering.
//
// If dst is shorter than len(left)+len(right) an error wrapping
// ErrOutOfBounds is returned and nothing is written.
func Merge[E any](dst, left, right []E, cmp func(a, b E) int) (err error) {
	if n := len(left) + len(right); n > len(dst) {
		return &RangeError{Start: 0, End: n, Len: len(dst), Err: ErrOutOfBounds}
	}
	if cmp == nil {
		defer catchCast(&err)
	}
	mergeRuns(dst, left, right, orNatural(cmp))
	return nil
}

// IsSorted reports whether data is sorted in ascending natural order.
func IsSorted[E cmp.Ordered](data []E) bool {
	for i := 1; i < len(data); i++ {
		if cmp.Less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether data is sorted according to cmp.
func IsSortedFunc[E any](data []E, cmp func(a, b E) int) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}

// stableSort dispatches between insertion and merge sort.
func stableSort[E any](data []E, cmp func(a, b E) int) {
	if StrategyFor(len(data), false) == StrategyInsertion {
		insertionSort(data, cmp)
		return
	}
	mergeSort(slices.Clone(data), data, cmp)
}

func sortStrings(data []string) {
	sortByKey(data, func(s string) string { return s })
}

func sortByKey[E any](data []E, key func(E) string) {
	switch StrategyFor(len(data), true) {
	case StrategyInsertion:
		insertionSortKeyed(data, key, 0)
	case StrategyRadix:
		radixSort(data, key)
	default:
		mergeSort(slices.Clone(data), data, func(a, b E) int {
			return strings.Compare(key(a), key(b))
		})
	}
}
