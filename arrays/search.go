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

import "cmp"

// BinarySearch searches the ascending slice data for v. It returns the index
// of a matching element, or -(i)-1 where i is the index at which v would be
// inserted to keep data sorted. With duplicates, any matching index may be
// returned.
func BinarySearch[E cmp.Ordered](data []E, v E) int {
	return binarySearch(data, 0, len(data), v, cmp.Compare[E])
}

// BinarySearchRange is BinarySearch restricted to data[start:end]. Returned
// indices, including the encoded insertion point, are relative to data.
// An empty range returns -start-1.
func BinarySearchRange[E cmp.Ordered](data []E, start, end int, v E) (int, error) {
	if err := CheckRange(len(data), start, end); err != nil {
		return 0, err
	}
	return binarySearch(data, start, end, v, cmp.Compare[E]), nil
}

// BinarySearchFunc is BinarySearch for a slice sorted by cmp. cmp(e, v)
// reports how element e orders relative to the target v.
func BinarySearchFunc[E, T any](data []E, v T, cmp func(E, T) int) int {
	return binarySearch(data, 0, len(data), v, cmp)
}

// BinarySearchRangeFunc is BinarySearchFunc restricted to data[start:end].
func BinarySearchRangeFunc[E, T any](data []E, start, end int, v T, cmp func(E, T) int) (int, error) {
	if err := CheckRange(len(data), start, end); err != nil {
		return 0, err
	}
	return binarySearch(data, start, end, v, cmp), nil
}

// InsertionPoint decodes a negative search result into the index at which
// the target would be inserted. found is false in that case.
func InsertionPoint(result int) (index int, found bool) {
	if result < 0 {
		return -result - 1, false
	}
	return result, true
}

func binarySearch[E, T any](data []E, start, end int, v T, cmp func(E, T) int) int {
	lo, hi := start, end-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := cmp(data[mid], v); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid - 1
		default:
			return mid
		}
	}
	return -(lo + 1)
}
