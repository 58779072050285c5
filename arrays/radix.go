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

// radixSort stably sorts data by the byte-wise order of key using a
// three-way radix sort on successive key bytes.
func radixSort[E any](data []E, key func(E) string) {
	radixSortInto(data, make([]E, len(data)), key, 0, false)
}

// radixSortInto sorts the elements held in src by key, looking at bytes
// from depth on; all keys already agree on their first depth bytes. The
// sorted result lands in dst when toDst is set and in src otherwise. The
// other slice is scratch.
//
// Each level scatters src into dst in three stable buckets (byte less than,
// equal to, and greater than the pivot byte) and then recurses with src and
// dst swapped, so the buckets are sorted without being copied back first.
func radixSortInto[E any](src, dst []E, key func(E) string, depth int, toDst bool) {
	n := len(src)
	if n <= insertionSortThreshold {
		insertionSortKeyed(src, key, depth)
		if toDst {
			copy(dst, src)
		}
		return
	}

	pivot := radixPivot(src, key, depth)

	lt, eq := 0, 0
	for _, e := range src {
		switch c := byteAt(key(e), depth); {
		case c < pivot:
			lt++
		case c == pivot:
			eq++
		}
	}

	i, j, k := 0, lt, lt+eq
	for _, e := range src {
		switch c := byteAt(key(e), depth); {
		case c < pivot:
			dst[i] = e
			i++
		case c == pivot:
			dst[j] = e
			j++
		default:
			dst[k] = e
			k++
		}
	}

	// The elements now live in dst. Sorting a bucket of dst with src as
	// scratch leaves it in dst exactly when the recursive call is told
	// not to move it, hence !toDst.
	gt := lt + eq
	if lt > 0 {
		radixSortInto(dst[:lt], src[:lt], key, depth, !toDst)
	}
	if pivot == endOfKey {
		// Every key in the bucket ended at depth: they are all equal and
		// the scatter kept their order.
		if !toDst {
			copy(src[lt:gt], dst[lt:gt])
		}
	} else {
		radixSortInto(dst[lt:gt], src[lt:gt], key, depth+1, !toDst)
	}
	if gt < n {
		radixSortInto(dst[gt:], src[gt:], key, depth, !toDst)
	}
}

// byteAt returns s[d], or endOfKey when s is too short.
func byteAt(s string, d int) int {
	if d < len(s) {
		return int(s[d])
	}
	return endOfKey
}

// radixPivot picks the pivot byte at depth as the median of three samples,
// or the median of three medians for large ranges. The pivot always occurs
// in data, so the equal bucket is never empty.
func radixPivot[E any](data []E, key func(E) string, depth int) int {
	n := len(data)
	at := func(i int) int { return byteAt(key(data[i]), depth) }

	if n < nintherThreshold {
		return median3(at(0), at(n/2), at(n-1))
	}
	s := n / 8
	m := n / 2
	return median3(
		median3(at(0), at(s), at(2*s)),
		median3(at(m-s), at(m), at(m+s)),
		median3(at(n-1-2*s), at(n-1-s), at(n-1)),
	)
}

func median3(a, b, c int) int {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
		if a > b {
			b = a
		}
	}
	return b
}
