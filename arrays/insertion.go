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

import "strings"

// insertionSort sorts data with linear insertion sort. An element moves left
// only past strictly greater predecessors, which keeps the sort stable.
func insertionSort[E any](data []E, cmp func(a, b E) int) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && cmp(data[j], key) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// insertionSortKeyed is insertionSort ordering by key. All keys in data
// share their first depth bytes, so only the suffixes are compared.
func insertionSortKeyed[E any](data []E, key func(E) string, depth int) {
	for i := 1; i < len(data); i++ {
		e := data[i]
		k := key(e)[depth:]
		j := i - 1
		for j >= 0 && strings.Compare(key(data[j])[depth:], k) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = e
	}
}
