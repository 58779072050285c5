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

// Thresholds for the different sorting strategies.
const (
	// insertionSortThreshold: use insertion sort for ranges this size or smaller.
	insertionSortThreshold = 7

	// nintherThreshold: radix ranges this size or larger take the pivot as the
	// median of three medians of three.
	nintherThreshold = 40
)

// endOfKey is the byte value reported past the end of a key. It orders
// before every real byte.
const endOfKey = -1
