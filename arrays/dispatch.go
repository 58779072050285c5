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
	"os"
	"strconv"
)

// Strategy identifies the algorithm used for a range.
type Strategy int

const (
	// StrategyInsertion is linear insertion sort, used for short ranges.
	StrategyInsertion Strategy = iota

	// StrategyMerge is top-down merge sort with galloping merges.
	StrategyMerge

	// StrategyRadix is stable three-way radix sort on string keys.
	StrategyRadix
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyInsertion:
		return "insertion"
	case StrategyMerge:
		return "merge"
	case StrategyRadix:
		return "radix"
	default:
		return "unknown"
	}
}

// radixEnabled is cleared at init when SORTKIT_NO_RADIX is set.
var radixEnabled = true

func init() {
	if NoRadixEnv() {
		radixEnabled = false
	}
}

// NoRadixEnv checks if the SORTKIT_NO_RADIX environment variable is set.
// When set, string-keyed sorts use merge sort instead of radix sort.
func NoRadixEnv() bool {
	val := os.Getenv("SORTKIT_NO_RADIX")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// RadixEnabled reports whether string-keyed sorts use the radix strategy.
func RadixEnabled() bool {
	return radixEnabled
}

// StrategyFor returns the strategy used to sort n elements. stringKeyed
// reports whether elements are ordered by a string key.
func StrategyFor(n int, stringKeyed bool) Strategy {
	switch {
	case n <= insertionSortThreshold:
		return StrategyInsertion
	case stringKeyed && radixEnabled:
		return StrategyRadix
	default:
		return StrategyMerge
	}
}
