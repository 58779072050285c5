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
	"errors"
	"fmt"
)

// Sentinel errors. Errors returned by this package wrap one of these, so
// callers can test with errors.Is.
var (
	// ErrInvalidArgument reports a range whose start lies after its end.
	ErrInvalidArgument = errors.New("arrays: invalid argument")

	// ErrOutOfBounds reports a range that does not fit inside the slice.
	ErrOutOfBounds = errors.New("arrays: index out of bounds")

	// ErrNotComparable reports an element without a natural ordering.
	ErrNotComparable = errors.New("arrays: element not comparable")
)

// RangeError describes a rejected [start, end) range.
type RangeError struct {
	Start, End int
	Len        int
	Err        error
}

func (e *RangeError) Error() string {
	if e.Err == ErrInvalidArgument {
		return fmt.Sprintf("arrays: start %d > end %d", e.Start, e.End)
	}
	return fmt.Sprintf("arrays: range [%d, %d) out of bounds for length %d", e.Start, e.End, e.Len)
}

func (e *RangeError) Unwrap() error { return e.Err }

// ClassCastError reports an element that was compared by natural ordering
// but has none.
type ClassCastError struct {
	// Type is the dynamic type of the offending element.
	Type string
}

func (e *ClassCastError) Error() string {
	return fmt.Sprintf("arrays: %s has no natural ordering", e.Type)
}

func (e *ClassCastError) Unwrap() error { return ErrNotComparable }

// CheckRange validates [start, end) against a slice of the given length.
// An inverted range is an argument error even when it is also out of bounds.
// It is the check every ranged function in this package performs first.
func CheckRange(length, start, end int) error {
	if start > end {
		return &RangeError{Start: start, End: end, Len: length, Err: ErrInvalidArgument}
	}
	if start < 0 || end > length {
		return &RangeError{Start: start, End: end, Len: length, Err: ErrOutOfBounds}
	}
	return nil
}
