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
	"fmt"
)

// Comparable is implemented by element types with a natural ordering.
// CompareTo returns a negative number, zero or a positive number when the
// receiver orders before, together with, or after other.
type Comparable[E any] interface {
	CompareTo(other E) int
}

// castPanic carries a ClassCastError from the comparison site back to the
// exported entry point, which turns it into an error result.
type castPanic struct {
	err *ClassCastError
}

// naturalCompare orders a and b by their natural ordering. Built-in ordered
// types use cmp.Compare; everything else must implement Comparable.
func naturalCompare[E any](a, b E) int {
	r, builtin, ok := compareBuiltin(any(a), any(b))
	switch {
	case ok:
		return r
	case builtin:
		// a is ordered but b is of another type.
		panic(castPanic{&ClassCastError{Type: fmt.Sprintf("%T", any(b))}})
	}
	x, ok := any(a).(Comparable[E])
	if !ok {
		panic(castPanic{&ClassCastError{Type: fmt.Sprintf("%T", any(a))}})
	}
	return x.CompareTo(b)
}

// compareBuiltin compares a and b when a holds a predeclared ordered type.
// builtin reports whether a has such a type, ok whether b has the same one.
func compareBuiltin(a, b any) (r int, builtin, ok bool) {
	switch x := a.(type) {
	case int:
		r, ok = compareAs(x, b)
	case int8:
		r, ok = compareAs(x, b)
	case int16:
		r, ok = compareAs(x, b)
	case int32:
		r, ok = compareAs(x, b)
	case int64:
		r, ok = compareAs(x, b)
	case uint:
		r, ok = compareAs(x, b)
	case uint8:
		r, ok = compareAs(x, b)
	case uint16:
		r, ok = compareAs(x, b)
	case uint32:
		r, ok = compareAs(x, b)
	case uint64:
		r, ok = compareAs(x, b)
	case uintptr:
		r, ok = compareAs(x, b)
	case float32:
		r, ok = compareAs(x, b)
	case float64:
		r, ok = compareAs(x, b)
	case string:
		r, ok = compareAs(x, b)
	default:
		return 0, false, false
	}
	return r, true, ok
}

func compareAs[T cmp.Ordered](x T, b any) (int, bool) {
	y, ok := b.(T)
	if !ok {
		return 0, false
	}
	return cmp.Compare(x, y), true
}

// orNatural returns c, or the natural ordering when c is nil.
func orNatural[E any](c func(a, b E) int) func(a, b E) int {
	if c == nil {
		return naturalCompare[E]
	}
	return c
}

// catchCast converts a castPanic raised during a natural-order sort into an
// error result. Any other panic continues unwinding.
func catchCast(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if cp, ok := r.(castPanic); ok {
		*err = cp.err
		return
	}
	panic(r)
}
