// Package linesort implements the record ordering behind the sortkit sort
// and search commands: whole-line or per-field keys, compared as byte
// strings or as numbers, optionally reversed, over a sub-range of the input.
package linesort

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/ajroetker/go-sortkit/arrays"
	"github.com/ajroetker/go-sortkit/arrays/contrib/parallel"
	"github.com/ajroetker/go-sortkit/arrays/contrib/workerpool"
)

// Options selects how lines are ordered.
type Options struct {
	// Numeric compares keys as float64 instead of byte strings.
	Numeric bool
	// Reverse inverts the ordering; equal keys still keep input order.
	Reverse bool
	// Field is the 1-based field used as key; 0 uses the whole line.
	Field int
	// Separator splits lines into fields.
	Separator string
	// Start and End bound the sorted range [Start, End). End < 0 means
	// the end of the input.
	Start, End int
	// Pool, when set, sorts on a worker pool.
	Pool *workerpool.Pool
}

// ParseError reports a line whose key is not a number.
type ParseError struct {
	Line int // 0-based
	Key  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: key %q is not a number: %v", e.Line+1, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseRange parses "start:end", ":end" or "start:" into bounds. An empty
// string selects everything; a missing end is returned as -1.
func ParseRange(s string) (start, end int, err error) {
	if s == "" {
		return 0, -1, nil
	}
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("range %q: want start:end", s)
	}
	end = -1
	if lo != "" {
		if start, err = strconv.Atoi(lo); err != nil {
			return 0, 0, fmt.Errorf("range %q: %w", s, err)
		}
	}
	if hi != "" {
		if end, err = strconv.Atoi(hi); err != nil {
			return 0, 0, fmt.Errorf("range %q: %w", s, err)
		}
	}
	return start, end, nil
}

// bounds resolves o.Start and o.End against n lines and validates them.
func (o Options) bounds(n int) (int, int, error) {
	end := o.End
	if end < 0 {
		end = n
	}
	if err := arrays.CheckRange(n, o.Start, end); err != nil {
		return 0, 0, err
	}
	return o.Start, end, nil
}

// key extracts the sort key of line.
func (o Options) key(line string) string {
	if o.Field <= 0 {
		return line
	}
	fields := strings.Split(line, o.Separator)
	if o.Field > len(fields) {
		return ""
	}
	return fields[o.Field-1]
}

// record pairs a line with its parsed numeric key.
type record struct {
	line string
	num  float64
}

// Sort sorts lines[Start:End] in place according to o.
func Sort(lines []string, o Options) error {
	start, end, err := o.bounds(len(lines))
	if err != nil {
		return err
	}
	part := lines[start:end]

	if o.Numeric {
		recs, err := o.parse(part, start)
		if err != nil {
			return err
		}
		if err := sortWith(o.Pool, recs, o.numericOrder()); err != nil {
			return err
		}
		for i, r := range recs {
			part[i] = r.line
		}
		return nil
	}

	if !o.Reverse && o.Pool == nil {
		// Byte-wise keys in ascending order take the radix path.
		if o.Field == 0 {
			arrays.SortStrings(part)
		} else {
			arrays.SortByKey(part, o.key)
		}
		return nil
	}
	return sortWith(o.Pool, part, o.stringOrder())
}

// sortWith sorts data on pool, or on the calling goroutine when pool is nil.
func sortWith[E any](pool *workerpool.Pool, data []E, order func(a, b E) int) error {
	if pool != nil {
		return parallel.SortFunc(pool, data, order)
	}
	return arrays.SortFunc(data, order)
}

func (o Options) parse(part []string, offset int) ([]record, error) {
	recs := make([]record, len(part))
	for i, l := range part {
		k := strings.TrimSpace(o.key(l))
		v, err := strconv.ParseFloat(k, 64)
		if err != nil {
			return nil, &ParseError{Line: offset + i, Key: k, Err: err}
		}
		recs[i] = record{line: l, num: v}
	}
	return recs, nil
}

func (o Options) stringOrder() func(a, b string) int {
	if o.Reverse {
		return func(a, b string) int { return strings.Compare(o.key(b), o.key(a)) }
	}
	return func(a, b string) int { return strings.Compare(o.key(a), o.key(b)) }
}

func (o Options) numericOrder() func(a, b record) int {
	if o.Reverse {
		return func(a, b record) int { return cmp.Compare(b.num, a.num) }
	}
	return func(a, b record) int { return cmp.Compare(a.num, b.num) }
}

// Check reports whether lines[Start:End] is already ordered according to o.
// When it is not, first is the index of the first line out of order.
func Check(lines []string, o Options) (sorted bool, first int, err error) {
	start, end, err := o.bounds(len(lines))
	if err != nil {
		return false, 0, err
	}
	part := lines[start:end]

	if o.Numeric {
		recs, err := o.parse(part, start)
		if err != nil {
			return false, 0, err
		}
		order := o.numericOrder()
		for i := 1; i < len(recs); i++ {
			if order(recs[i-1], recs[i]) > 0 {
				return false, start + i, nil
			}
		}
		return true, 0, nil
	}

	order := o.stringOrder()
	for i := 1; i < len(part); i++ {
		if order(part[i-1], part[i]) > 0 {
			return false, start + i, nil
		}
	}
	return true, 0, nil
}

// Search binary searches lines[Start:End], which must be ordered according
// to o, for a line whose key equals target. It returns the index of a match
// or -(insertion point)-1, with indices relative to lines.
func Search(lines []string, target string, o Options) (int, error) {
	start, end, err := o.bounds(len(lines))
	if err != nil {
		return 0, err
	}

	if o.Numeric {
		want, err := strconv.ParseFloat(strings.TrimSpace(target), 64)
		if err != nil {
			return 0, fmt.Errorf("target %q is not a number: %w", target, err)
		}
		recs, err := o.parse(lines[start:end], start)
		if err != nil {
			return 0, err
		}
		r := arrays.BinarySearchFunc(recs, want, func(e record, v float64) int {
			if o.Reverse {
				return cmp.Compare(v, e.num)
			}
			return cmp.Compare(e.num, v)
		})
		// recs starts at lines[start]; shift the result back.
		if idx, found := arrays.InsertionPoint(r); !found {
			return -(start + idx) - 1, nil
		}
		return start + r, nil
	}

	return arrays.BinarySearchRangeFunc(lines, start, end, target, func(line, v string) int {
		if o.Reverse {
			return strings.Compare(v, o.key(line))
		}
		return strings.Compare(o.key(line), v)
	})
}
