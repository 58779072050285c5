// Package arrays provides a stable, deterministic sorting engine for Go
// slices, together with binary search using the signed insertion-point
// encoding.
//
// # Algorithm
//
// The engine picks one of three strategies for every range it sorts:
//   - Insertion sort for ranges of 7 elements or fewer
//   - Top-down merge sort with galloping merges for larger ranges
//   - Stable three-way radix sort for string-keyed elements
//
// The merge sort allocates one scratch slice per call. The working range and
// the scratch slice swap roles at every recursion level, so each level costs
// a single pass of element moves. When two sorted halves are already in
// order the merge degenerates into a straight copy; otherwise runs taken from
// the same side are located with an exponential search and moved with one
// copy.
//
// All sorts are stable: elements that compare equal keep their original
// relative order.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortkit/arrays"
//
//	func ByAge(people []Person) error {
//	    return arrays.SortFunc(people, func(a, b Person) int {
//	        return cmp.Compare(a.Age, b.Age)
//	    })
//	}
//
//	func Lookup(sorted []int, v int) (int, bool) {
//	    i := arrays.BinarySearch(sorted, v)
//	    if i < 0 {
//	        return -i - 1, false
//	    }
//	    return i, true
//	}
//
// # Natural ordering
//
// A nil comparator selects the natural ordering of the elements: built-in
// ordered types compare with [cmp.Compare], other types must implement
// [Comparable]. An element without a natural ordering makes the sort return
// an error wrapping [ErrNotComparable]; the slice may then be partially
// rearranged.
//
// # Environment
//
// Setting SORTKIT_NO_RADIX disables the radix strategy, so string slices
// are merge sorted like any other element type.
package arrays
