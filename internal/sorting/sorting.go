// Package sorting implements the stable merge sort used to order catalog views.
package sorting

import "errors"

var (
	// ErrInvalidInput is returned when the sort is given an unusable input,
	// such as a nil comparator.
	ErrInvalidInput = errors.New("sorting: invalid input")

	// ErrInvalidKey is reported by comparators when an element lacks the
	// requested comparison key or the key cannot be interpreted for the
	// requested comparison (e.g. a non-numeric price).
	ErrInvalidKey = errors.New("sorting: invalid key")
)

// Comparator orders two elements. It returns a negative value when a sorts
// before b, zero when they compare equal, and a positive value when a sorts
// after b. A comparator that cannot compare its inputs returns a non-nil
// error, typically wrapping ErrInvalidKey.
type Comparator[T any] func(a, b T) (int, error)

// Clone returns a shallow copy of items. Stable sorts a clone rather than the
// caller's slice, and callers holding records they must not alias can use it
// directly. A nil input yields an empty, non-nil slice.
func Clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Stable returns a new slice holding the elements of items in non-decreasing
// order under cmp. Elements that compare equal keep their input order. The
// input slice is never modified.
//
// The sort is a top-down merge sort: O(n log n) comparisons and O(n)
// auxiliary space. The first comparator error aborts the sort and is
// returned as-is.
func Stable[T any](items []T, cmp Comparator[T]) ([]T, error) {
	if cmp == nil {
		return nil, ErrInvalidInput
	}
	return mergeSort(Clone(items), cmp)
}

// mergeSort sorts items in place-of-ownership: it is only ever handed slices
// the caller no longer aliases, so halves can be re-sliced freely.
func mergeSort[T any](items []T, cmp Comparator[T]) ([]T, error) {
	if len(items) < 2 {
		return items, nil
	}
	mid := len(items) / 2
	left, err := mergeSort(items[:mid], cmp)
	if err != nil {
		return nil, err
	}
	right, err := mergeSort(items[mid:], cmp)
	if err != nil {
		return nil, err
	}
	return merge(left, right, cmp)
}

func merge[T any](left, right []T, cmp Comparator[T]) ([]T, error) {
	out := make([]T, 0, len(left)+len(right))
	l, r := 0, 0
	for l < len(left) && r < len(right) {
		c, err := cmp(left[l], right[r])
		if err != nil {
			return nil, err
		}
		// On ties the left element wins, which keeps the sort stable.
		if c <= 0 {
			out = append(out, left[l])
			l++
		} else {
			out = append(out, right[r])
			r++
		}
	}
	out = append(out, left[l:]...)
	out = append(out, right[r:]...)
	return out, nil
}
