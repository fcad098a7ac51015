package dheap

import "golang.org/x/exp/constraints"

// Min is a min-heap comparator for ordered types: smaller values have higher
// priority.
func Min[T constraints.Ordered](a, b T) bool { return a < b }

// Max is a max-heap comparator for ordered types: larger values have higher
// priority.
func Max[T constraints.Ordered](a, b T) bool { return a > b }

// MinBy builds a min-heap comparator from a key extractor: items with smaller
// keys have higher priority.
//
//	higher := dheap.MinBy(func(t Task) int { return t.Priority })
func MinBy[T any, O constraints.Ordered](key func(T) O) Comparator[T] {
	return func(a, b T) bool { return key(a) < key(b) }
}

// MaxBy builds a max-heap comparator from a key extractor: items with larger
// keys have higher priority.
func MaxBy[T any, O constraints.Ordered](key func(T) O) Comparator[T] {
	return func(a, b T) bool { return key(a) > key(b) }
}

// Reverse inverts a comparator, turning a min-heap ordering into a max-heap
// ordering and vice versa.
func Reverse[T any](higher Comparator[T]) Comparator[T] {
	return func(a, b T) bool { return higher(b, a) }
}

// Chain compares by each comparator in turn, falling through to the next one
// when neither item outranks the other.
//
//	// By priority first, oldest deadline breaking ties.
//	higher := dheap.Chain(
//	    dheap.MinBy(func(t Task) int { return t.Priority }),
//	    dheap.MinBy(func(t Task) int64 { return t.Deadline }),
//	)
func Chain[T any](comparators ...Comparator[T]) Comparator[T] {
	return func(a, b T) bool {
		for _, higher := range comparators {
			if higher(a, b) {
				return true
			}
			if higher(b, a) {
				return false
			}
		}
		return false
	}
}
