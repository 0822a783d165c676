package reconcile

import "iter"

// Chunks returns an iterator over successive sub-slices of items, each of
// length n except possibly the last. The sub-slices alias items and are
// never mutated; empty input yields no chunks. The iterator is
// restartable. Panics if n is not positive.
func Chunks[T any](items []T, n int) iter.Seq[[]T] {
	if n < 1 {
		panic("reconcile: chunk size must be positive")
	}
	return func(yield func([]T) bool) {
		for i := 0; i < len(items); i += n {
			end := min(i+n, len(items))
			if !yield(items[i:end:end]) {
				return
			}
		}
	}
}
