package internal

import (
	"iter"
)

// IterCycle yields count index/value pairs, repeating items from the start
// whenever they run out. An empty items yields nothing.
func IterCycle[T any](items []T, count int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if len(items) == 0 {
			return
		}
		for n := range count {
			if !yield(n, items[n%len(items)]) {
				return // Stop if the consumer stops
			}
		}
	}
}
