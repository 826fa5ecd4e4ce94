package morepipes

import (
	"fmt"
)

type (

	// MapFunc is a pure mapping function used by Map that transforms a value
	// of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// Predicate represents a filtering function that returns true when the
	// provided value should be included in the output stream.
	Predicate[T any] func(item T) bool
)

// Map transforms each input value using fn and returns a new Pipe producing
// the mapped values.
func Map[In, Out any](p Pipe[In], fn MapFunc[In, Out]) Pipe[Out] {
	return Pipe[Out]{
		seq: func(yield func(Out) bool) {
			for in := range p.seq {
				if !yield(fn(in)) {
					return
				}
			}
		},
	}
}

// FlatMap transforms each input value using fn and returns a Pipe producing
// the flattened output values.
//
// FlatMap is equivalent to calling Flatten(Map(p, fn)).
func FlatMap[In, Out any](p Pipe[In], fn MapFunc[In, []Out]) Pipe[Out] {
	return Flatten(Map(p, fn))
}

// Keep transforms each input value using fn and yields only the results
// that are not the zero value of Out. It combines Map and Truthy into a
// single stage.
func Keep[In any, Out comparable](p Pipe[In], fn MapFunc[In, Out]) Pipe[Out] {
	return Truthy(Map(p, fn))
}

// Filter returns a Pipe that yields only the values for which predicate
// returns true.
func Filter[T any](p Pipe[T], predicate Predicate[T]) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			for in := range p.seq {
				if predicate(in) {
					if !yield(in) {
						return
					}
				}
			}
		},
	}
}

// FilterNot returns a Pipe that yields only the values for which predicate
// returns false. It is the logical complement of Filter.
func FilterNot[T any](p Pipe[T], predicate Predicate[T]) Pipe[T] {
	return Filter(p, func(item T) bool {
		return !predicate(item)
	})
}

// Truthy returns a Pipe that drops every value equal to the zero value of
// T, yielding the rest unchanged.
func Truthy[T comparable](p Pipe[T]) Pipe[T] {
	var zero T
	return Filter(p, func(item T) bool {
		return item != zero
	})
}

// Flatten converts a Pipe of slices into a Pipe of their elements,
// emitting the items of each slice in order.
func Flatten[T any](p Pipe[[]T]) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			for slice := range p.seq {
				for _, item := range slice {
					if !yield(item) {
						return
					}
				}
			}
		},
	}
}

// Take yields at most the first n values of the input.
//
// Take never demands more than n values from its source: once the nth
// value has been yielded the source is released without pulling another
// element. A non-positive n yields nothing and reads nothing.
func Take[T any](p Pipe[T], n int) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			if n <= 0 {
				return
			}
			taken := 0
			for in := range p.seq {
				if !yield(in) {
					return
				}
				taken++
				if taken == n {
					return
				}
			}
		},
	}
}

// Drop skips the first n values of the input and yields the rest
// unmodified.
func Drop[T any](p Pipe[T], n int) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			skipped := 0
			for in := range p.seq {
				if skipped < n {
					skipped++
					continue
				}
				if !yield(in) {
					return
				}
			}
		},
	}
}

// TakeWhile yields values as long as predicate returns true, then stops
// without demanding further values from the source.
func TakeWhile[T any](p Pipe[T], predicate Predicate[T]) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			for in := range p.seq {
				if !predicate(in) {
					return
				}
				if !yield(in) {
					return
				}
			}
		},
	}
}

// DropWhile skips values as long as predicate returns true, then yields
// every remaining value unmodified, including later values for which the
// predicate would again hold.
func DropWhile[T any](p Pipe[T], predicate Predicate[T]) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			dropping := true
			for in := range p.seq {
				if dropping {
					if predicate(in) {
						continue
					}
					dropping = false
				}
				if !yield(in) {
					return
				}
			}
		},
	}
}

// Butlast yields every value except the last. An empty input yields
// nothing. Each value is held back until its successor arrives, so the
// output lags the input by one element.
func Butlast[T any](p Pipe[T]) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			var prev T
			havePrev := false
			for in := range p.seq {
				if havePrev {
					if !yield(prev) {
						return
					}
				}
				prev = in
				havePrev = true
			}
		},
	}
}

// Interpose yields the first value unmodified, then sep before every
// subsequent value. An empty input yields nothing.
func Interpose[T any](p Pipe[T], sep T) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			first := true
			for in := range p.seq {
				if !first {
					if !yield(sep) {
						return
					}
				}
				first = false
				if !yield(in) {
					return
				}
			}
		},
	}
}

// Chunks groups incoming values into slices of exactly size elements.
//
// A trailing group with fewer than size elements is dropped, not yielded.
// Use Chunk when the final partial group must be preserved.
//
// Chunks panics if size is not positive.
func Chunks[T any](p Pipe[T], size int) Pipe[[]T] {
	if size <= 0 {
		panic("morepipes.Chunks: size must be positive")
	}

	return Pipe[[]T]{
		seq: func(yield func([]T) bool) {
			// Each chunk gets its own backing slice. Reusing one buffer
			// across yields would let a retained chunk change under the
			// caller when the next chunk is filled in.
			accum := make([]T, 0, size)
			for in := range p.seq {
				accum = append(accum, in)
				if len(accum) == size {
					if !yield(accum) {
						return
					}
					accum = make([]T, 0, size)
				}
			}
		},
	}
}

// Chunk groups incoming values into slices of the given size.
//
// Unlike Chunks, the final chunk is yielded even when it holds fewer than
// size elements.
//
// Chunk panics if size is not positive.
func Chunk[T any](p Pipe[T], size int) Pipe[[]T] {
	if size <= 0 {
		panic("morepipes.Chunk: size must be positive")
	}

	return Pipe[[]T]{
		seq: func(yield func([]T) bool) {
			accum := make([]T, 0, size)
			for in := range p.seq {
				accum = append(accum, in)
				if len(accum) == size {
					if !yield(accum) {
						return
					}
					accum = make([]T, 0, size)
				}
			}

			if len(accum) > 0 {
				yield(accum)
			}
		},
	}
}

// Alternate yields the values at even positions of the input: positions
// 0, 2, 4, and so on.
func Alternate[T any](p Pipe[T]) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			pos := 0
			for in := range p.seq {
				if pos%2 == 0 {
					if !yield(in) {
						return
					}
				}
				pos++
			}
		},
	}
}

// Unique yields each distinct value once, in first-seen order. Values
// already emitted are remembered for the lifetime of the traversal, so
// repeats are suppressed regardless of their position.
//
// Not to be confused with Squeeze, which only collapses adjacent repeats.
func Unique[T comparable](p Pipe[T]) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			seen := make(map[T]struct{})
			for in := range p.seq {
				if _, ok := seen[in]; ok {
					continue
				}
				seen[in] = struct{}{}
				if !yield(in) {
					return
				}
			}
		},
	}
}

// Squeeze collapses runs of consecutive equal values into a single value.
// Repeats separated by other values are preserved; only adjacency matters.
func Squeeze[T comparable](p Pipe[T]) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			var prev T
			havePrev := false
			for in := range p.seq {
				if havePrev && in == prev {
					continue
				}
				prev = in
				havePrev = true
				if !yield(in) {
					return
				}
			}
		},
	}
}

// Indexed pairs a value with its position in the stream.
type Indexed[T any] struct {
	Index int
	Value T
}

// Enumerate pairs each value with its position, counting from start.
func Enumerate[T any](p Pipe[T], start int) Pipe[Indexed[T]] {
	return Pipe[Indexed[T]]{
		seq: func(yield func(Indexed[T]) bool) {
			i := start
			for in := range p.seq {
				if !yield(Indexed[T]{Index: i, Value: in}) {
					return
				}
				i++
			}
		},
	}
}

// GroupBy groups consecutive input values according to a key function and
// returns a Pipe producing slices of those grouped values.
//
// GroupBy does not reorder values; it relies on the input Pipe already being
// ordered by the grouping key if consistent grouping is desired.
//
// In other words, values are grouped only when they appear consecutively
// with the same key. When the key returned by keyFunc changes, the current
// group is emitted and a new group is started.
//
// For example, given input values:
//
//	A, A, B, B, A
//
// GroupBy will emit:
//
//	[A, A], [B, B], [A]
func GroupBy[T any, K comparable](p Pipe[T], keyFunc func(T) K) Pipe[[]T] {
	return Pipe[[]T]{
		seq: func(yield func([]T) bool) {
			accum := make([]T, 0)
			var currentGroupKey K
			for in := range p.seq {
				k := keyFunc(in)
				if k != currentGroupKey && len(accum) > 0 {
					if !yield(accum) {
						return
					}
					accum = make([]T, 0)
				}
				currentGroupKey = k
				accum = append(accum, in)
			}

			// yield the last group
			if len(accum) > 0 {
				yield(accum)
			}
		},
	}
}

// GroupByAggregate groups input values by key and aggregates them using
// user-supplied initialization and update callbacks, producing one
// aggregated output value per group.
//
// GroupByAggregate is equivalent to performing a GroupBy followed by a Map,
// but does so without allocating a slice for each group. This makes it
// preferred for pipelines where groups may be large.
//
// initFunc is called when a new group starts. It receives the first value of
// the group and returns the initial accumulator for that group.
//
// updateFunc is called for each value in the current group. It receives a
// pointer to the accumulator and the current input value, and updates the
// accumulator in place.
//
// For example, to sum values in each group:
//
//	initFunc := func(v int) int {
//	    return 0 // start at 0
//	}
//
//	updateFunc := func(acc *int, v int) {
//	    *acc += v // add the value to the accumulator
//	}
//
// Like GroupBy, GroupByAggregate does not reorder input values. The input
// Pipe must already be ordered by key if consistent aggregation per key is
// desired.
func GroupByAggregate[In any, K comparable, Out any](
	p Pipe[In],
	keyFunc func(In) K,
	initFunc func(first In) Out,
	updateFunc func(acc *Out, item In)) Pipe[Out] {

	return Pipe[Out]{
		seq: func(yield func(Out) bool) {
			var acc *Out
			var currentGroupKey K
			for in := range p.seq {
				k := keyFunc(in)
				if k != currentGroupKey && acc != nil {
					if !yield(*acc) {
						return
					}
					acc = nil
				}

				if acc == nil {
					// new group
					newAcc := initFunc(in)
					acc = &newAcc
				}

				currentGroupKey = k
				updateFunc(acc, in)
			}

			if acc != nil {
				yield(*acc)
			}
		},
	}
}

// Tap calls fn on each value for its side effect and yields the value
// unchanged. Order is preserved; fn observes exactly the values that are
// demanded downstream.
//
// Tap panics if fn is nil.
func Tap[T any](p Pipe[T], fn func(T)) Pipe[T] {
	if fn == nil {
		panic("morepipes.Tap: fn must not be nil")
	}

	return Pipe[T]{
		seq: func(yield func(T) bool) {
			for in := range p.seq {
				fn(in)
				if !yield(in) {
					return
				}
			}
		},
	}
}

// Inspect prints each value as it passes through and yields it unchanged.
// Equivalent to Tap with a print function.
func Inspect[T any](p Pipe[T]) Pipe[T] {
	return Tap(p, func(in T) {
		fmt.Println(in)
	})
}

// AssertEach yields each value unchanged, but panics as soon as predicate
// returns false for any value. The check is fail-fast: the panic happens
// when the offending value flows through, before any later value is
// produced.
func AssertEach[T any](p Pipe[T], predicate Predicate[T]) Pipe[T] {
	return Tap(p, func(in T) {
		if !predicate(in) {
			panic(fmt.Sprintf("morepipes.AssertEach: predicate failed for %v", in))
		}
	})
}
