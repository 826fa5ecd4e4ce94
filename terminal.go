package morepipes

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrEmptyReduce is returned by Reduce when the input produced no values
// and there is nothing to seed the accumulator with.
var ErrEmptyReduce = errors.New("morepipes: reduce of empty pipe")

// Summable constrains Sum to the built-in numeric types.
type Summable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Collect fully consumes the pipe and returns its values as a slice.
// An empty pipe returns a nil slice.
func Collect[T any](p Pipe[T]) []T {
	return slices.Collect(p.seq)
}

// CollectSet fully consumes the pipe and returns the set of its distinct
// values. Order is not preserved.
func CollectSet[T comparable](p Pipe[T]) map[T]struct{} {
	set := make(map[T]struct{})
	for in := range p.seq {
		set[in] = struct{}{}
	}
	return set
}

// CollectString fully consumes a pipe of runes and joins them into a
// string.
func CollectString(p Pipe[rune]) string {
	var sb strings.Builder
	for r := range p.seq {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Drain fully consumes the pipe, discarding every value. It exists to
// force evaluation of pipelines run purely for their side effects.
func Drain[T any](p Pipe[T]) {
	for range p.seq {
	}
}

// Len fully consumes the pipe and returns the number of values it
// produced, using constant additional memory.
func Len[T any](p Pipe[T]) int {
	count := 0
	for range p.seq {
		count++
	}
	return count
}

// Sum fully consumes the pipe and returns the sum of its values. An
// empty pipe sums to the zero value.
func Sum[T Summable](p Pipe[T]) T {
	var total T
	for in := range p.seq {
		total += in
	}
	return total
}

// All reports whether predicate holds for every value. It short-circuits
// on the first value for which the predicate fails, leaving the rest of
// the pipe unconsumed. An empty pipe satisfies All.
func All[T any](p Pipe[T], predicate Predicate[T]) bool {
	for in := range p.seq {
		if !predicate(in) {
			return false
		}
	}
	return true
}

// Any reports whether predicate holds for at least one value. It
// short-circuits on the first match. An empty pipe satisfies no
// predicate.
func Any[T any](p Pipe[T], predicate Predicate[T]) bool {
	for in := range p.seq {
		if predicate(in) {
			return true
		}
	}
	return false
}

// None reports whether predicate holds for no value at all. It
// short-circuits on the first match. An empty pipe vacuously satisfies
// None.
func None[T any](p Pipe[T], predicate Predicate[T]) bool {
	for in := range p.seq {
		if predicate(in) {
			return false
		}
	}
	return true
}

// First returns the first value of the pipe without demanding any
// further values. The second return is false when the pipe is empty.
func First[T any](p Pipe[T]) (T, bool) {
	for in := range p.seq {
		return in, true
	}
	var zero T
	return zero, false
}

// Last fully consumes the pipe and returns its final value. The second
// return is false when the pipe is empty.
func Last[T any](p Pipe[T]) (T, bool) {
	var last T
	found := false
	for in := range p.seq {
		last = in
		found = true
	}
	return last, found
}

// Find returns the first value for which predicate holds, demanding no
// values past the match. The second return is false when no value
// matches.
func Find[T any](p Pipe[T], predicate Predicate[T]) (T, bool) {
	return First(Filter(p, predicate))
}

// Reduce fully consumes the pipe and folds it left-to-right with fn,
// seeding the accumulator with the first value and folding from the
// second. It returns ErrEmptyReduce when the pipe is empty; use Fold
// when a seed is available.
func Reduce[T any](p Pipe[T], fn func(acc, item T) T) (T, error) {
	var acc T
	seeded := false
	for in := range p.seq {
		if !seeded {
			acc = in
			seeded = true
			continue
		}
		acc = fn(acc, in)
	}
	if !seeded {
		var zero T
		return zero, ErrEmptyReduce
	}
	return acc, nil
}

// Fold fully consumes the pipe and folds it left-to-right with fn,
// starting from initial. An empty pipe returns initial unchanged.
func Fold[In, Out any](p Pipe[In], initial Out, fn func(acc Out, item In) Out) Out {
	acc := initial
	for in := range p.seq {
		acc = fn(acc, in)
	}
	return acc
}

// AssertEq panics unless got equals want, and returns got so the check
// can sit in the middle of an expression.
func AssertEq[T comparable](got, want T) T {
	if got != want {
		panic(fmt.Sprintf("morepipes.AssertEq: got %v, want %v", got, want))
	}
	return got
}
