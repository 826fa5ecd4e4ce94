package morepipes

import (
	"iter"

	"github.com/KasperOmsK/morepipes/internal/iterx"
)

// Pipe represents a lazily-evaluated stream of values of type T.
//
// A Pipe produces values only when its underlying sequence is iterated,
// and may be consumed at most once per traversal. Re-traversing requires
// rebuilding the pipeline from a fresh source; the library never buffers
// unless a transformation documents that it does (e.g. Cycle, Sort).
//
// Stopping consumption halts the pipeline: no stage produces values
// that are not demanded downstream.
type Pipe[T any] struct {
	seq iter.Seq[T]
}

// From wraps an iter.Seq into a Pipe.
func From[T any](seq iter.Seq[T]) Pipe[T] {
	return Pipe[T]{seq: seq}
}

// Of returns a Pipe producing the given values in order.
func Of[T any](values ...T) Pipe[T] {
	return Pipe[T]{seq: iterx.FromSlice(values)}
}

// FromSlice returns a Pipe producing the elements of in, in order.
//
// The slice is not copied; it must not be mutated while the Pipe is
// being consumed.
func FromSlice[T any](in []T) Pipe[T] {
	return Pipe[T]{seq: iterx.FromSlice(in)}
}

// FromString returns a Pipe producing the runes of s in order.
func FromString(s string) Pipe[rune] {
	return Pipe[rune]{seq: iterx.FromString(s)}
}

// FromChan returns a Pipe producing values received from ch until it is
// closed.
func FromChan[T any](ch chan T) Pipe[T] {
	return Pipe[T]{seq: iterx.FromChan(ch)}
}

// Empty returns a Pipe that produces no values.
func Empty[T any]() Pipe[T] {
	return Pipe[T]{seq: iterx.Empty[T]()}
}

// Values returns the underlying iter.Seq for consumption with range.
func (p Pipe[T]) Values() iter.Seq[T] {
	return p.seq
}

// Stage is a composed-but-unapplied pipeline step: a function from one
// Pipe to another. A Stage is applied by plain function call and composed
// with Compose. Because a Stage is an immutable function value, composing
// two stages yields a new Stage without affecting either operand.
type Stage[In, Out any] func(Pipe[In]) Pipe[Out]

// Compose returns a Stage that applies f and then g.
func Compose[A, B, C any](f Stage[A, B], g Stage[B, C]) Stage[A, C] {
	return func(p Pipe[A]) Pipe[C] {
		return g(f(p))
	}
}

// Repeat returns an infinite Pipe producing v forever.
//
// The result must be bounded downstream, e.g. by Take or TakeWhile,
// before any terminal operation is applied.
func Repeat[T any](v T) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			for yield(v) {
			}
		},
	}
}

// RepeatN returns a Pipe producing v exactly n times. A non-positive n
// produces an empty Pipe.
func RepeatN[T any](v T, n int) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			for range n {
				if !yield(v) {
					return
				}
			}
		},
	}
}
