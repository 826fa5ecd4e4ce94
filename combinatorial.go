package morepipes

import (
	"cmp"
	"slices"
)

// Chain concatenates pipes, yielding every value of each pipe in order
// before moving on to the next.
func Chain[T any](pipes ...Pipe[T]) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			for _, p := range pipes {
				for in := range p.seq {
					if !yield(in) {
						return
					}
				}
			}
		},
	}
}

// Cycle repeats the full input sequence indefinitely.
//
// The source must be finite: Cycle buffers every value during the first
// pass and replays the buffer on every pass after that. The result is
// infinite (for non-empty input) and must be bounded downstream.
func Cycle[T any](p Pipe[T]) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			var buf []T
			for in := range p.seq {
				buf = append(buf, in)
				if !yield(in) {
					return
				}
			}
			if len(buf) == 0 {
				return
			}
			for {
				for _, in := range buf {
					if !yield(in) {
						return
					}
				}
			}
		},
	}
}

// Combinations buffers the input and yields every r-element combination
// of its values, in the order induced by the input order. Values are
// treated as distinct by position, not by equality.
//
// Combinations panics if r is negative.
func Combinations[T any](p Pipe[T], r int) Pipe[[]T] {
	if r < 0 {
		panic("morepipes.Combinations: r must not be negative")
	}

	return Pipe[[]T]{
		seq: func(yield func([]T) bool) {
			pool := slices.Collect(p.seq)
			n := len(pool)
			if r > n {
				return
			}

			idx := make([]int, r)
			for i := range idx {
				idx[i] = i
			}
			for {
				comb := make([]T, r)
				for i, j := range idx {
					comb[i] = pool[j]
				}
				if !yield(comb) {
					return
				}

				// advance to the next index combination
				i := r - 1
				for ; i >= 0; i-- {
					if idx[i] != i+n-r {
						break
					}
				}
				if i < 0 {
					return
				}
				idx[i]++
				for j := i + 1; j < r; j++ {
					idx[j] = idx[j-1] + 1
				}
			}
		},
	}
}

// Permutations buffers the input and yields every full-length permutation
// of its values. For input of length n the output holds n! slices; the
// first permutation is the input order itself.
func Permutations[T any](p Pipe[T]) Pipe[[]T] {
	return Pipe[[]T]{
		seq: func(yield func([]T) bool) {
			pool := slices.Collect(p.seq)
			n := len(pool)

			indices := make([]int, n)
			for i := range indices {
				indices[i] = i
			}
			current := func() []T {
				out := make([]T, n)
				for i, j := range indices {
					out[i] = pool[j]
				}
				return out
			}

			if !yield(current()) {
				return
			}

			cycles := make([]int, n)
			for i := range cycles {
				cycles[i] = n - i
			}
			for {
				i := n - 1
				for ; i >= 0; i-- {
					cycles[i]--
					if cycles[i] == 0 {
						first := indices[i]
						copy(indices[i:], indices[i+1:])
						indices[n-1] = first
						cycles[i] = n - i
						continue
					}

					j := n - cycles[i]
					indices[i], indices[j] = indices[j], indices[i]
					if !yield(current()) {
						return
					}
					break
				}
				if i < 0 {
					return
				}
			}
		},
	}
}

// Transpose buffers a Pipe of rows and yields its columns. Columns are
// truncated to the shortest row, matching the usual zip semantics. An
// input with no rows yields nothing.
func Transpose[T any](p Pipe[[]T]) Pipe[[]T] {
	return Pipe[[]T]{
		seq: func(yield func([]T) bool) {
			rows := slices.Collect(p.seq)
			if len(rows) == 0 {
				return
			}

			width := len(rows[0])
			for _, row := range rows {
				width = min(width, len(row))
			}

			for c := range width {
				col := make([]T, len(rows))
				for i, row := range rows {
					col[i] = row[c]
				}
				if !yield(col) {
					return
				}
			}
		},
	}
}

// Traverse descends recursively from root and yields its leaf values in
// depth-first order.
//
// children reports the child elements of a value. A false second return
// marks the value as a leaf, which is yielded as-is; the decision is made
// before any descent is attempted, so values that merely resemble
// containers (text, for example) stay intact when children says so. A
// container whose child slice is empty yields nothing.
//
// Traverse panics if children is nil.
func Traverse[T any](root T, children func(T) ([]T, bool)) Pipe[T] {
	if children == nil {
		panic("morepipes.Traverse: children must not be nil")
	}

	return Pipe[T]{
		seq: func(yield func(T) bool) {
			var walk func(v T) bool
			walk = func(v T) bool {
				kids, ok := children(v)
				if !ok {
					return yield(v)
				}
				for _, kid := range kids {
					if !walk(kid) {
						return false
					}
				}
				return true
			}
			walk(root)
		},
	}
}

// Sort buffers the input and yields its values in ascending order.
func Sort[T cmp.Ordered](p Pipe[T]) Pipe[T] {
	return SortFunc(p, cmp.Compare)
}

// SortFunc buffers the input and yields its values sorted by compare.
// The sort is not stable.
func SortFunc[T any](p Pipe[T], compare func(a, b T) int) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			buf := slices.Collect(p.seq)
			slices.SortFunc(buf, compare)
			for _, in := range buf {
				if !yield(in) {
					return
				}
			}
		},
	}
}

// Reverse buffers the input and yields its values in reverse order.
func Reverse[T any](p Pipe[T]) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			buf := slices.Collect(p.seq)
			for i := len(buf) - 1; i >= 0; i-- {
				if !yield(buf[i]) {
					return
				}
			}
		},
	}
}

// Tail yields the last n values of the input, consuming it fully. It
// keeps at most n values buffered at any time. A non-positive n yields
// nothing.
func Tail[T any](p Pipe[T], n int) Pipe[T] {
	return Pipe[T]{
		seq: func(yield func(T) bool) {
			if n <= 0 {
				for range p.seq {
				}
				return
			}

			// ring buffer of the most recent n values
			buf := make([]T, 0, n)
			next := 0
			full := false
			for in := range p.seq {
				if !full {
					buf = append(buf, in)
					full = len(buf) == n
					continue
				}
				buf[next] = in
				next = (next + 1) % n
			}

			if !full {
				next = 0
			}
			for i := range len(buf) {
				if !yield(buf[(next+i)%len(buf)]) {
					return
				}
			}
		},
	}
}
