package morepipes_test

import (
	"iter"
	"testing"

	"github.com/KasperOmsK/morepipes"

	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	pipe := morepipes.From(seqOf(1, 2, 3))

	var out []int
	for v := range pipe.Values() {
		out = append(out, v)
	}

	require.Equal(t, []int{1, 2, 3}, out)
}

func TestOf(t *testing.T) {
	pipe := morepipes.Of("a", "b", "c")

	require.Equal(t, []string{"a", "b", "c"}, morepipes.Collect(pipe))
}

func TestFromString_YieldsRunes(t *testing.T) {
	pipe := morepipes.FromString("héllo")

	require.Equal(t, []rune{'h', 'é', 'l', 'l', 'o'}, morepipes.Collect(pipe))
}

func TestFromChan(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	pipe := morepipes.FromChan(ch)

	require.Equal(t, []int{1, 2, 3}, morepipes.Collect(pipe))
}

func TestEmpty(t *testing.T) {
	pipe := morepipes.Empty[int]()

	require.Empty(t, morepipes.Collect(pipe))
}

func TestRepeat_BoundedByTake(t *testing.T) {
	pipe := morepipes.Take(morepipes.Repeat("x"), 4)

	require.Equal(t, []string{"x", "x", "x", "x"}, morepipes.Collect(pipe))
}

func TestRepeatN(t *testing.T) {
	pipe := morepipes.RepeatN(7, 3)

	require.Equal(t, []int{7, 7, 7}, morepipes.Collect(pipe))
}

func TestRepeatN_NonPositive(t *testing.T) {
	require.Empty(t, morepipes.Collect(morepipes.RepeatN(7, 0)))
	require.Empty(t, morepipes.Collect(morepipes.RepeatN(7, -1)))
}

func TestCompose_AppliesInOrder(t *testing.T) {
	evens := func(p morepipes.Pipe[int]) morepipes.Pipe[int] {
		return morepipes.Filter(p, isEven)
	}
	firstTwo := func(p morepipes.Pipe[int]) morepipes.Pipe[int] {
		return morepipes.Take(p, 2)
	}

	stage := morepipes.Compose(evens, firstTwo)

	got := morepipes.Collect(stage(morepipes.Of(1, 2, 3, 4, 5, 6)))
	require.Equal(t, []int{2, 4}, got)
}

func TestCompose_DoesNotMutateOperands(t *testing.T) {
	double := func(p morepipes.Pipe[int]) morepipes.Pipe[int] {
		return morepipes.Map(p, func(v int) int { return v * 2 })
	}
	inc := func(p morepipes.Pipe[int]) morepipes.Pipe[int] {
		return morepipes.Map(p, func(v int) int { return v + 1 })
	}

	composed := morepipes.Compose(double, inc)

	// operands remain usable on their own after composition
	require.Equal(t, []int{2, 4}, morepipes.Collect(double(morepipes.Of(1, 2))))
	require.Equal(t, []int{2, 3}, morepipes.Collect(inc(morepipes.Of(1, 2))))
	require.Equal(t, []int{3, 5}, morepipes.Collect(composed(morepipes.Of(1, 2))))
}

func TestPipe_SingleConsumptionPerTraversal(t *testing.T) {
	// A Pipe built on a one-shot source is drained by the first traversal.
	pulls := 0
	src := morepipes.From(func(yield func(int) bool) {
		for i := range 3 {
			pulls++
			if !yield(i) {
				return
			}
		}
	})

	require.Equal(t, []int{0, 1, 2}, morepipes.Collect(src))
	require.Equal(t, 3, pulls)
}

func seqOf[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

func isEven(v int) bool {
	return v%2 == 0
}

func isMul3(v int) bool {
	return v%3 == 0
}

// rangePipe returns a Pipe producing 0, 1, ..., n-1.
func rangePipe(n int) morepipes.Pipe[int] {
	return morepipes.From(func(yield func(int) bool) {
		for i := range n {
			if !yield(i) {
				return
			}
		}
	})
}
