/*
Package morepipes provides functional-style and composable transformations
for iter.Seq, enabling streaming pipelines without intermediate buffering.

This package is built around the concept of Pipes, a Pipe[T] represents
a lazily-evaluated stream of values of type T.

All transformations (Map, Filter, Take, Chunks, and many more) are provided
as package-level functions. Each transformation returns a new Pipe, allowing
pipelines to be composed through simple chaining. Values are only produced
when the resulting iter.Seq is iterated, making all pipelines demand-driven:
stopping consumption halts every upstream stage, and no stage pulls more
values than its consumer asks for.

Evaluation is strictly single-threaded and pull-based. The library spawns
no goroutines, holds no shared state between calls, and needs no teardown;
cancelling a pipeline is simply not asking it for the next value.

Transformations fall into three groups:

  - Generators (Repeat, RepeatN, Cycle) produce values from nothing, or
    repeat a source; infinite ones must be bounded downstream with Take
    or TakeWhile.
  - Transforms (Map, Filter, Take, Drop, Chunks, Unique, Squeeze,
    Interpose, Traverse, ...) turn one Pipe into another lazily.
  - Terminals (Collect, Len, Sum, First, Find, Reduce, ...) consume a
    Pipe and produce a concrete value. Partial terminals (First, Last,
    Find) report absence with an explicit second return rather than an
    error or sentinel element.

Multi-step transformations can be captured before any input exists using
Stage and Compose. A Stage is an unapplied pipeline step; composing two
stages yields a third without modifying either:

	evens := func(p morepipes.Pipe[int]) morepipes.Pipe[int] {
		return morepipes.Filter(p, func(v int) bool { return v%2 == 0 })
	}
	firstThree := func(p morepipes.Pipe[int]) morepipes.Pipe[int] {
		return morepipes.Take(p, 3)
	}
	stage := morepipes.Compose(evens, firstThree)

	vals := morepipes.Collect(stage(morepipes.Of(1, 2, 3, 4, 5, 6, 7, 8)))
	// vals == [2, 4, 6]

A Pipe may be consumed at most once per traversal. Re-running a pipeline
requires rebuilding it from a fresh source; the library never rewinds on
the caller's behalf. The only operations that buffer are the ones that
must (Cycle, Sort, Reverse, Tail, Combinations, Permutations, Transpose)
and each documents that it does.

For more details on each transformation, refer to the function-level
documentation.
*/
package morepipes
