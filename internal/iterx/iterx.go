package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

func FromChan[T any](in chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range in {
			if !yield(i) {
				break
			}
		}
	}
}

func FromString(in string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range in {
			if !yield(r) {
				break
			}
		}
	}
}

func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}
