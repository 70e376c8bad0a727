package colex

import (
	"context"
	"errors"
	"io"
	"iter"
)

// sequence drives a generator from an iter.Seq source. The source has no
// error channel, so the only terminating condition is exhaustion.
func sequence[T any](source iter.Seq[T], k int, replacement bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		next, stop := iter.Pull(source)
		defer stop()
		g := newGenerator(func() (T, error) {
			v, ok := next()
			if !ok {
				return v, io.EOF
			}
			return v, nil
		}, k, replacement)
		for tuple, err := g.first(); err == nil; tuple, err = g.next() {
			if !yield(tuple) {
				return
			}
		}
	}
}

// sequence2 drives a generator from a Getter source, surfacing source and
// context errors to the consumer, in the manner documented on
// [CombinationsSeq].
func sequence2[T any](ctx context.Context, source Getter[T], k int, replacement bool) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		if err := ctx.Err(); err != nil {
			yield(nil, err)
			return
		}
		g := newGenerator(func() (T, error) { return source.Get(ctx) }, k, replacement)
		for tuple, err := g.first(); ; tuple, err = g.next() {
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(nil, err)
				}
				return
			}
			if !yield(tuple, nil) {
				return
			}
		}
	}
}
