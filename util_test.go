package colex

import (
	"context"
	"iter"
	"slices"
)

type (
	// stubGetter is a test util implementing Getter over a fixed set of
	// values, returning err (e.g. io.EOF) once they run out.
	stubGetter[T any] struct {
		values []T
		err    error
		calls  int
	}

	// countingSource is a test util wrapping an infinite source of naturals,
	// counting how many items have actually been pulled from it.
	countingSource struct {
		pulls int
	}
)

var (
	// compile time assertions

	_ Getter[int] = (*stubGetter[int])(nil)
)

func (s *stubGetter[T]) Get(ctx context.Context) (v T, _ error) {
	s.calls++
	if err := ctx.Err(); err != nil {
		return v, err
	}
	if len(s.values) == 0 {
		return v, s.err
	}
	v, s.values = s.values[0], s.values[1:]
	return v, nil
}

func (c *countingSource) seq() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			c.pulls++
			if !yield(i) {
				return
			}
		}
	}
}

// naturals is an infinite source 0, 1, 2, ...
func naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// firstN pulls at most n tuples from a sequence.
func firstN[T any](seq iter.Seq[[]T], n int) (out [][]T) {
	for tuple := range seq {
		out = append(out, tuple)
		if len(out) == n {
			break
		}
	}
	return
}

// indexSource is a finite source 0, 1, ..., n-1, so that produced tuples are
// also their own index tuples.
func indexSource(n int) iter.Seq[int] {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return slices.Values(indices)
}

// colexLess reports whether a precedes b in colexicographic order, comparing
// the highest positions first.
func colexLess(a, b []int) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// expectPanic fails the test unless fn panics with the given value.
func expectPanic(t interface {
	Helper()
	Errorf(format string, values ...any)
}, want any, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != want {
			t.Errorf("expected panic %v, got %v", want, r)
		}
	}()
	fn()
}
