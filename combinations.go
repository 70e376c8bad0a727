package colex

import (
	"context"
	"iter"
)

// Combinations returns the k-element combinations of the values of source, in
// colexicographic order relative to the order values occur in source, e.g.
// Combinations over A B C D with k 2 yields AB AC BC AD BD CD.
//
// The returned sequence is lazy and single-use. Values are pulled from source
// strictly on demand, at most one new value per frontier advance, so an
// infinite source yields an infinite sequence (for k >= 1), and a finite
// source with fewer than k values yields nothing. A negative k panics; a k of
// 0 yields a single empty combination. Each yielded slice is freshly
// allocated and owned by the caller.
func Combinations[T any](source iter.Seq[T], k int) iter.Seq[[]T] {
	if source == nil {
		panic("colex.Combinations requires non-nil source")
	}
	if k < 0 {
		panic("colex.Combinations requires non-negative k")
	}
	return sequence(source, k, false)
}

// CombinationsSeq is a variant of [Combinations] for fallible or blocking
// sources, modelled by [Getter]. Combinations are yielded with a nil error.
// Exhaustion of source ([io.EOF] from Get) ends the sequence cleanly; any
// other error from source, including the error of a cancelled ctx, is yielded
// once as (nil, err), after which the sequence ends.
func CombinationsSeq[T any](ctx context.Context, source Getter[T], k int) iter.Seq2[[]T, error] {
	if ctx == nil {
		panic("colex.CombinationsSeq requires non-nil ctx")
	}
	if source == nil {
		panic("colex.CombinationsSeq requires non-nil source")
	}
	if k < 0 {
		panic("colex.CombinationsSeq requires non-negative k")
	}
	return sequence2(ctx, source, k, false)
}
