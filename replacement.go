package colex

import (
	"context"
	"iter"
)

// CombinationsWithReplacement returns the k-element combinations with
// replacement of the values of source (values may repeat within a
// combination), in colexicographic order relative to the order values occur
// in source, e.g. over A B C with k 2 it yields AA AB BB AC BC CC.
//
// Laziness, ordering, ownership of yielded slices, and the handling of
// k <= 0 are as for [Combinations]. A non-empty source always supplies the
// first combination (the smallest value repeated k times), so only an empty
// source yields nothing.
func CombinationsWithReplacement[T any](source iter.Seq[T], k int) iter.Seq[[]T] {
	if source == nil {
		panic("colex.CombinationsWithReplacement requires non-nil source")
	}
	if k < 0 {
		panic("colex.CombinationsWithReplacement requires non-negative k")
	}
	return sequence(source, k, true)
}

// CombinationsWithReplacementSeq is the [Getter] variant of
// [CombinationsWithReplacement], with the error contract of
// [CombinationsSeq].
func CombinationsWithReplacementSeq[T any](ctx context.Context, source Getter[T], k int) iter.Seq2[[]T, error] {
	if ctx == nil {
		panic("colex.CombinationsWithReplacementSeq requires non-nil ctx")
	}
	if source == nil {
		panic("colex.CombinationsWithReplacementSeq requires non-nil source")
	}
	if k < 0 {
		panic("colex.CombinationsWithReplacementSeq requires non-negative k")
	}
	return sequence2(ctx, source, k, true)
}
