// Package colex generates k-element combinations, with and without
// replacement, in colexicographic order, lazily, over inputs that may be
// infinite.
//
// Colexicographic order sorts combinations by their largest element first,
// which means every combination drawn from the first n items of the input is
// produced before any combination involving item n+1. That property is what
// makes unbounded inputs workable: the generator pulls an item from the
// source only when it has exhausted every combination of the items it has
// already seen. Lexicographic order (the order of the standard library's
// slice-based helpers and most combination generators) has no such property,
// and would never get past combinations starting with the first element of an
// infinite input.
package colex

import "context"

type (
	// Getter models a pull-based source of values, for use with
	// [CombinationsSeq] and [CombinationsWithReplacementSeq]. Get returns the
	// next value from the source, [io.EOF] once the source is exhausted, or
	// any other error to indicate the source itself failed. After a non-nil
	// error, Get will not be called again.
	Getter[T any] interface {
		Get(ctx context.Context) (T, error)
	}

	// GetterFunc implements Getter using a function.
	GetterFunc[T any] func(ctx context.Context) (T, error)
)

// Get implements the [Getter] interface.
func (f GetterFunc[T]) Get(ctx context.Context) (T, error) { return f(ctx) }
