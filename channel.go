package colex

import (
	"context"
	"io"
)

// ChanGetter adapts a receive-only channel into a [Getter], making a channel
// usable as the source of [CombinationsSeq] and
// [CombinationsWithReplacementSeq]. Get receives the next value from the
// channel, blocking until a value is available, the channel is closed
// (reported as [io.EOF]), or ctx is done (reported as ctx.Err()). A nil
// channel panics, since Get could then never return.
func ChanGetter[T any](c <-chan T) Getter[T] {
	if c == nil {
		panic("colex.ChanGetter requires non-nil channel")
	}
	return chanGetter[T](c)
}

type chanGetter[T any] <-chan T

func (x chanGetter[T]) Get(ctx context.Context) (v T, _ error) {
	if err := ctx.Err(); err != nil {
		return v, err
	}
	select {
	case v, ok := <-x:
		if !ok {
			return v, io.EOF
		}
		return v, nil
	case <-ctx.Done():
		return v, ctx.Err()
	}
}
