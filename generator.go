package colex

import "io"

// generator is the state machine shared by every entry point in this package.
// It owns an append-only buffer of every item pulled from the source so far,
// plus the index vector of the current combination, and advances in
// colexicographic order: the lowest position that can move without colliding
// with its right neighbour is incremented, every position below it resets to
// the smallest valid prefix, and the last position (the frontier) only ever
// grows, pulling exactly one new item from the source each time it does.
//
// The pull func returns io.EOF when the source is exhausted; any error from
// pull (io.EOF included) terminates the generation.
type generator[T any] struct {
	pull        func() (T, error)
	k           int
	replacement bool
	buffer      []T   // every item pulled so far, append-only
	indices     []int // current combination, as indices into buffer
}

func newGenerator[T any](pull func() (T, error), k int, replacement bool) *generator[T] {
	return &generator[T]{pull: pull, k: k, replacement: replacement}
}

// first produces the colexicographically smallest combination, pulling the
// minimum number of items required to form one, or io.EOF if the source
// cannot supply that many. A k of 0 yields the single empty combination,
// without touching the source at all.
func (g *generator[T]) first() ([]T, error) {
	if g.k == 0 {
		return g.tuple(), nil
	}
	need := g.k
	if g.replacement {
		need = 1
	}
	for len(g.buffer) < need {
		v, err := g.pull()
		if err != nil {
			return nil, err
		}
		g.buffer = append(g.buffer, v)
	}
	g.indices = make([]int, g.k)
	if !g.replacement {
		for i := range g.indices {
			g.indices[i] = i
		}
	}
	return g.tuple(), nil
}

// next advances to the successor of the current combination, or returns
// io.EOF if doing so would require an item the source cannot supply.
func (g *generator[T]) next() ([]T, error) {
	if g.k == 0 {
		return nil, io.EOF
	}

	// find the lowest position that can advance without colliding with the
	// position above it (for the last position there is nothing above, it
	// advances into fresh input instead)
	p := 0
	if g.replacement {
		for p < g.k-1 && g.indices[p] == g.indices[p+1] {
			p++
		}
	} else {
		for p < g.k-1 && g.indices[p]+1 == g.indices[p+1] {
			p++
		}
	}

	if g.indices[p]+1 == len(g.buffer) {
		// only ever the case for the frontier position, and the frontier
		// advances exactly once per item pulled
		v, err := g.pull()
		if err != nil {
			return nil, err
		}
		g.buffer = append(g.buffer, v)
	}

	g.indices[p]++
	for i := 0; i < p; i++ {
		if g.replacement {
			g.indices[i] = 0
		} else {
			g.indices[i] = i
		}
	}

	return g.tuple(), nil
}

// tuple materializes the current combination as a fresh slice, so callers
// may retain yielded values.
func (g *generator[T]) tuple() []T {
	out := make([]T, g.k)
	for i, j := range g.indices {
		out[i] = g.buffer[j]
	}
	return out
}
