// Package lctree implements a link-cut tree: a dynamic forest of rooted
// trees supporting online edge insertion (Link), edge removal (Cut),
// connectivity queries (Connected), and path-aggregate queries (Path), all
// in amortized O(log n) time, backed by Sleator and Tarjan's splay-tree
// represented-tree construction.
//
// Internally the forest is a collection of auxiliary splay trees (package
// internal/forest) whose in-order traversal encodes preferred paths of the
// represented trees, linked by path-parent pointers. Callers never see
// that machinery: the only public surface is Forest's method set.
package lctree

import (
	"github.com/azizkayumov/lctree/fold"
	"github.com/azizkayumov/lctree/internal/forest"
)

// Handle identifies a node. Handles are dense, stable integers assigned by
// MakeTree starting at 0, and remain valid for the lifetime of the Forest
// that created them.
type Handle = forest.Handle

// Forest is a dynamic forest of rooted trees over nodes carrying weights
// of type W, aggregated along paths by a user-chosen fold.Fold[W, A].
//
// A Forest is not safe for concurrent use; every method call must
// complete before the next begins.
type Forest[W, A any] struct {
	inner *forest.Forest[W, A]
}

// New returns an empty Forest using f to aggregate path queries.
//
// Use fold.MaxByWeight, fold.SumOfWeights, fold.XorOfWeights, or any
// caller-supplied fold.Fold[W, A] implementation.
func New[W, A any](f fold.Fold[W, A], opts ...Option) *Forest[W, A] {
	cfg := options{initialCapacity: defaultInitialCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Forest[W, A]{
		inner: forest.New[W, A](cfg.initialCapacity, f),
	}
}

// MakeTree adds a fresh, isolated one-node tree carrying weight and
// returns its handle. MakeTree never fails.
func (t *Forest[W, A]) MakeTree(weight W) Handle {
	return t.inner.MakeNode(weight)
}

func (t *Forest[W, A]) valid(h Handle) bool {
	return t.inner.Valid(h)
}
