package lctree

import (
	"github.com/azizkayumov/lctree/internal/forest"
	"github.com/azizkayumov/lctree/iter"
)

// Reroot makes v the root of its represented tree. It never fails except
// on an invalid handle.
func (t *Forest[W, A]) Reroot(v Handle) error {
	if !t.valid(v) {
		return invalidHandleErr(v)
	}
	t.inner.Reroot(v)
	return nil
}

// Connected reports whether u and v lie in the same represented tree.
func (t *Forest[W, A]) Connected(u, v Handle) (bool, error) {
	if !t.valid(u) {
		return false, invalidHandleErr(u)
	}
	if !t.valid(v) {
		return false, invalidHandleErr(v)
	}
	if u == v {
		return true, nil
	}
	t.inner.Access(u)
	t.inner.Access(v)
	return t.topOf(u) == v, nil
}

// Link adds an edge between u and v. It is rejected with
// ErrAlreadyConnected if u and v already lie in the same represented tree.
func (t *Forest[W, A]) Link(u, v Handle) error {
	if !t.valid(u) {
		return invalidHandleErr(u)
	}
	if !t.valid(v) {
		return invalidHandleErr(v)
	}
	if u == v {
		return ErrAlreadyConnected
	}

	t.inner.Reroot(u)
	t.inner.Access(v)
	if t.inner.Parent(u) != forest.Nil {
		// u was absorbed into v's splay tree during the access above: they
		// were already connected, and the represented forest is untouched.
		return ErrAlreadyConnected
	}

	t.inner.AttachRightChild(v, u)
	return nil
}

// Cut removes the edge between u and v. It is rejected with
// ErrNotAdjacent if u and v are not joined by an edge.
func (t *Forest[W, A]) Cut(u, v Handle) error {
	if !t.valid(u) {
		return invalidHandleErr(u)
	}
	if !t.valid(v) {
		return invalidHandleErr(v)
	}
	if u == v {
		return ErrNotAdjacent
	}

	t.inner.Reroot(u)
	t.inner.Access(v)
	if t.inner.Left(v) != u || t.inner.Right(u) != forest.Nil {
		return ErrNotAdjacent
	}

	t.inner.DetachLeftChild(v, u)
	return nil
}

// Path returns the fold over the u-v path inclusive. It is rejected with
// ErrNotConnected if u and v lie in different represented trees.
func (t *Forest[W, A]) Path(u, v Handle) (A, error) {
	var zero A
	if !t.valid(u) {
		return zero, invalidHandleErr(u)
	}
	if !t.valid(v) {
		return zero, invalidHandleErr(v)
	}
	if u == v {
		t.inner.Reroot(u)
		t.inner.Access(u)
		return t.inner.Agg(u), nil
	}

	t.inner.Reroot(u)
	t.inner.Access(v)
	if t.inner.Parent(u) == forest.Nil {
		// u was not drawn into v's splay tree: different represented trees.
		return zero, ErrNotConnected
	}
	return t.inner.Agg(v), nil
}

// PathNodes returns an iterator over the handles on the u-v path
// inclusive, shallowest-to-v order, without materializing a fold. It is
// rejected with ErrNotConnected if u and v lie in different represented
// trees.
func (t *Forest[W, A]) PathNodes(u, v Handle) (iter.Iter[Handle], error) {
	if !t.valid(u) {
		return nil, invalidHandleErr(u)
	}
	if !t.valid(v) {
		return nil, invalidHandleErr(v)
	}
	if u == v {
		return iter.Slice([]Handle{u}), nil
	}

	t.inner.Reroot(u)
	t.inner.Access(v)
	if t.inner.Parent(u) == forest.Nil {
		return nil, ErrNotConnected
	}
	return iter.Slice(t.inner.InOrder(v)), nil
}

// topOf walks h upward through the combined splay-parent/path-parent
// chain and returns the root of the topmost auxiliary splay tree of h's
// represented tree (right after an Access(v) in that tree, this is v),
// as it stands right now (no
// restructuring is performed; the caller is responsible for having
// already called Access where the algorithm requires it).
func (t *Forest[W, A]) topOf(h Handle) Handle {
	cur := h
	for {
		p := t.inner.Parent(cur)
		if p == forest.Nil {
			return cur
		}
		cur = p
	}
}
