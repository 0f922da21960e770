// Package forest implements the auxiliary splay trees that back a
// link-cut forest: splaying, lazy subtree reversal, and the access
// operation that re-links preferred paths. It knows nothing about link,
// cut, or connectivity semantics — those live one layer up, in lctree,
// which drives this package through Access and Reroot plus a few
// structural reads and attach/detach helpers.
package forest

import (
	"github.com/azizkayumov/lctree/fold"
	"github.com/azizkayumov/lctree/internal/arena"
	"github.com/azizkayumov/lctree/internal/stack"
)

// Handle identifies a node; re-exported from arena so callers of this
// package never need to import arena directly.
type Handle = arena.Handle

// Nil is the sentinel for an absent handle.
const Nil = arena.Nil

// Forest owns the node arena and the fold plugged in for aggregation.
type Forest[W, A any] struct {
	arena *arena.Arena[W, A]
	fold  fold.Fold[W, A]
}

// New returns an empty forest with room for initialCapacity nodes.
func New[W, A any](initialCapacity int, f fold.Fold[W, A]) *Forest[W, A] {
	return &Forest[W, A]{
		arena: arena.New[W, A](initialCapacity),
		fold:  f,
	}
}

// MakeNode allocates a fresh one-node auxiliary splay tree carrying weight.
func (f *Forest[W, A]) MakeNode(weight W) Handle {
	return f.arena.Alloc(weight, func(w W, h Handle) A {
		return f.fold.Seed(w, int(h))
	})
}

// Valid reports whether h is a handle this forest allocated.
func (f *Forest[W, A]) Valid(h Handle) bool {
	return f.arena.Valid(h)
}

// Weight returns the weight stored at h.
func (f *Forest[W, A]) Weight(h Handle) W {
	return f.arena.Weight(h)
}

// Agg returns the cached fold aggregate stored at h. Only meaningful
// immediately after an Access(h): that postcondition is what makes the
// value the fold over a whole root-to-h path rather than an arbitrary
// auxiliary subtree.
func (f *Forest[W, A]) Agg(h Handle) A {
	return f.arena.Agg(h)
}

// Left, Right and IsSplayRoot expose structural reads the represented-tree
// layer needs (e.g. to check adjacency in Cut). Callers must have already
// arranged for h's flip state to be resolved (Access/Splay do this).
func (f *Forest[W, A]) Left(h Handle) Handle      { return f.arena.Left(h) }
func (f *Forest[W, A]) Right(h Handle) Handle     { return f.arena.Right(h) }
func (f *Forest[W, A]) Parent(h Handle) Handle    { return f.arena.Parent(h) }
func (f *Forest[W, A]) IsSplayRoot(h Handle) bool { return f.arena.IsSplayRoot(h) }
func (f *Forest[W, A]) Flipped(h Handle) bool     { return f.arena.Flipped(h) }

// Len returns the number of nodes allocated so far, for debug/fuzz tooling
// that needs to walk every handle in the arena.
func (f *Forest[W, A]) Len() int { return f.arena.Len() }

// Fold exposes the plugged-in fold, so debug tooling can recompute an
// aggregate independently of the cached one for cross-checking.
func (f *Forest[W, A]) Fold() fold.Fold[W, A] { return f.fold }

// pushDown resolves a pending reversal at h: flip is cleared, left/right
// are swapped, and the flip is deferred onto whichever children now exist.
func (f *Forest[W, A]) pushDown(h Handle) {
	if !f.arena.Flipped(h) {
		return
	}
	l, r := f.arena.Left(h), f.arena.Right(h)
	f.arena.SetLeft(h, r)
	f.arena.SetRight(h, l)
	if l != Nil {
		f.arena.ToggleFlipped(l)
	}
	if r != Nil {
		f.arena.ToggleFlipped(r)
	}
	f.arena.SetFlipped(h, false)
}

// pushDownToRoot resolves pending reversals from h's auxiliary-splay root
// down to h itself, top to bottom, so every rotation below can trust
// left/right to mean what they say.
func (f *Forest[W, A]) pushDownToRoot(h Handle) {
	chain := stack.New[Handle]()
	cur := h
	for {
		chain.Push(cur)
		if f.arena.IsSplayRoot(cur) {
			break
		}
		cur = f.arena.Parent(cur)
	}
	// chain holds h..root bottom-to-top; pop gives root..h top-to-bottom.
	order := make([]Handle, 0, chain.Len())
	for {
		v, ok := chain.Pop()
		if !ok {
			break
		}
		order = append(order, v)
	}
	for _, v := range order {
		f.pushDown(v)
	}
}

// recompute re-derives h's cached aggregate from its (resolved) children
// and its own seed. Must run after any rotation that changes h's children.
func (f *Forest[W, A]) recompute(h Handle) {
	self := f.fold.Seed(f.arena.Weight(h), int(h))
	var left, right A
	l, r := f.arena.Left(h), f.arena.Right(h)
	hasLeft, hasRight := l != Nil, r != Nil
	if hasLeft {
		left = f.arena.Agg(l)
	}
	if hasRight {
		right = f.arena.Agg(r)
	}
	f.arena.SetAgg(h, f.fold.Combine(left, self, right, hasLeft, hasRight))
}

// rotate performs a single rotation bringing v up one level. The caller
// must have already pushed down flip state on v, its parent, and its
// grandparent (pushDownToRoot guarantees this for the whole chain being
// splayed). If v's parent was itself an auxiliary-splay root, v inherits
// its path-parent slot rather than becoming a real child of the
// grandparent — this is what lets rotate serve both ordinary splay-tree
// rotations and the relinking access() performs.
func (f *Forest[W, A]) rotate(v Handle) {
	p := f.arena.Parent(v)
	g := f.arena.Parent(p)
	side := f.arena.SideOf(p, v)
	gSide := -1
	if g != Nil {
		gSide = f.arena.SideOf(g, p)
	}

	inner := f.arena.Child(v, 1-side)
	f.arena.SetChild(p, side, inner)
	if inner != Nil {
		f.arena.SetParent(inner, p)
	}

	f.arena.SetChild(v, 1-side, p)
	f.arena.SetParent(p, v)

	f.arena.SetParent(v, g)
	if gSide != -1 {
		f.arena.SetChild(g, gSide, v)
	}

	f.recompute(p)
	f.recompute(v)
}

// Splay moves v to the root of its auxiliary splay tree via bottom-up
// zig/zig-zig/zig-zag rotations, the textbook Sleator-Tarjan tie-break:
// a same-direction grandchild rotates the parent first, then itself; an
// opposite-direction grandchild rotates itself twice.
func (f *Forest[W, A]) Splay(v Handle) {
	f.pushDownToRoot(v)
	for !f.arena.IsSplayRoot(v) {
		p := f.arena.Parent(v)
		if f.arena.IsSplayRoot(p) {
			f.rotate(v)
			continue
		}
		g := f.arena.Parent(p)
		if f.arena.SideOf(g, p) == f.arena.SideOf(p, v) {
			f.rotate(p)
			f.rotate(v)
		} else {
			f.rotate(v)
			f.rotate(v)
		}
	}
}

// Reverse toggles the lazy reversal flag at v. v must already be the root
// of its auxiliary splay tree (callers only ever reverse right after an
// Access).
func (f *Forest[W, A]) Reverse(v Handle) {
	f.arena.ToggleFlipped(v)
}

// Access restructures the splay forest so the preferred path from v's
// represented-tree root down to v becomes exactly one auxiliary splay
// tree, rooted at v with no right child. After Access, Agg(v) is the fold
// over that whole root-to-v path.
func (f *Forest[W, A]) Access(v Handle) {
	f.Splay(v)
	f.arena.SetRight(v, Nil)
	f.recompute(v)

	w := v
	for {
		p := f.arena.Parent(w)
		if p == Nil {
			break
		}
		// w is a splay root with a path-parent p (detected by Splay
		// having just made w's splay-tree parent pointer empty while
		// leaving this parent slot set: that slot must be a path-parent).
		f.Splay(p)
		f.arena.SetChild(p, 1, w) // w stops being p's path-child and becomes its preferred child.
		f.arena.SetParent(w, p)
		f.recompute(p)
		w = p
	}
	f.Splay(v)
}

// Reroot makes v the root of its represented tree.
func (f *Forest[W, A]) Reroot(v Handle) {
	f.Access(v)
	f.Reverse(v)
}

// FindRoot returns the represented-tree root of v's tree, as a side effect
// restructuring the forest exactly as Access(v) would (Access is run
// internally). It walks left from v's new splay root after pushing down
// any pending reversal, since the root of a represented tree is the
// shallowest, i.e. leftmost, node of the preferred path.
func (f *Forest[W, A]) FindRoot(v Handle) Handle {
	f.Access(v)
	cur := v
	f.pushDown(cur)
	for f.arena.Left(cur) != Nil {
		cur = f.arena.Left(cur)
		f.pushDown(cur)
	}
	f.Splay(cur)
	return cur
}

// InOrder returns the handles of root's auxiliary splay tree in in-order
// sequence, pushing down any pending reversal as it descends. Called right
// after an Access(v), this walks exactly the represented-tree path ending
// at v, shallowest handle first.
func (f *Forest[W, A]) InOrder(root Handle) []Handle {
	order := make([]Handle, 0, f.Len())
	pending := stack.New[Handle]()
	cur := root
	for cur != Nil || pending.Len() > 0 {
		for cur != Nil {
			f.pushDown(cur)
			pending.Push(cur)
			cur = f.arena.Left(cur)
		}
		cur, _ = pending.Pop()
		order = append(order, cur)
		cur = f.arena.Right(cur)
	}
	return order
}

// AttachRightChild makes child the right (preferred) child of parent,
// which must currently have no right child. Used by link.
func (f *Forest[W, A]) AttachRightChild(parent, child Handle) {
	f.arena.SetRight(parent, child)
	f.arena.SetParent(child, parent)
	f.recompute(parent)
}

// DetachLeftChild clears parent's left child link (and the child's
// parent link back), used by cut once adjacency has been verified.
func (f *Forest[W, A]) DetachLeftChild(parent, child Handle) {
	f.arena.SetLeft(parent, Nil)
	f.arena.SetParent(child, Nil)
	f.recompute(parent)
}
