// Package arena provides fixed-address storage for the nodes of a splay
// forest. Nodes are keyed by a dense, stable integer handle rather than a
// pointer, so that parent/child links survive the slice reallocations that
// happen as the forest grows.
package arena

import (
	g "github.com/zyedidia/generic"
)

// Handle identifies a node. Handles are assigned densely starting at 0 and
// are never reused or invalidated by any operation.
type Handle int

// Nil is the sentinel for an absent parent/child link. It can never collide
// with a real handle, unlike a "points to self" sentinel would.
const Nil Handle = -1

// Node is the storage record for one handle. Field names are unexported;
// the arena only hands out accessors, never the struct itself, so that the
// forest and arena packages stay the only code that can see a raw Node.
type node[W, A any] struct {
	weight  W
	parent  Handle
	left    Handle
	right   Handle
	flipped bool
	agg     A
}

// Arena is a dense, handle-indexed store of nodes belonging to one forest.
// It knows nothing about splay trees or represented trees; it only owns
// memory and exposes field accessors.
type Arena[W, A any] struct {
	nodes []node[W, A]
}

// New returns an empty arena pre-sized for initialCapacity nodes.
func New[W, A any](initialCapacity int) *Arena[W, A] {
	if initialCapacity < 1 {
		initialCapacity = 1
	}
	return &Arena[W, A]{
		nodes: make([]node[W, A], 0, g.NextPowerOf2(uint64(initialCapacity))),
	}
}

// Len returns the number of nodes allocated so far.
func (a *Arena[W, A]) Len() int {
	return len(a.nodes)
}

// Valid reports whether h identifies a node owned by this arena.
func (a *Arena[W, A]) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(a.nodes)
}

// Alloc appends a fresh node carrying weight and returns its handle. The
// node starts as its own one-node auxiliary splay tree: no parent, no
// children, no reversal pending.
func (a *Arena[W, A]) Alloc(weight W, seed func(W, Handle) A) Handle {
	if len(a.nodes) == cap(a.nodes) {
		grown := make([]node[W, A], len(a.nodes), g.NextPowerOf2(uint64(len(a.nodes)+1)))
		copy(grown, a.nodes)
		a.nodes = grown
	}
	h := Handle(len(a.nodes))
	n := node[W, A]{
		weight: weight,
		parent: Nil,
		left:   Nil,
		right:  Nil,
	}
	n.agg = seed(weight, h)
	a.nodes = append(a.nodes, n)
	return h
}

func (a *Arena[W, A]) Weight(h Handle) W { return a.nodes[h].weight }

func (a *Arena[W, A]) Parent(h Handle) Handle { return a.nodes[h].parent }
func (a *Arena[W, A]) Left(h Handle) Handle   { return a.nodes[h].left }
func (a *Arena[W, A]) Right(h Handle) Handle  { return a.nodes[h].right }
func (a *Arena[W, A]) Flipped(h Handle) bool  { return a.nodes[h].flipped }
func (a *Arena[W, A]) Agg(h Handle) A         { return a.nodes[h].agg }

func (a *Arena[W, A]) SetParent(h, p Handle)       { a.nodes[h].parent = p }
func (a *Arena[W, A]) SetLeft(h, c Handle)         { a.nodes[h].left = c }
func (a *Arena[W, A]) SetRight(h, c Handle)        { a.nodes[h].right = c }
func (a *Arena[W, A]) SetFlipped(h Handle, v bool) { a.nodes[h].flipped = v }
func (a *Arena[W, A]) ToggleFlipped(h Handle)      { a.nodes[h].flipped = !a.nodes[h].flipped }
func (a *Arena[W, A]) SetAgg(h Handle, agg A)      { a.nodes[h].agg = agg }

// Child returns h's child on the given side: 0 for left, 1 for right.
func (a *Arena[W, A]) Child(h Handle, side int) Handle {
	if side == 0 {
		return a.nodes[h].left
	}
	return a.nodes[h].right
}

// SetChild sets h's child on the given side: 0 for left, 1 for right.
func (a *Arena[W, A]) SetChild(h Handle, side int, c Handle) {
	if side == 0 {
		a.nodes[h].left = c
	} else {
		a.nodes[h].right = c
	}
}

// SideOf reports which side of parent h lies on: 0 for left, 1 for right,
// -1 if parent's children are neither (h is a path-parent edge, not a
// splay-tree child edge).
func (a *Arena[W, A]) SideOf(parent, h Handle) int {
	if a.nodes[parent].left == h {
		return 0
	}
	if a.nodes[parent].right == h {
		return 1
	}
	return -1
}

// IsSplayRoot reports whether h is the root of its auxiliary splay tree,
// i.e. its parent slot (if set) is a path-parent rather than a child-parent.
func (a *Arena[W, A]) IsSplayRoot(h Handle) bool {
	p := a.nodes[h].parent
	if p == Nil {
		return true
	}
	return a.nodes[p].left != h && a.nodes[p].right != h
}
