package forest

import (
	"testing"

	"github.com/azizkayumov/lctree/fold"
)

func chain(t *testing.T, f *Forest[int, fold.SumAgg[int]], weights ...int) []Handle {
	t.Helper()
	handles := make([]Handle, len(weights))
	for i, w := range weights {
		handles[i] = f.MakeNode(w)
	}
	for i := 1; i < len(handles); i++ {
		f.AttachRightChild(handles[i-1], handles[i])
	}
	return handles
}

func TestMakeNodeIsIsolated(t *testing.T) {
	f := New[int, fold.SumAgg[int]](4, fold.SumOfWeights[int]())
	h := f.MakeNode(42)

	if f.Parent(h) != Nil || f.Left(h) != Nil || f.Right(h) != Nil {
		t.Fatalf("fresh node should have no links")
	}
	if f.Agg(h).Sum != 42 {
		t.Fatalf("fresh node's aggregate = %d, want 42", f.Agg(h).Sum)
	}
}

func TestAccessAggregatesWholePath(t *testing.T) {
	f := New[int, fold.SumAgg[int]](4, fold.SumOfWeights[int]())
	h := chain(t, f, 1, 2, 3, 4)

	f.Access(h[3])
	if got := f.Agg(h[3]).Sum; got != 10 {
		t.Fatalf("Agg(deepest) after Access = %d, want 10", got)
	}
	if !f.IsSplayRoot(h[3]) {
		t.Fatalf("Access(v) must leave v as its own splay root")
	}
	if f.Right(h[3]) != Nil {
		t.Fatalf("Access(v) must leave v with no right child")
	}
}

func TestAccessFromMiddleOnlyCountsAncestors(t *testing.T) {
	f := New[int, fold.SumAgg[int]](4, fold.SumOfWeights[int]())
	h := chain(t, f, 1, 2, 3, 4)

	f.Access(h[1])
	if got := f.Agg(h[1]).Sum; got != 1+2 {
		t.Fatalf("Agg(h[1]) after Access = %d, want %d", got, 1+2)
	}
}

func TestRerootFlipsPathDirection(t *testing.T) {
	f := New[int, fold.SumAgg[int]](4, fold.SumOfWeights[int]())
	h := chain(t, f, 1, 2, 3, 4)

	f.Reroot(h[3])
	f.Access(h[0])
	if got := f.Agg(h[0]).Sum; got != 10 {
		t.Fatalf("Agg(h[0]) after reroot+access = %d, want 10 (commutative fold over the same path)", got)
	}
	if !f.IsSplayRoot(h[0]) {
		t.Fatalf("h[0] should be the splay root after being accessed")
	}
}

func TestSplayMovesNodeToSplayRoot(t *testing.T) {
	f := New[int, fold.SumAgg[int]](4, fold.SumOfWeights[int]())
	h := chain(t, f, 1, 2, 3, 4, 5)

	f.Splay(h[2])
	if !f.IsSplayRoot(h[2]) {
		t.Fatalf("Splay(v) must leave v as the splay root")
	}
}

func TestAttachRightChild(t *testing.T) {
	f := New[int, fold.SumAgg[int]](4, fold.SumOfWeights[int]())
	parent := f.MakeNode(10)
	child := f.MakeNode(20)

	f.AttachRightChild(parent, child)
	if f.Right(parent) != child || f.Parent(child) != parent {
		t.Fatalf("AttachRightChild did not link parent/child")
	}
	if f.Agg(parent).Sum != 30 {
		t.Fatalf("Agg(parent) after attach = %d, want 30", f.Agg(parent).Sum)
	}
}

func TestDetachLeftChild(t *testing.T) {
	f := New[int, fold.SumAgg[int]](4, fold.SumOfWeights[int]())
	parent := f.MakeNode(10)
	child := f.MakeNode(20)

	f.arena.SetLeft(parent, child)
	f.arena.SetParent(child, parent)
	f.recompute(parent)
	if f.Agg(parent).Sum != 30 {
		t.Fatalf("Agg(parent) before detach = %d, want 30", f.Agg(parent).Sum)
	}

	f.DetachLeftChild(parent, child)
	if f.Left(parent) != Nil || f.Parent(child) != Nil {
		t.Fatalf("DetachLeftChild did not unlink parent/child")
	}
	if f.Agg(parent).Sum != 10 {
		t.Fatalf("Agg(parent) after detach = %d, want 10", f.Agg(parent).Sum)
	}
}

func TestReverseTogglesFlippedFlag(t *testing.T) {
	f := New[int, fold.SumAgg[int]](4, fold.SumOfWeights[int]())
	h := f.MakeNode(1)

	if f.Flipped(h) {
		t.Fatalf("fresh node should not start flipped")
	}
	f.Reverse(h)
	if !f.Flipped(h) {
		t.Fatalf("Reverse should set the flipped flag")
	}
}

func TestFindRootReturnsShallowestNode(t *testing.T) {
	f := New[int, fold.SumAgg[int]](4, fold.SumOfWeights[int]())
	h := chain(t, f, 1, 2, 3, 4)

	root := f.FindRoot(h[3])
	if root != h[0] {
		t.Fatalf("FindRoot(deepest) = %d, want %d", root, h[0])
	}

	f.Reroot(h[3])
	root = f.FindRoot(h[0])
	if root != h[3] {
		t.Fatalf("FindRoot after Reroot = %d, want %d", root, h[3])
	}
}
