// Package validate walks a link-cut forest's internal structure and
// checks the invariants the forest is supposed to maintain between public
// operations. It is a debug-only tool: none of it runs automatically
// inside a mutating method, since lazy flags are only guaranteed
// consistent between calls, never mid-call.
package validate

import (
	"fmt"
	"strings"

	"github.com/segmentio/fasthash/fnv1a"

	"github.com/azizkayumov/lctree/internal/forest"
)

// Violation describes one broken invariant found while walking a forest.
type Violation struct {
	Handle  forest.Handle
	Rule    string
	Message string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("handle %d violates %s: %s", v.Handle, v.Rule, v.Message)
}

// Check walks every node the forest has allocated and verifies:
//
//   - I1: every left/right child's parent slot points back to it, and no
//     two nodes claim the same child.
//   - I3: every node's cached aggregate equals a fresh recomputation from
//     its children's cached aggregates and its own seed.
//   - I6: every node's parent chain (crossing both splay-parent and
//     path-parent edges) reaches a root (Nil parent) in a bounded number
//     of steps, i.e. contains no cycle.
//
// equal compares two aggregates of type A; it is supplied by the caller
// because A is not required to be comparable with ==.
func Check[W, A any](f *forest.Forest[W, A], equal func(a, b A) bool) error {
	n := f.Len()
	owner := make([]forest.Handle, n)
	for i := range owner {
		owner[i] = forest.Nil
	}

	for h := forest.Handle(0); int(h) < n; h++ {
		l, r := f.Left(h), f.Right(h)

		if l != forest.Nil {
			if f.Parent(l) != h {
				return &Violation{h, "I1", fmt.Sprintf("left child %d does not point back", l)}
			}
			if owner[l] != forest.Nil {
				return &Violation{h, "I1", fmt.Sprintf("left child %d already claimed by %d", l, owner[l])}
			}
			owner[l] = h
		}
		if r != forest.Nil {
			if f.Parent(r) != h {
				return &Violation{h, "I1", fmt.Sprintf("right child %d does not point back", r)}
			}
			if owner[r] != forest.Nil {
				return &Violation{h, "I1", fmt.Sprintf("right child %d already claimed by %d", r, owner[r])}
			}
			owner[r] = h
		}

		want := recompute(f, h)
		if !equal(want, f.Agg(h)) {
			return &Violation{h, "I3", "cached aggregate does not match a fresh recomputation"}
		}
	}

	for h := forest.Handle(0); int(h) < n; h++ {
		cur := h
		steps := 0
		for {
			p := f.Parent(cur)
			if p == forest.Nil {
				break
			}
			cur = p
			steps++
			if steps > n {
				return &Violation{h, "I6", "parent chain does not terminate (cycle)"}
			}
		}
	}

	return nil
}

func recompute[W, A any](f *forest.Forest[W, A], h forest.Handle) A {
	l, r := f.Left(h), f.Right(h)
	var left, right A
	hasLeft, hasRight := l != forest.Nil, r != forest.Nil
	if hasLeft {
		left = f.Agg(l)
	}
	if hasRight {
		right = f.Agg(r)
	}
	self := f.Fold().Seed(f.Weight(h), int(h))
	return f.Fold().Combine(left, self, right, hasLeft, hasRight)
}

// Fingerprint returns a deterministic hash of a forest's entire stored
// structural state (every node's weight, parent, left, right, flipped,
// and cached aggregate, read as stored: pending reversals are not pushed
// down first). Two forests built by different code paths that
// are supposed to converge to the same state can compare fingerprints
// instead of walking both structures by hand.
func Fingerprint[W, A any](f *forest.Forest[W, A]) uint64 {
	var sb strings.Builder
	n := f.Len()
	for h := forest.Handle(0); int(h) < n; h++ {
		fmt.Fprintf(&sb, "%d|%v|%d|%d|%d|%t|%v;",
			h, f.Weight(h), f.Parent(h), f.Left(h), f.Right(h), f.Flipped(h), f.Agg(h))
	}
	return fnv1a.HashString64(sb.String())
}
