package lctree

import (
	"github.com/azizkayumov/lctree/validate"
)

// Check walks the whole forest and verifies its structural invariants
// (I1, I3, I6; see package validate), returning the first violation
// found. It is a debug aid meant for tests and fuzz harnesses, not for
// routine use: call it only between public operations, never reentrantly
// from within one.
func (t *Forest[W, A]) Check(equal func(a, b A) bool) error {
	return validate.Check(t.inner, equal)
}

// Fingerprint returns a deterministic hash of the forest's entire
// stored internal state, for cross-checking two forests that are
// expected to have converged to the same structure.
func (t *Forest[W, A]) Fingerprint() uint64 {
	return validate.Fingerprint(t.inner)
}
