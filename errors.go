package lctree

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Forest's methods. Callers compare against
// these with errors.Is; none of them are ever wrapped around a panic.
var (
	// ErrInvalidHandle is returned when a handle passed to a Forest method
	// was never allocated by that Forest's MakeTree.
	ErrInvalidHandle = errors.New("lctree: invalid handle")

	// ErrAlreadyConnected is returned by Link when its two endpoints
	// already belong to the same represented tree.
	ErrAlreadyConnected = errors.New("lctree: nodes already connected")

	// ErrNotAdjacent is returned by Cut when its two endpoints are not
	// joined by an edge in the represented forest.
	ErrNotAdjacent = errors.New("lctree: nodes not adjacent")

	// ErrNotConnected is returned by Path when its two endpoints lie in
	// different represented trees.
	ErrNotConnected = errors.New("lctree: nodes not connected")
)

func invalidHandleErr(h Handle) error {
	return fmt.Errorf("%w: handle %d", ErrInvalidHandle, h)
}
