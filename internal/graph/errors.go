package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrKindMismatch is returned when an id is reused for a different
	// widget kind than it was created with.
	ErrKindMismatch = errors.New("graph: widget kind mismatch")

	// ErrWouldCycle is returned when adding an edge would create a cycle.
	ErrWouldCycle = errors.New("graph: edge would create a cycle")

	// ErrNoNode is returned when an operation names an id that has no node.
	ErrNoNode = errors.New("graph: no node for id")
)

// KindMismatchError reports the id and both kinds involved in a mismatch.
type KindMismatchError struct {
	ID        ID
	Existing  Kind
	Requested Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("graph: widget %d already exists as %q, cannot reuse it as %q",
		e.ID, e.Existing, e.Requested)
}

// Unwrap returns ErrKindMismatch.
func (e *KindMismatchError) Unwrap() error { return ErrKindMismatch }

// CycleError reports the edge that was rejected.
type CycleError struct {
	Edge   EdgeKind
	Parent ID
	Child  ID
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("graph: %s edge %d -> %d would create a cycle", e.Edge, e.Parent, e.Child)
}

// Unwrap returns ErrWouldCycle.
func (e *CycleError) Unwrap() error { return ErrWouldCycle }
