package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSplittable is returned when the split target forbids splitting or is stale.
	ErrNotSplittable = errors.New("pane cannot be split")
	// ErrNodeNotFound is returned when the target vanished from the tree.
	ErrNodeNotFound = errors.New("node not found in tree")
	// ErrInvalidDocument is returned when a layout document fails validation.
	ErrInvalidDocument = errors.New("invalid layout document")
	// ErrLastPaneVeto is returned when the host declined removing the sole pane.
	ErrLastPaneVeto = errors.New("closing the last pane was declined")
	// ErrNotLeaf is returned when an operation that needs a leaf gets a branch.
	ErrNotLeaf = errors.New("node is not a leaf")
	// ErrNotBranch is returned when an operation that needs a branch gets a leaf.
	ErrNotBranch = errors.New("node is not a branch")
	// ErrLayoutNotFound is returned when no layout is stored under a name.
	ErrLayoutNotFound = errors.New("layout not found")
)

// DocumentError describes the first validation failure of a layout document.
type DocumentError struct {
	Path   string
	Reason string
}

func (e *DocumentError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidDocument, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidDocument, e.Path, e.Reason)
}

func (e *DocumentError) Unwrap() error {
	return ErrInvalidDocument
}

func invalidDocument(path, format string, args ...any) error {
	return &DocumentError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// InvariantError reports a broken structural invariant of a pane tree.
type InvariantError struct {
	Invariant string
	NodeID    NodeID
	Detail    string
}

func (e *InvariantError) Error() string {
	if e.NodeID == "" {
		return fmt.Sprintf("tree invariant %s violated: %s", e.Invariant, e.Detail)
	}
	return fmt.Sprintf("tree invariant %s violated at %s: %s", e.Invariant, e.NodeID, e.Detail)
}
