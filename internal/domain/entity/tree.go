package entity

import (
	"fmt"
	"iter"
)

// PaneTree owns the root slot of a pane tree.
// Root is nil only when the last pane has been removed and the host has not
// installed a new one yet.
//
// The tree has no internal locking: all mutations are expected to happen on
// a single goroutine, one operation at a time.
type PaneTree struct {
	root *PaneNode
}

// NewPaneTree creates a tree rooted at root. A nil root yields an empty tree.
func NewPaneTree(root *PaneNode) *PaneTree {
	if root != nil {
		root.Parent = nil
	}
	return &PaneTree{root: root}
}

// Root returns the current root node.
func (t *PaneTree) Root() *PaneNode {
	return t.root
}

// IsEmpty reports whether the tree has no panes.
func (t *PaneTree) IsEmpty() bool {
	return t.root == nil
}

// SetRoot installs a new root and returns the previous one, detached.
// Callers must run selection repair afterwards.
func (t *PaneTree) SetRoot(root *PaneNode) *PaneNode {
	old := t.root
	if old != nil {
		old.Parent = nil
	}
	if root != nil {
		root.Parent = nil
	}
	t.root = root
	return old
}

// FindParent returns the branch owning node. A nil parent with ok set means
// node sits in the root slot. ok is false when node is not reachable from root.
func (t *PaneTree) FindParent(node *PaneNode) (parent *PaneNode, ok bool) {
	if node == nil || t.root == nil {
		return nil, false
	}
	child := node
	for child.Parent != nil {
		p := child.Parent
		if p.First != child && p.Second != child {
			return nil, false
		}
		child = p
	}
	if child != t.root {
		return nil, false
	}
	return node.Parent, true
}

// Contains reports whether node is reachable from the root.
func (t *PaneTree) Contains(node *PaneNode) bool {
	_, ok := t.FindParent(node)
	return ok
}

// Replace overwrites the slot owning oldNode with newNode and re-parents
// newNode. oldNode loses its parent link. Returns false, without mutating
// anything, when oldNode is not in the tree.
func (t *PaneTree) Replace(oldNode, newNode *PaneNode) bool {
	parent, ok := t.FindParent(oldNode)
	if !ok {
		return false
	}
	if oldNode == newNode {
		return true
	}

	switch {
	case parent == nil:
		t.root = newNode
	case parent.First == oldNode:
		parent.First = newNode
	default:
		parent.Second = newNode
	}

	oldNode.Parent = nil
	if newNode != nil {
		newNode.Parent = parent
	}
	return true
}

// Walk traverses every node depth-first, first child before second.
func (t *PaneTree) Walk(fn func(*PaneNode) bool) {
	t.root.Walk(fn)
}

// Leaves returns a restartable depth-first iterator over the leaves,
// first child before second. Enumeration order is the serialization order.
func (t *PaneTree) Leaves() iter.Seq[*PaneNode] {
	return func(yield func(*PaneNode) bool) {
		t.root.Walk(func(node *PaneNode) bool {
			if node.Kind != KindLeaf {
				return true
			}
			return yield(node)
		})
	}
}

// LeafSlice collects Leaves into a slice.
func (t *PaneTree) LeafSlice() []*PaneNode {
	var leaves []*PaneNode
	for leaf := range t.Leaves() {
		leaves = append(leaves, leaf)
	}
	return leaves
}

// CountLeaves returns the number of panes in the tree.
func (t *PaneTree) CountLeaves() int {
	count := 0
	for range t.Leaves() {
		count++
	}
	return count
}

// FirstLeaf returns the first leaf in enumeration order, or nil.
func (t *PaneTree) FirstLeaf() *PaneNode {
	return t.root.FirstLeaf()
}

// FindByID searches the tree for a node with the given ID.
func (t *PaneTree) FindByID(id NodeID) *PaneNode {
	var found *PaneNode
	t.root.Walk(func(node *PaneNode) bool {
		if node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// Release disposes the content of every leaf under node. It refuses, and
// returns false, while node is still reachable from the root: content is
// only released once its removal is permanent.
func (t *PaneTree) Release(node *PaneNode) bool {
	if node == nil || t.Contains(node) {
		return false
	}
	node.Walk(func(n *PaneNode) bool {
		if n.Kind == KindLeaf {
			n.dispose()
		}
		return true
	})
	return true
}

// Clear removes every pane, releases their content and leaves the tree empty.
func (t *PaneTree) Clear() *PaneNode {
	old := t.SetRoot(nil)
	t.Release(old)
	return old
}

// CheckInvariants returns the first structural violation found, or nil.
func (t *PaneTree) CheckInvariants() error {
	if t.root == nil {
		return nil
	}
	if t.root.Parent != nil {
		return &InvariantError{Invariant: "parent-link", NodeID: t.root.ID, Detail: "root has a parent"}
	}

	seen := make(map[NodeID]struct{})
	selected := 0
	leaves := 0
	var err error

	t.root.Walk(func(node *PaneNode) bool {
		if _, dup := seen[node.ID]; dup {
			err = &InvariantError{Invariant: "unique-id", NodeID: node.ID, Detail: "duplicate node id"}
			return false
		}
		seen[node.ID] = struct{}{}

		switch node.Kind {
		case KindLeaf:
			leaves++
			if node.selected {
				selected++
			}
			if node.First != nil || node.Second != nil {
				err = &InvariantError{Invariant: "leaf-shape", NodeID: node.ID, Detail: "leaf has children"}
				return false
			}
		case KindBranch:
			err = checkBranch(node)
			if err != nil {
				return false
			}
		default:
			err = &InvariantError{Invariant: "node-kind", NodeID: node.ID, Detail: fmt.Sprintf("unknown kind %d", node.Kind)}
			return false
		}
		return true
	})
	if err != nil {
		return err
	}

	if leaves > 0 && selected != 1 {
		return &InvariantError{
			Invariant: "single-selection",
			Detail:    fmt.Sprintf("%d of %d leaves selected", selected, leaves),
		}
	}
	return nil
}

func checkBranch(node *PaneNode) error {
	switch node.ChildCount() {
	case 0:
		return &InvariantError{Invariant: "no-empty-branch", NodeID: node.ID, Detail: "branch has no children"}
	case 1:
		return &InvariantError{Invariant: "no-single-child-branch", NodeID: node.ID, Detail: "branch has one child"}
	}
	if node.First == node.Second {
		return &InvariantError{Invariant: "single-owner", NodeID: node.ID, Detail: "both slots hold the same node"}
	}
	if node.SplitRatio < MinSplitRatio || node.SplitRatio > MaxSplitRatio {
		return &InvariantError{
			Invariant: "ratio-range",
			NodeID:    node.ID,
			Detail:    fmt.Sprintf("ratio %.3f outside [%.1f, %.1f]", node.SplitRatio, MinSplitRatio, MaxSplitRatio),
		}
	}
	if node.First.Parent != node || node.Second.Parent != node {
		return &InvariantError{Invariant: "parent-link", NodeID: node.ID, Detail: "child does not point back to branch"}
	}
	return nil
}
