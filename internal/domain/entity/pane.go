// Package entity contains domain entities representing core layout concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

// NodeID uniquely identifies a node within a pane tree.
type NodeID string

// NodeKind tags a PaneNode as a leaf or a branch.
type NodeKind int

const (
	KindLeaf   NodeKind = iota // Holds content
	KindBranch                 // Holds exactly two children
)

// String returns the document name of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindBranch:
		return "branch"
	default:
		return "unknown"
	}
}

const (
	MinSplitRatio     = 0.1
	MaxSplitRatio     = 0.9
	DefaultSplitRatio = 0.5
)

// ContentHandle is an opaque reference to externally owned renderable content.
// The layout core stores it and hands it back, it never looks inside.
type ContentHandle any

// Disposer is implemented by content that must release resources once its
// pane has been removed from the tree for good.
type Disposer interface {
	Dispose()
}

// Placeholder is the content used when the host could not supply any.
type Placeholder struct {
	Key   string
	Label string
}

// PaneNode represents a node in the pane tree. It is either:
//   - Leaf: holds content and selection state
//   - Branch: holds two children and the split metadata
//
// Parent is a non-owning back reference used for upward traversal only.
// Ownership flows from a branch to its two children.
type PaneNode struct {
	ID     NodeID
	Kind   NodeKind
	Parent *PaneNode // nil for root and for detached nodes

	// Host metadata, kept verbatim by the layout document
	Properties map[string]string

	// Leaf
	Content           ContentHandle
	ContentKey        string
	CanSplit          bool
	SplitGuideContent ContentHandle
	selected          bool
	disposed          bool

	// Branch
	First           *PaneNode
	Second          *PaneNode
	IsVerticalSplit bool    // true = side by side, false = stacked
	SplitRatio      float64 // fraction given to First, [MinSplitRatio, MaxSplitRatio]
}

// NewLeaf creates a detached, unselected leaf.
func NewLeaf(id NodeID, content ContentHandle) *PaneNode {
	return &PaneNode{
		ID:       id,
		Kind:     KindLeaf,
		Content:  content,
		CanSplit: true,
	}
}

// NewBranch creates a branch owning first and second and re-parents both.
// The ratio is clamped.
func NewBranch(id NodeID, first, second *PaneNode, vertical bool, ratio float64) *PaneNode {
	b := &PaneNode{
		ID:              id,
		Kind:            KindBranch,
		First:           first,
		Second:          second,
		IsVerticalSplit: vertical,
		SplitRatio:      ClampRatio(ratio),
	}
	if first != nil {
		first.Parent = b
	}
	if second != nil {
		second.Parent = b
	}
	return b
}

// ClampRatio forces a split ratio into [MinSplitRatio, MaxSplitRatio].
// NaN is treated as the default ratio.
func ClampRatio(ratio float64) float64 {
	switch {
	case ratio != ratio:
		return DefaultSplitRatio
	case ratio < MinSplitRatio:
		return MinSplitRatio
	case ratio > MaxSplitRatio:
		return MaxSplitRatio
	default:
		return ratio
	}
}

// IsLeaf returns true if this node holds content.
func (n *PaneNode) IsLeaf() bool {
	return n != nil && n.Kind == KindLeaf
}

// IsBranch returns true if this node is a split container.
func (n *PaneNode) IsBranch() bool {
	return n != nil && n.Kind == KindBranch
}

// IsSelected reports whether this leaf carries the tree's selection.
// Selection is changed through PaneTree.Select and PaneTree.EnsureSingleSelection.
func (n *PaneNode) IsSelected() bool {
	return n != nil && n.selected
}

// Sibling returns the other child of this node's parent branch.
func (n *PaneNode) Sibling() *PaneNode {
	if n == nil || n.Parent == nil {
		return nil
	}
	switch n {
	case n.Parent.First:
		return n.Parent.Second
	case n.Parent.Second:
		return n.Parent.First
	default:
		return nil
	}
}

// ChildCount returns the number of non-nil child slots of a branch.
func (n *PaneNode) ChildCount() int {
	count := 0
	if n.First != nil {
		count++
	}
	if n.Second != nil {
		count++
	}
	return count
}

// Walk traverses the subtree depth-first, first child before second.
// Returns early if fn returns false.
func (n *PaneNode) Walk(fn func(*PaneNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	if n.Kind != KindBranch {
		return true
	}
	if !n.First.Walk(fn) {
		return false
	}
	return n.Second.Walk(fn)
}

// FirstLeaf returns the first leaf of the subtree in enumeration order.
func (n *PaneNode) FirstLeaf() *PaneNode {
	current := n
	for current != nil && current.Kind == KindBranch {
		if current.First != nil {
			current = current.First
		} else {
			current = current.Second
		}
	}
	return current
}

// LeafCount returns the number of leaves in the subtree.
func (n *PaneNode) LeafCount() int {
	count := 0
	n.Walk(func(node *PaneNode) bool {
		if node.Kind == KindLeaf {
			count++
		}
		return true
	})
	return count
}

// Depth returns the number of edges between this node and the root.
func (n *PaneNode) Depth() int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// dispose releases leaf content exactly once.
func (n *PaneNode) dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	if d, ok := n.Content.(Disposer); ok {
		d.Dispose()
	}
	if d, ok := n.SplitGuideContent.(Disposer); ok {
		d.Dispose()
	}
}

// IsDisposed reports whether the node's content has been released.
func (n *PaneNode) IsDisposed() bool {
	return n.disposed
}
