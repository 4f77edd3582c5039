package usecase

import (
	"context"

	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/logging"
)

// CloseEngine removes a non-root leaf, promotes its sibling and collapses
// any branch left with fewer than two children.
type CloseEngine struct{}

// NewCloseEngine creates a close engine.
func NewCloseEngine() *CloseEngine {
	return &CloseEngine{}
}

// CloseResult describes a successful close.
type CloseResult struct {
	Closed   entity.NodeID
	Promoted *entity.PaneNode // Node now sitting where the closed leaf's parent was
	Removed  []entity.NodeID  // Branches eliminated, the closed leaf's parent first
	Selected *entity.PaneNode
}

// Close removes target from the tree. It returns false, without mutating
// anything, when target is not a leaf of the tree or is the root: clearing
// the whole tree is the caller's decision.
func (e *CloseEngine) Close(ctx context.Context, tree *entity.PaneTree, target *entity.PaneNode) (*CloseResult, bool) {
	log := logging.FromContext(ctx)

	if tree == nil || !target.IsLeaf() {
		return nil, false
	}
	parent, ok := tree.FindParent(target)
	if !ok || parent == nil {
		return nil, false
	}
	log.Debug().Str("pane_id", string(target.ID)).Msg("closing pane")

	sibling := parent.First
	if sibling == target {
		sibling = parent.Second
	}
	grandparent := parent.Parent
	wasSelected := target.IsSelected()

	// Detach both children first so parent owns nothing once it is dropped.
	parent.First, parent.Second = nil, nil
	target.Parent = nil
	if sibling != nil {
		sibling.Parent = nil
	}
	if !tree.Replace(parent, sibling) {
		// parent was reachable through target a moment ago
		parent.First, parent.Second = target, sibling
		target.Parent = parent
		if sibling != nil {
			sibling.Parent = parent
		}
		return nil, false
	}

	result := &CloseResult{Closed: target.ID, Removed: []entity.NodeID{parent.ID}}
	result.Promoted = collapseDown(tree, sibling, &result.Removed)
	collapseUp(tree, grandparent, &result.Removed)

	tree.Release(target)

	var preferred *entity.PaneNode
	if wasSelected {
		if result.Promoted != nil && tree.Contains(result.Promoted) {
			preferred = result.Promoted.FirstLeaf()
		} else {
			preferred = tree.FirstLeaf()
		}
	}
	result.Selected = tree.EnsureSingleSelection(preferred).Selected

	promotedID := ""
	if result.Promoted != nil {
		promotedID = string(result.Promoted.ID)
	}
	log.Info().
		Str("closed_pane_id", string(target.ID)).
		Str("promoted_id", promotedID).
		Int("collapsed", len(result.Removed)).
		Msg("pane closed, sibling promoted")

	return result, true
}

// collapseDown simplifies the subtree rooted at node, children first, and
// returns whatever now occupies node's slot.
func collapseDown(tree *entity.PaneTree, node *entity.PaneNode, removed *[]entity.NodeID) *entity.PaneNode {
	if !node.IsBranch() {
		return node
	}
	collapseDown(tree, node.First, removed)
	collapseDown(tree, node.Second, removed)
	return collapseBranch(tree, node, removed)
}

// collapseUp walks from node to the root collapsing degenerate branches.
func collapseUp(tree *entity.PaneTree, node *entity.PaneNode, removed *[]entity.NodeID) {
	for node != nil {
		next := node.Parent
		collapseBranch(tree, node, removed)
		node = next
	}
}

// collapseBranch replaces a branch holding fewer than two children with its
// only child, or with nothing when it is empty.
func collapseBranch(tree *entity.PaneTree, node *entity.PaneNode, removed *[]entity.NodeID) *entity.PaneNode {
	if node.ChildCount() == 2 || !tree.Contains(node) {
		return node
	}
	child := node.First
	if child == nil {
		child = node.Second
	}
	node.First, node.Second = nil, nil
	if child != nil {
		child.Parent = nil
	}
	tree.Replace(node, child)
	*removed = append(*removed, node.ID)
	return child
}
