package usecase

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/bnema/splitpane/internal/application/port"
	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/logging"
)

// SplitDirection indicates where the new pane goes relative to the target.
type SplitDirection string

const (
	SplitLeft  SplitDirection = "left"
	SplitRight SplitDirection = "right"
	SplitUp    SplitDirection = "up"
	SplitDown  SplitDirection = "down"
)

// Vertical reports whether the direction produces a side-by-side split.
func (d SplitDirection) Vertical() bool {
	return d == SplitLeft || d == SplitRight
}

// NewFirst reports whether the new pane is placed before the target.
func (d SplitDirection) NewFirst() bool {
	return d == SplitLeft || d == SplitUp
}

// ParseSplitDirection validates a direction string.
func ParseSplitDirection(s string) (SplitDirection, error) {
	switch d := SplitDirection(s); d {
	case SplitLeft, SplitRight, SplitUp, SplitDown:
		return d, nil
	default:
		return "", fmt.Errorf("unknown split direction %q", s)
	}
}

var ErrNothingToResize = errors.New("nothing to resize")

// PaneCollaborators groups the host contracts the pane use case talks to.
// Every field is optional.
type PaneCollaborators struct {
	Content          port.ContentProvider
	SplitMode        port.SplitModeSource
	Notifier         port.ChangeNotifier
	LastPane         port.LastPanePolicy
	PlaceholderLabel string
}

// ManagePanesUseCase handles pane tree operations on behalf of a host:
// policy checks, change notifications and the default pane.
type ManagePanesUseCase struct {
	idGenerator IDGenerator
	splitter    *SplitEngine
	closer      *CloseEngine
	deps        PaneCollaborators
}

// NewManagePanesUseCase creates a new pane management use case.
func NewManagePanesUseCase(idGenerator IDGenerator, deps PaneCollaborators) *ManagePanesUseCase {
	return &ManagePanesUseCase{
		idGenerator: idGenerator,
		splitter:    NewSplitEngine(idGenerator, deps.Content, deps.SplitMode, deps.PlaceholderLabel),
		closer:      NewCloseEngine(),
		deps:        deps,
	}
}

func (uc *ManagePanesUseCase) notify(ctx context.Context, kind port.ChangeKind, ids ...entity.NodeID) {
	if uc.deps.Notifier == nil {
		return
	}
	uc.deps.Notifier.Notify(ctx, port.StructuralChange{Kind: kind, NodeIDs: ids})
}

// SplitPaneInput contains parameters for splitting a pane.
type SplitPaneInput struct {
	Tree      *entity.PaneTree
	TargetID  entity.NodeID
	Direction SplitDirection
	Ratio     *float64 // Share kept by the target, clamped; nil means DefaultSplitRatio
	Content   *port.ProvidedContent
}

// SplitPaneOutput contains the result of a split operation.
type SplitPaneOutput struct {
	NewPaneNode *entity.PaneNode
	ParentNode  *entity.PaneNode
	SplitRatio  float64
}

// Split creates a new pane adjacent to the target pane. For left and up the
// new pane becomes the first child and the ratio is mirrored so the target
// still receives Ratio of the space.
func (uc *ManagePanesUseCase) Split(ctx context.Context, input SplitPaneInput) (*SplitPaneOutput, error) {
	log := logging.FromContext(ctx)

	if input.Tree == nil {
		return nil, fmt.Errorf("tree is required")
	}
	if _, err := ParseSplitDirection(string(input.Direction)); err != nil {
		return nil, err
	}
	target := input.Tree.FindByID(input.TargetID)
	if target == nil {
		return nil, fmt.Errorf("split %s: %w", input.TargetID, entity.ErrNodeNotFound)
	}

	ratio := entity.DefaultSplitRatio
	if input.Ratio != nil {
		ratio = *input.Ratio
	}

	out, err := uc.splitter.Split(ctx, SplitInput{
		Tree:     input.Tree,
		Target:   target,
		Vertical: input.Direction.Vertical(),
		Ratio:    ratio,
		Content:  input.Content,
	})
	if err != nil {
		return nil, err
	}

	branch := out.Branch
	if input.Direction.NewFirst() {
		branch.First, branch.Second = branch.Second, branch.First
		branch.SplitRatio = entity.ClampRatio(1 - branch.SplitRatio)
	}

	log.Debug().
		Str("direction", string(input.Direction)).
		Float64("ratio", branch.SplitRatio).
		Msg("directional split applied")

	uc.notify(ctx, port.ChangeSplit, target.ID, out.NewLeaf.ID, branch.ID)

	return &SplitPaneOutput{
		NewPaneNode: out.NewLeaf,
		ParentNode:  branch,
		SplitRatio:  branch.SplitRatio,
	}, nil
}

// ClosePaneOutput contains the result of a close.
type ClosePaneOutput struct {
	Promoted  *entity.PaneNode // nil when the tree is now empty
	Selected  *entity.PaneNode
	Removed   []entity.NodeID
	TreeEmpty bool
}

// Close removes a pane. Closing the root leaf asks the last-pane policy and,
// when allowed, leaves the tree empty. Installing a replacement is up to the
// host, see Reset.
func (uc *ManagePanesUseCase) Close(ctx context.Context, tree *entity.PaneTree, id entity.NodeID) (*ClosePaneOutput, error) {
	log := logging.FromContext(ctx)

	if tree == nil {
		return nil, fmt.Errorf("tree is required")
	}
	target := tree.FindByID(id)
	if target == nil {
		return nil, fmt.Errorf("close %s: %w", id, entity.ErrNodeNotFound)
	}
	if !target.IsLeaf() {
		return nil, fmt.Errorf("close %s: %w", id, entity.ErrNotLeaf)
	}

	if target == tree.Root() {
		if uc.deps.LastPane != nil && !uc.deps.LastPane.ConfirmCloseLastPane(ctx, target) {
			log.Info().Str("pane_id", string(id)).Msg("closing last pane vetoed")
			return nil, entity.ErrLastPaneVeto
		}
		tree.Clear()
		log.Info().Str("pane_id", string(id)).Msg("closed last pane, tree is empty")
		uc.notify(ctx, port.ChangeRootReplaced, id)
		return &ClosePaneOutput{Removed: []entity.NodeID{id}, TreeEmpty: true}, nil
	}

	result, ok := uc.closer.Close(ctx, tree, target)
	if !ok {
		return nil, fmt.Errorf("close %s: %w", id, entity.ErrNodeNotFound)
	}

	ids := append([]entity.NodeID{result.Closed}, result.Removed...)
	if result.Promoted != nil {
		ids = append(ids, result.Promoted.ID)
	}
	uc.notify(ctx, port.ChangeClosed, ids...)

	return &ClosePaneOutput{
		Promoted: result.Promoted,
		Selected: result.Selected,
		Removed:  result.Removed,
	}, nil
}

// Reset clears the tree and installs a single fresh pane, selected.
// Content comes from the provider with PurposeInitialPane.
func (uc *ManagePanesUseCase) Reset(ctx context.Context, tree *entity.PaneTree) (*entity.PaneNode, error) {
	log := logging.FromContext(ctx)

	if tree == nil {
		return nil, fmt.Errorf("tree is required")
	}

	provided := port.ProvidedContent{Handle: entity.Placeholder{Label: uc.deps.PlaceholderLabel}}
	if uc.deps.Content != nil {
		if got, ok := uc.deps.Content.RequestContent(ctx, port.ContentRequest{Purpose: port.PurposeInitialPane}); ok && got.Handle != nil {
			provided = got
		}
	}

	leaf := entity.NewLeaf(entity.NodeID(uc.idGenerator()), provided.Handle)
	leaf.ContentKey = provided.Key
	leaf.Properties = maps.Clone(provided.Properties)
	leaf.CanSplit = uc.deps.SplitMode == nil || uc.deps.SplitMode.SplitModeEnabled()

	old := tree.SetRoot(leaf)
	tree.Release(old)
	tree.EnsureSingleSelection(leaf)

	log.Info().Str("pane_id", string(leaf.ID)).Msg("installed default pane")
	uc.notify(ctx, port.ChangeRootReplaced, leaf.ID)

	return leaf, nil
}

// NewTree creates a tree holding one default pane.
func (uc *ManagePanesUseCase) NewTree(ctx context.Context) (*entity.PaneTree, error) {
	tree := entity.NewPaneTree(nil)
	if _, err := uc.Reset(ctx, tree); err != nil {
		return nil, err
	}
	return tree, nil
}

type SetSplitRatioInput struct {
	Tree        *entity.PaneTree
	SplitNodeID entity.NodeID
	Ratio       float64
}

// SetSplitRatio sets a branch's ratio, clamped to the allowed range.
func (uc *ManagePanesUseCase) SetSplitRatio(ctx context.Context, input SetSplitRatioInput) error {
	log := logging.FromContext(ctx)

	if input.Tree == nil {
		return fmt.Errorf("tree is required")
	}
	if input.SplitNodeID == "" {
		return fmt.Errorf("split node id is required")
	}
	splitNode := input.Tree.FindByID(input.SplitNodeID)
	if splitNode == nil {
		return fmt.Errorf("split node %s: %w", input.SplitNodeID, entity.ErrNodeNotFound)
	}
	if !splitNode.IsBranch() {
		return fmt.Errorf("split node %s: %w", input.SplitNodeID, entity.ErrNotBranch)
	}

	oldRatio := splitNode.SplitRatio
	splitNode.SplitRatio = entity.ClampRatio(input.Ratio)

	log.Debug().
		Str("split_node_id", string(input.SplitNodeID)).
		Float64("old_ratio", oldRatio).
		Float64("new_ratio", splitNode.SplitRatio).
		Msg("split ratio set")

	uc.notify(ctx, port.ChangeResized, splitNode.ID)
	return nil
}

// Resize grows (positive delta) or shrinks the pane by moving the divider of
// its nearest enclosing branch. Returns the branch that changed.
func (uc *ManagePanesUseCase) Resize(ctx context.Context, tree *entity.PaneTree, id entity.NodeID, delta float64) (*entity.PaneNode, error) {
	if tree == nil {
		return nil, fmt.Errorf("tree is required")
	}
	node := tree.FindByID(id)
	if node == nil {
		return nil, fmt.Errorf("resize %s: %w", id, entity.ErrNodeNotFound)
	}
	splitNode := node.Parent
	if splitNode == nil {
		return nil, ErrNothingToResize
	}

	// SplitRatio is the first child's share.
	ratio := splitNode.SplitRatio + delta
	if splitNode.Second == node {
		ratio = splitNode.SplitRatio - delta
	}

	err := uc.SetSplitRatio(ctx, SetSplitRatioInput{Tree: tree, SplitNodeID: splitNode.ID, Ratio: ratio})
	if err != nil {
		return nil, err
	}
	return splitNode, nil
}
