package usecase

import (
	"context"
	"fmt"
	"maps"

	"github.com/bnema/splitpane/internal/application/port"
	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/logging"
)

// IDGenerator is a function type for generating unique node IDs.
type IDGenerator func() string

// SplitEngine turns a leaf into a branch holding the leaf and a new sibling.
type SplitEngine struct {
	newID            IDGenerator
	content          port.ContentProvider
	splitMode        port.SplitModeSource
	placeholderLabel string
}

// NewSplitEngine creates a split engine. content and splitMode may be nil:
// new panes then get a placeholder and are always splittable.
func NewSplitEngine(
	newID IDGenerator,
	content port.ContentProvider,
	splitMode port.SplitModeSource,
	placeholderLabel string,
) *SplitEngine {
	return &SplitEngine{
		newID:            newID,
		content:          content,
		splitMode:        splitMode,
		placeholderLabel: placeholderLabel,
	}
}

// SplitInput contains parameters for a split.
type SplitInput struct {
	Tree     *entity.PaneTree
	Target   *entity.PaneNode
	Vertical bool
	Ratio    float64 // Share of the target, clamped

	// Optional: skips the content provider
	Content *port.ProvidedContent
}

// SplitOutput contains the result of a split.
type SplitOutput struct {
	Branch  *entity.PaneNode
	NewLeaf *entity.PaneNode
}

// Split replaces Target with a branch whose first child is Target and whose
// second child is a new leaf. Target keeps its id, content and selection.
//
// A target that is not a splittable leaf of the tree yields ErrNotSplittable.
// A failed split leaves the tree untouched.
func (e *SplitEngine) Split(ctx context.Context, input SplitInput) (*SplitOutput, error) {
	log := logging.FromContext(ctx)

	if input.Tree == nil {
		return nil, fmt.Errorf("tree is required")
	}
	target := input.Target
	if !target.IsLeaf() {
		return nil, fmt.Errorf("%w: target is not a leaf", entity.ErrNotSplittable)
	}
	if !target.CanSplit {
		return nil, fmt.Errorf("%w: pane %s does not allow splitting", entity.ErrNotSplittable, target.ID)
	}
	if !input.Tree.Contains(target) {
		return nil, fmt.Errorf("%w: pane %s is not in the tree", entity.ErrNotSplittable, target.ID)
	}

	ratio := entity.ClampRatio(input.Ratio)
	log.Debug().
		Str("pane_id", string(target.ID)).
		Bool("vertical", input.Vertical).
		Float64("ratio", ratio).
		Msg("splitting pane")

	provided, fromProvider := e.resolveContent(ctx, input)

	newLeaf := entity.NewLeaf(entity.NodeID(e.newID()), provided.Handle)
	newLeaf.ContentKey = provided.Key
	newLeaf.Properties = maps.Clone(provided.Properties)
	newLeaf.CanSplit = e.splitMode == nil || e.splitMode.SplitModeEnabled()

	// Built unparented: Replace looks the target up through its parent link,
	// so re-parenting happens only once the slot has been swapped.
	branch := &entity.PaneNode{
		ID:              entity.NodeID(e.newID()),
		Kind:            entity.KindBranch,
		IsVerticalSplit: input.Vertical,
		SplitRatio:      ratio,
	}
	if !input.Tree.Replace(target, branch) {
		if fromProvider {
			input.Tree.Release(newLeaf)
		}
		return nil, fmt.Errorf("split pane %s: %w", target.ID, entity.ErrNodeNotFound)
	}
	branch.First = target
	branch.Second = newLeaf
	target.Parent = branch
	newLeaf.Parent = branch

	input.Tree.EnsureSingleSelection(nil)

	log.Info().
		Str("pane_id", string(target.ID)).
		Str("new_pane_id", string(newLeaf.ID)).
		Str("branch_id", string(branch.ID)).
		Msg("pane split")

	return &SplitOutput{Branch: branch, NewLeaf: newLeaf}, nil
}

// resolveContent picks explicit content, then the provider, then a placeholder.
// The bool reports whether the provider produced it.
func (e *SplitEngine) resolveContent(ctx context.Context, input SplitInput) (port.ProvidedContent, bool) {
	if input.Content != nil {
		return *input.Content, false
	}
	if e.content != nil {
		provided, ok := e.content.RequestContent(ctx, port.ContentRequest{
			Purpose:  port.PurposeSplitPane,
			TargetID: input.Target.ID,
			Vertical: input.Vertical,
		})
		if ok && provided.Handle != nil {
			return provided, true
		}
	}
	return port.ProvidedContent{Handle: entity.Placeholder{Label: e.placeholderLabel}}, false
}
