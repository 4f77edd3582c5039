package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/splitpane/internal/application/port"
	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/logging"
)

// Select moves the selection to the leaf with the given id.
func (uc *ManagePanesUseCase) Select(ctx context.Context, tree *entity.PaneTree, id entity.NodeID) (*entity.PaneNode, error) {
	if tree == nil {
		return nil, fmt.Errorf("tree is required")
	}
	node := tree.FindByID(id)
	if node == nil {
		return nil, fmt.Errorf("select %s: %w", id, entity.ErrNodeNotFound)
	}
	return uc.selectNode(ctx, tree, node)
}

// SelectNext selects the leaf after the current one, wrapping around.
func (uc *ManagePanesUseCase) SelectNext(ctx context.Context, tree *entity.PaneTree) (*entity.PaneNode, error) {
	return uc.cycle(ctx, tree, 1)
}

// SelectPrevious selects the leaf before the current one, wrapping around.
func (uc *ManagePanesUseCase) SelectPrevious(ctx context.Context, tree *entity.PaneTree) (*entity.PaneNode, error) {
	return uc.cycle(ctx, tree, -1)
}

func (uc *ManagePanesUseCase) cycle(ctx context.Context, tree *entity.PaneTree, step int) (*entity.PaneNode, error) {
	if tree == nil {
		return nil, fmt.Errorf("tree is required")
	}
	next := tree.Cycle(step)
	if next == nil {
		return nil, entity.ErrNodeNotFound
	}
	return uc.selectNode(ctx, tree, next)
}

func (uc *ManagePanesUseCase) selectNode(ctx context.Context, tree *entity.PaneTree, node *entity.PaneNode) (*entity.PaneNode, error) {
	repair, err := tree.Select(node)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", node.ID, err)
	}
	if !repair.Changed {
		return node, nil
	}

	ids := []entity.NodeID{node.ID}
	for _, cleared := range repair.Cleared {
		ids = append(ids, cleared.ID)
	}
	logging.FromContext(ctx).Debug().Str("pane_id", string(node.ID)).Msg("pane selected")
	uc.notify(ctx, port.ChangeSelection, ids...)
	return node, nil
}
