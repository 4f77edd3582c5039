package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/domain/repository"
	"github.com/bnema/splitpane/internal/logging"
)

// ManageLayoutsUseCase stores and restores named layouts.
type ManageLayoutsUseCase struct {
	layoutRepo repository.LayoutRepository
	rebuild    entity.RebuildOptions
}

// NewManageLayoutsUseCase creates a new layout management use case.
// rebuild controls how stored panes get their content back on Load.
func NewManageLayoutsUseCase(layoutRepo repository.LayoutRepository, rebuild entity.RebuildOptions) *ManageLayoutsUseCase {
	return &ManageLayoutsUseCase{
		layoutRepo: layoutRepo,
		rebuild:    rebuild,
	}
}

func normalizeLayoutName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("layout name is required")
	}
	return name, nil
}

// Save serializes the tree and stores it under name.
func (uc *ManageLayoutsUseCase) Save(ctx context.Context, name string, tree *entity.PaneTree) error {
	if tree == nil {
		return fmt.Errorf("tree is required")
	}
	return uc.Import(ctx, name, entity.DocumentFromTree(tree))
}

// Import validates doc and stores it under name. Invalid documents are
// rejected before anything is written.
func (uc *ManageLayoutsUseCase) Import(ctx context.Context, name string, doc *entity.LayoutDocument) error {
	log := logging.FromContext(ctx)

	name, err := normalizeLayoutName(name)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("save layout %q: %w", name, err)
	}
	if err := uc.layoutRepo.Save(ctx, name, doc); err != nil {
		return fmt.Errorf("failed to save layout %q: %w", name, err)
	}

	log.Debug().Str("layout", name).Int("panes", doc.PaneCount()).Msg("layout saved")
	return nil
}

// Export returns the stored document for name.
func (uc *ManageLayoutsUseCase) Export(ctx context.Context, name string) (*entity.LayoutDocument, error) {
	name, err := normalizeLayoutName(name)
	if err != nil {
		return nil, err
	}
	doc, err := uc.layoutRepo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get layout %q: %w", name, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrLayoutNotFound, name)
	}
	return doc, nil
}

// Load rebuilds the pane tree stored under name.
func (uc *ManageLayoutsUseCase) Load(ctx context.Context, name string) (*entity.PaneTree, error) {
	doc, err := uc.Export(ctx, name)
	if err != nil {
		return nil, err
	}
	tree, err := entity.TreeFromDocument(doc, uc.rebuild)
	if err != nil {
		return nil, fmt.Errorf("load layout %q: %w", name, err)
	}

	logging.FromContext(ctx).Debug().
		Str("layout", name).
		Int("panes", tree.CountLeaves()).
		Msg("layout restored")
	return tree, nil
}

// List returns summaries of all stored layouts.
func (uc *ManageLayoutsUseCase) List(ctx context.Context) ([]entity.LayoutInfo, error) {
	infos, err := uc.layoutRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	return infos, nil
}

// Delete removes a stored layout.
func (uc *ManageLayoutsUseCase) Delete(ctx context.Context, name string) error {
	name, err := normalizeLayoutName(name)
	if err != nil {
		return err
	}
	if err := uc.layoutRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete layout %q: %w", name, err)
	}
	logging.FromContext(ctx).Info().Str("layout", name).Msg("layout deleted")
	return nil
}
