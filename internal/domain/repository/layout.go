package repository

import (
	"context"

	"github.com/bnema/splitpane/internal/domain/entity"
)

// LayoutRepository persists named layout documents.
type LayoutRepository interface {
	// Save inserts or replaces the layout stored under name.
	Save(ctx context.Context, name string, doc *entity.LayoutDocument) error

	// Get returns the layout stored under name, or nil if there is none.
	Get(ctx context.Context, name string) (*entity.LayoutDocument, error)

	// Delete removes a layout. Deleting a missing layout is not an error.
	Delete(ctx context.Context, name string) error

	// List returns summaries of all layouts, most recently updated first.
	List(ctx context.Context) ([]entity.LayoutInfo, error)
}
