package port

import "github.com/bnema/splitpane/internal/domain/entity"

// LayoutSnapshotProvider exposes the layout being edited to the autosave
// service. Implemented by the host that owns the tree; the document must
// be built on the owning goroutine since the tree is not safe for
// concurrent use.
type LayoutSnapshotProvider interface {
	// LayoutName returns the name the layout is saved under.
	LayoutName() string
	// LayoutSnapshot returns the latest document, or nil while the tree is empty.
	LayoutSnapshot() *entity.LayoutDocument
}
