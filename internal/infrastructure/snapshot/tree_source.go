package snapshot

import (
	"context"
	"sync"

	"github.com/bnema/splitpane/internal/application/port"
	"github.com/bnema/splitpane/internal/domain/entity"
)

// TreeSource keeps the latest document of a tree owned by another goroutine.
// Refresh must run on the owning goroutine; subscribing it to the change bus
// ahead of the Service gives the timer a document built before it fires.
type TreeSource struct {
	tree *entity.PaneTree

	mu   sync.Mutex
	name string
	doc  *entity.LayoutDocument
}

var _ port.LayoutSnapshotProvider = (*TreeSource)(nil)

// NewTreeSource creates a source for tree saved under name.
func NewTreeSource(name string, tree *entity.PaneTree) *TreeSource {
	s := &TreeSource{tree: tree, name: name}
	s.Refresh()
	return s
}

// Refresh rebuilds the document from the tree.
func (s *TreeSource) Refresh() {
	var doc *entity.LayoutDocument
	if !s.tree.IsEmpty() {
		doc = entity.DocumentFromTree(s.tree)
	}
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
}

// OnChange refreshes the document after a structural change.
func (s *TreeSource) OnChange(_ context.Context, _ port.StructuralChange) {
	s.Refresh()
}

// Rename changes the name future snapshots are saved under.
func (s *TreeSource) Rename(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

// LayoutName implements port.LayoutSnapshotProvider.
func (s *TreeSource) LayoutName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// LayoutSnapshot implements port.LayoutSnapshotProvider.
func (s *TreeSource) LayoutSnapshot() *entity.LayoutDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}
