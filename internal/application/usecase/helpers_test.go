package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// sequentialIDs returns a generator producing prefix-1, prefix-2, ...
func sequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// singleLeafTree returns a tree holding one selected leaf with the given id.
func singleLeafTree(id entity.NodeID) (*entity.PaneTree, *entity.PaneNode) {
	leaf := entity.NewLeaf(id, "content-"+string(id))
	tree := entity.NewPaneTree(leaf)
	tree.EnsureSingleSelection(nil)
	return tree, leaf
}

func ratioOf(v float64) *float64 { return &v }

type disposable struct {
	calls int
}

func (d *disposable) Dispose() { d.calls++ }

func leafIDs(tree *entity.PaneTree) []entity.NodeID {
	var ids []entity.NodeID
	for leaf := range tree.Leaves() {
		ids = append(ids, leaf.ID)
	}
	return ids
}
