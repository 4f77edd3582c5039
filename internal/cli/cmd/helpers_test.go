package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitpane/internal/domain/entity"
)

func TestTargetPane(t *testing.T) {
	tree := entity.NewPaneTree(nil)
	_, err := targetPane(tree, "")
	assert.Error(t, err, "empty tree has no selection")

	id, err := targetPane(tree, "explicit")
	require.NoError(t, err)
	assert.Equal(t, entity.NodeID("explicit"), id)

	doc := &entity.LayoutDocument{
		Version: entity.LayoutVersion,
		Root:    &entity.DocumentNode{ID: "only", Type: entity.DocumentPane},
	}
	tree, err = entity.TreeFromDocument(doc, entity.RebuildOptions{})
	require.NoError(t, err)

	id, err = targetPane(tree, "")
	require.NoError(t, err)
	assert.Equal(t, entity.NodeID("only"), id)
}
