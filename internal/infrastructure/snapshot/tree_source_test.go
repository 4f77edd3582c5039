package snapshot

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitpane/internal/application/port"
	"github.com/bnema/splitpane/internal/application/usecase"
	"github.com/bnema/splitpane/internal/domain/entity"
	repomocks "github.com/bnema/splitpane/internal/domain/repository/mocks"
	"github.com/bnema/splitpane/internal/infrastructure/events"
)

func TestTreeSource_TracksTree(t *testing.T) {
	tree := entity.NewPaneTree(nil)
	src := NewTreeSource("work", tree)
	assert.Nil(t, src.LayoutSnapshot(), "empty tree has no document")

	leaf := entity.NewLeaf("a", nil)
	tree.SetRoot(leaf)
	src.OnChange(context.Background(), port.StructuralChange{Kind: port.ChangeRootReplaced})

	doc := src.LayoutSnapshot()
	require.NotNil(t, doc)
	assert.Equal(t, "a", doc.Root.ID)

	src.Rename("other")
	assert.Equal(t, "other", src.LayoutName())
}

func TestTreeSource_FeedsAutosaveThroughBus(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().
		Save(mock.Anything, "work", mock.MatchedBy(func(doc *entity.LayoutDocument) bool {
			return doc.PaneCount() == 2
		})).
		Return(nil).Once()

	bus := events.NewBus()
	next := 0
	newID := func() string {
		next++
		return fmt.Sprintf("n%d", next)
	}
	panes := usecase.NewManagePanesUseCase(newID, usecase.PaneCollaborators{Notifier: bus})
	tree, err := panes.NewTree(ctx)
	require.NoError(t, err)

	src := NewTreeSource("work", tree)
	svc := NewService(usecase.NewManageLayoutsUseCase(repo, entity.RebuildOptions{}), src, 60_000)
	bus.Subscribe(src.OnChange)
	bus.Subscribe(svc.OnChange)
	svc.Start(ctx)

	_, err = panes.Split(ctx, usecase.SplitPaneInput{
		Tree:      tree,
		TargetID:  tree.FirstLeaf().ID,
		Direction: usecase.SplitRight,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Stop(ctx), "stop flushes the pending snapshot")
}
