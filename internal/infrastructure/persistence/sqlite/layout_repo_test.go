package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/splitpane/internal/application/usecase"
	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/splitpane/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func twoPaneDocument(key string) *entity.LayoutDocument {
	ratio := 0.4
	return &entity.LayoutDocument{
		Version: entity.LayoutVersion,
		Root: &entity.DocumentNode{
			ID:          "root",
			Type:        entity.DocumentContainer,
			Orientation: entity.OrientationHorizontal,
			SplitRatio:  &ratio,
			FirstChild:  &entity.DocumentNode{ID: "a", Type: entity.DocumentPane, ContentKey: key},
			SecondChild: &entity.DocumentNode{ID: "b", Type: entity.DocumentPane},
		},
	}
}

func TestLayoutRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "layouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewLayoutRepository(db)

	missing, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Save(ctx, "work", twoPaneDocument("editor")))
	require.NoError(t, repo.Save(ctx, "play", twoPaneDocument("game")))
	require.NoError(t, repo.Save(ctx, "work", twoPaneDocument("terminal")))

	got, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	assert.Equal(t, twoPaneDocument("terminal"), got, "second save replaces the first")

	infos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "work", infos[0].Name, "most recently updated first")
	assert.Equal(t, 2, infos[0].PaneCount)
	assert.Equal(t, entity.LayoutVersion, infos[0].Version)
	assert.False(t, infos[0].UpdatedAt.IsZero())

	require.NoError(t, repo.Delete(ctx, "work"))
	require.NoError(t, repo.Delete(ctx, "work"), "deleting twice is fine")

	infos, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "play", infos[0].Name)
}

func TestLayoutRepository_PaneState(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, sqlite.InMemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := sqlite.NewLayoutRepository(db)

	withState := twoPaneDocument("editor")
	withState.State = &entity.PaneState{Selected: "b", Locked: []entity.NodeID{"a"}}
	require.NoError(t, repo.Save(ctx, "work", withState))

	got, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	assert.Equal(t, withState, got)

	require.NoError(t, repo.Save(ctx, "work", twoPaneDocument("editor")))
	got, err = repo.Get(ctx, "work")
	require.NoError(t, err)
	assert.Nil(t, got.State, "saving without state clears it")
}

func TestManageLayouts_SelectionAndLocksSurviveSave(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, sqlite.InMemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	layouts := usecase.NewManageLayoutsUseCase(sqlite.NewLayoutRepository(db), entity.RebuildOptions{CanSplit: true})
	splitMode := usecase.NewSplitModeState(true)
	ids := []string{"new", "split"}
	panes := usecase.NewManagePanesUseCase(
		func() string {
			id := ids[0]
			ids = ids[1:]
			return id
		},
		usecase.PaneCollaborators{SplitMode: splitMode},
	)

	require.NoError(t, layouts.Import(ctx, "work", twoPaneDocument("editor")))
	tree, err := layouts.Load(ctx, "work")
	require.NoError(t, err)
	assert.Equal(t, entity.NodeID("a"), tree.Selected().ID, "imported documents start on the first pane")

	_, err = panes.Select(ctx, tree, "b")
	require.NoError(t, err)
	splitMode.Set(false)
	_, err = panes.Split(ctx, usecase.SplitPaneInput{Tree: tree, TargetID: "b", Direction: usecase.SplitDown})
	require.NoError(t, err)
	require.NoError(t, layouts.Save(ctx, "work", tree))

	reloaded, err := layouts.Load(ctx, "work")
	require.NoError(t, err)
	require.NoError(t, reloaded.CheckInvariants())
	assert.Equal(t, entity.NodeID("b"), reloaded.Selected().ID)
	assert.False(t, reloaded.FindByID("new").CanSplit, "pane created with splitting off stays locked")
	assert.True(t, reloaded.FindByID("a").CanSplit)
}

func TestLayoutRepository_RejectsInvalidDocument(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, sqlite.InMemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewLayoutRepository(db)
	doc := twoPaneDocument("x")
	doc.Root.SecondChild = nil

	assert.ErrorIs(t, repo.Save(ctx, "broken", doc), entity.ErrInvalidDocument)
	assert.Error(t, repo.Save(ctx, "nil", nil))
}

func TestLazyLayoutRepository(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "layouts.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	repo := sqlite.NewLazyLayoutRepository(lazy)

	assert.False(t, lazy.IsInitialized())
	require.NoError(t, repo.Save(ctx, "x", twoPaneDocument("k")))
	assert.True(t, lazy.IsInitialized())

	doc, err := repo.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 2, doc.PaneCount())
}
