package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitpane/internal/application/port"
	"github.com/bnema/splitpane/internal/application/usecase"
	"github.com/bnema/splitpane/internal/domain/entity"
	repomocks "github.com/bnema/splitpane/internal/domain/repository/mocks"
)

type testProvider struct {
	mu   sync.Mutex
	name string
	doc  *entity.LayoutDocument
}

func (p *testProvider) LayoutName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name
}

func (p *testProvider) LayoutSnapshot() *entity.LayoutDocument {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.doc
}

func singlePane() *entity.LayoutDocument {
	return &entity.LayoutDocument{
		Version: entity.LayoutVersion,
		Root:    &entity.DocumentNode{ID: "only", Type: entity.DocumentPane},
	}
}

func TestService_SaveNow_SavesOnlyWhenDirty(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().Save(mock.Anything, "work", mock.AnythingOfType("*entity.LayoutDocument")).Return(nil).Once()

	svc := NewService(usecase.NewManageLayoutsUseCase(repo, entity.RebuildOptions{}),
		&testProvider{name: "work", doc: singlePane()}, 1000)

	require.NoError(t, svc.SaveNow(context.Background()), "clean service does not save")

	svc.dirty = true
	require.NoError(t, svc.SaveNow(context.Background()))
	assert.False(t, svc.dirty)
}

func TestService_SaveSnapshot_SkipsEmptyLayout(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	svc := NewService(usecase.NewManageLayoutsUseCase(repo, entity.RebuildOptions{}),
		&testProvider{name: "work"}, 1000)
	svc.dirty = true

	require.NoError(t, svc.saveSnapshot(context.Background()))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SaveSnapshot_RetriesBusyDatabase(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	calls := 0
	repo.EXPECT().
		Save(mock.Anything, "work", mock.Anything).
		RunAndReturn(func(context.Context, string, *entity.LayoutDocument) error {
			calls++
			if calls == 1 {
				return errors.New("sqlite3: database is locked")
			}
			return nil
		})

	svc := NewService(usecase.NewManageLayoutsUseCase(repo, entity.RebuildOptions{}),
		&testProvider{name: "work", doc: singlePane()}, 1000)
	svc.retryDelay = time.Millisecond
	svc.dirty = true

	require.NoError(t, svc.saveSnapshot(context.Background()))
	assert.Equal(t, 2, calls)
	assert.False(t, svc.dirty)
}

func TestService_SaveSnapshot_FailureKeepsDirty(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	diskErr := errors.New("disk full")
	repo.EXPECT().Save(mock.Anything, "work", mock.Anything).Return(diskErr).Once()

	svc := NewService(usecase.NewManageLayoutsUseCase(repo, entity.RebuildOptions{}),
		&testProvider{name: "work", doc: singlePane()}, 1000)
	svc.dirty = true

	err := svc.saveSnapshot(context.Background())
	require.ErrorIs(t, err, diskErr)
	assert.True(t, svc.dirty)
}

func TestService_OnChangeDebouncesSaves(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	saved := make(chan struct{}, 4)
	repo.EXPECT().
		Save(mock.Anything, "work", mock.Anything).
		RunAndReturn(func(context.Context, string, *entity.LayoutDocument) error {
			saved <- struct{}{}
			return nil
		}).Once()

	svc := NewService(usecase.NewManageLayoutsUseCase(repo, entity.RebuildOptions{}),
		&testProvider{name: "work", doc: singlePane()}, 20)
	svc.Start(context.Background())

	for i := 0; i < 5; i++ {
		svc.OnChange(context.Background(), port.StructuralChange{Kind: port.ChangeSplit})
	}

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot was not saved")
	}
	require.NoError(t, svc.Stop(context.Background()))
	assert.Empty(t, saved, "burst of changes produces a single save")
}
