package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitpane/internal/application/usecase"
	"github.com/bnema/splitpane/internal/domain/entity"
	repomocks "github.com/bnema/splitpane/internal/domain/repository/mocks"
	"github.com/bnema/splitpane/internal/infrastructure/codec"
	"github.com/bnema/splitpane/internal/infrastructure/layoutfile"
)

func onePane(id string) *entity.LayoutDocument {
	return &entity.LayoutDocument{
		Version: entity.LayoutVersion,
		Root:    &entity.DocumentNode{ID: id, Type: entity.DocumentPane, ContentKey: "editor"},
	}
}

func TestExportFormatFor(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		path       string
		configured string
		want       codec.Format
		wantErr    bool
	}{
		{name: "flag wins", flag: "yaml", path: "out.json", configured: "json", want: codec.FormatYAML},
		{name: "extension", path: "out.yml", configured: "json", want: codec.FormatYAML},
		{name: "configured", configured: "yaml", want: codec.FormatYAML},
		{name: "nothing set", want: codec.FormatJSON},
		{name: "bad flag", flag: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := exportFormatFor(tt.flag, tt.path, tt.configured)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileSafeName(t *testing.T) {
	assert.Equal(t, "work_dev", fileSafeName("work/dev"))
	assert.Equal(t, "a_b_c", fileSafeName(`a\b:c`))
	assert.Equal(t, "plain name", fileSafeName("plain name"))
}

func TestExportAll_WritesEveryLayout(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]entity.LayoutInfo{
		{Name: "work"}, {Name: "notes/draft"}, {Name: "logs"},
	}, nil)
	repo.EXPECT().Get(mock.Anything, "work").Return(onePane("w"), nil)
	repo.EXPECT().Get(mock.Anything, "notes/draft").Return(onePane("n"), nil)
	repo.EXPECT().Get(mock.Anything, "logs").Return(onePane("l"), nil)
	uc := usecase.NewManageLayoutsUseCase(repo, entity.RebuildOptions{})

	dir := filepath.Join(t.TempDir(), "out")
	written, err := exportAll(ctx, uc, dir, codec.FormatYAML, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "work.yaml"),
		filepath.Join(dir, "notes_draft.yaml"),
		filepath.Join(dir, "logs.yaml"),
	}, written)

	doc, err := layoutfile.Load(ctx, filepath.Join(dir, "notes_draft.yaml"), "")
	require.NoError(t, err)
	assert.Equal(t, "n", doc.Root.ID)
}

func TestExportAll_StopsOnError(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]entity.LayoutInfo{{Name: "broken"}}, nil)
	repo.EXPECT().Get(mock.Anything, "broken").Return(nil, errors.New("disk on fire"))
	uc := usecase.NewManageLayoutsUseCase(repo, entity.RebuildOptions{})

	dir := t.TempDir()
	written, err := exportAll(ctx, uc, dir, codec.FormatJSON, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Empty(t, written)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportAll_EmptyStore(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, nil)
	uc := usecase.NewManageLayoutsUseCase(repo, entity.RebuildOptions{})

	written, err := exportAll(context.Background(), uc, t.TempDir(), codec.FormatJSON, 4)
	require.NoError(t, err)
	assert.Empty(t, written)
}
