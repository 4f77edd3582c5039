package model

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitpane/internal/application/usecase"
	"github.com/bnema/splitpane/internal/cli/styles"
	"github.com/bnema/splitpane/internal/domain/entity"
	repomocks "github.com/bnema/splitpane/internal/domain/repository/mocks"
)

type fakePolicy struct {
	confirm  bool
	override bool
}

func (p *fakePolicy) NeedsConfirmation() bool { return p.confirm && !p.override }
func (p *fakePolicy) Override(allow bool)     { p.override = allow }
func (p *fakePolicy) ConfirmCloseLastPane(context.Context, *entity.PaneNode) bool {
	ok := !p.confirm || p.override
	p.override = false
	return ok
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestWorkspace(t *testing.T, policy *fakePolicy, layouts *usecase.ManageLayoutsUseCase) (WorkspaceModel, *entity.PaneTree) {
	t.Helper()
	next := 0
	newID := func() string {
		next++
		return fmt.Sprintf("p%d", next)
	}
	splitMode := usecase.NewSplitModeState(true)
	panes := usecase.NewManagePanesUseCase(newID, usecase.PaneCollaborators{
		SplitMode: splitMode,
		LastPane:  policy,
	})
	tree, err := panes.NewTree(context.Background())
	require.NoError(t, err)

	m := NewWorkspaceModel(context.Background(), styles.NewTheme(), WorkspaceModelConfig{
		LayoutName: "work",
		Tree:       tree,
		Panes:      panes,
		Layouts:    layouts,
		SplitMode:  splitMode,
		LastPane:   policy,
		Ratio:      0.5,
	})
	return m, tree
}

func send(m WorkspaceModel, msgs ...tea.Msg) (WorkspaceModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(WorkspaceModel)
	}
	return m, cmd
}

func TestWorkspaceModel_SplitAndNavigate(t *testing.T) {
	m, tree := newTestWorkspace(t, &fakePolicy{}, nil)

	m, _ = send(m, runes("v"), runes("s"))
	require.NoError(t, tree.CheckInvariants())
	assert.Equal(t, 3, tree.CountLeaves())
	assert.Equal(t, entity.NodeID("p1"), tree.Selected().ID, "split keeps the target selected")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.NotEqual(t, entity.NodeID("p1"), tree.Selected().ID)
	assert.Contains(t, m.View(), "3 panes")
}

func TestWorkspaceModel_SplitLeftPutsNewPaneFirst(t *testing.T) {
	m, tree := newTestWorkspace(t, &fakePolicy{}, nil)

	send(m, runes("V"))

	root := tree.Root()
	require.True(t, root.IsBranch())
	assert.True(t, root.IsVerticalSplit)
	assert.Equal(t, entity.NodeID("p1"), root.Second.ID)
}

func TestWorkspaceModel_CloseLastPaneAsksFirst(t *testing.T) {
	policy := &fakePolicy{confirm: true}
	m, tree := newTestWorkspace(t, policy, nil)

	m, _ = send(m, runes("x"))
	require.NotNil(t, m.confirm, "confirmation dialog is shown")
	assert.Equal(t, entity.NodeID("p1"), tree.Root().ID)

	m, _ = send(m, runes("n"))
	assert.Nil(t, m.confirm)
	assert.Equal(t, entity.NodeID("p1"), tree.Root().ID, "declined close keeps the pane")

	m, _ = send(m, runes("x"), runes("y"))
	assert.Nil(t, m.confirm)
	require.False(t, tree.IsEmpty(), "editor installs a fresh pane")
	assert.NotEqual(t, entity.NodeID("p1"), tree.Root().ID)
	assert.True(t, tree.Root().IsSelected())
	assert.Equal(t, "layout cleared", m.Status())
}

func TestWorkspaceModel_CloseCollapsesSplit(t *testing.T) {
	m, tree := newTestWorkspace(t, &fakePolicy{confirm: true}, nil)

	m, _ = send(m, runes("v"), runes("x"))

	require.NoError(t, tree.CheckInvariants())
	assert.Equal(t, 1, tree.CountLeaves())
	assert.Nil(t, m.confirm, "closing a non-last pane needs no confirmation")
}

func TestWorkspaceModel_ResizeAndSplitMode(t *testing.T) {
	m, tree := newTestWorkspace(t, &fakePolicy{}, nil)

	m, _ = send(m, runes(">"))
	assert.Contains(t, m.Status(), "nothing to resize")

	m, _ = send(m, runes("v"), runes(">"))
	assert.InDelta(t, 0.55, tree.Root().SplitRatio, 1e-9)

	m, _ = send(m, runes("m"), runes("s"))
	assert.False(t, m.cfg.SplitMode.SplitModeEnabled())
	var locked int
	for leaf := range tree.Leaves() {
		if !leaf.CanSplit {
			locked++
		}
	}
	assert.Equal(t, 1, locked, "only the pane created with split mode off is locked")
}

func TestWorkspaceModel_ConfigChanged(t *testing.T) {
	m, _ := newTestWorkspace(t, &fakePolicy{}, nil)

	m, _ = send(m, ConfigChangedMsg{SplitMode: false, Ratio: 0.3})

	assert.False(t, m.cfg.SplitMode.SplitModeEnabled())
	assert.Equal(t, 0.3, m.cfg.Ratio)
}

func TestWorkspaceModel_Save(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().Save(mock.Anything, "work", mock.AnythingOfType("*entity.LayoutDocument")).Return(nil).Once()
	layouts := usecase.NewManageLayoutsUseCase(repo, entity.RebuildOptions{})

	m, _ := newTestWorkspace(t, &fakePolicy{}, layouts)

	m, cmd := send(m, runes("w"))
	require.NotNil(t, cmd)
	m, _ = send(m, cmd())

	assert.Equal(t, "saved work", m.Status())
}
