// Package model holds the Bubble Tea models of the splitpane CLI.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitpane/internal/application/usecase"
	"github.com/bnema/splitpane/internal/cli/styles"
	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/logging"
)

const resizeStep = 0.05

// ClosePolicy is the last-pane policy as seen by the editor: it can ask
// whether a close would be refused and grant a one-shot override.
type ClosePolicy interface {
	NeedsConfirmation() bool
	Override(allow bool)
}

// WorkspaceModelConfig holds the dependencies of the editor.
type WorkspaceModelConfig struct {
	LayoutName string
	Tree       *entity.PaneTree
	Panes      *usecase.ManagePanesUseCase
	Layouts    *usecase.ManageLayoutsUseCase
	SplitMode  *usecase.SplitModeState
	LastPane   ClosePolicy
	Ratio      float64
}

// WorkspaceModel edits a pane tree interactively.
type WorkspaceModel struct {
	ctx   context.Context
	theme *styles.Theme
	keys  styles.WorkspaceKeyMap
	help  help.Model
	cfg   WorkspaceModelConfig

	width  int
	height int

	confirm   *styles.ConfirmModel
	status    string
	statusErr bool
}

// ConfigChangedMsg carries reloaded settings into the editor.
type ConfigChangedMsg struct {
	SplitMode        bool
	Ratio            float64
	ShowCloseButtons bool
}

// layoutSavedMsg is sent when an explicit save completes.
type layoutSavedMsg struct {
	name string
	err  error
}

// NewWorkspaceModel creates the editor model.
func NewWorkspaceModel(ctx context.Context, theme *styles.Theme, cfg WorkspaceModelConfig) WorkspaceModel {
	return WorkspaceModel{
		ctx:    logging.WithComponent(ctx, "editor"),
		theme:  theme,
		keys:   styles.DefaultWorkspaceKeyMap(),
		help:   styles.NewHelp(theme),
		cfg:    cfg,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m WorkspaceModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m WorkspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case ConfigChangedMsg:
		m.cfg.SplitMode.Set(msg.SplitMode)
		m.cfg.Ratio = msg.Ratio
		m.theme.CloseMarkers = msg.ShowCloseButtons
		m.setStatus("configuration reloaded", nil)
		return m, nil

	case layoutSavedMsg:
		if msg.err != nil {
			m.setStatus("", msg.err)
		} else {
			m.setStatus(fmt.Sprintf("saved %s", msg.name), nil)
		}
		return m, nil
	}

	return m, nil
}

func (m WorkspaceModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}

	if m.confirm.Result() {
		m.cfg.LastPane.Override(true)
		m.closeSelected()
	} else {
		m.setStatus("kept the last pane", nil)
	}
	m.confirm = nil
	return m, cmd
}

func (m WorkspaceModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.SplitRight):
		m.split(usecase.SplitRight)
	case key.Matches(msg, m.keys.SplitDown):
		m.split(usecase.SplitDown)
	case key.Matches(msg, m.keys.SplitLeft):
		m.split(usecase.SplitLeft)
	case key.Matches(msg, m.keys.SplitUp):
		m.split(usecase.SplitUp)

	case key.Matches(msg, m.keys.Close):
		if m.cfg.Tree.CountLeaves() == 1 && m.cfg.LastPane.NeedsConfirmation() {
			confirm := styles.NewConfirm(m.theme, "Close the last pane?", "The layout will restart from an empty pane.")
			m.confirm = &confirm
			return m, nil
		}
		m.closeSelected()

	case key.Matches(msg, m.keys.Next):
		_, err := m.cfg.Panes.SelectNext(m.ctx, m.cfg.Tree)
		m.setStatus("", err)
	case key.Matches(msg, m.keys.Previous):
		_, err := m.cfg.Panes.SelectPrevious(m.ctx, m.cfg.Tree)
		m.setStatus("", err)

	case key.Matches(msg, m.keys.Grow):
		m.resize(resizeStep)
	case key.Matches(msg, m.keys.Shrink):
		m.resize(-resizeStep)

	case key.Matches(msg, m.keys.SplitMode):
		enabled := !m.cfg.SplitMode.SplitModeEnabled()
		m.cfg.SplitMode.Set(enabled)
		m.setStatus(fmt.Sprintf("split mode %s for new panes", onOff(enabled)), nil)

	case key.Matches(msg, m.keys.Save):
		return m, m.save()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *WorkspaceModel) split(dir usecase.SplitDirection) {
	selected := m.cfg.Tree.Selected()
	if selected == nil {
		m.setStatus("", errors.New("no pane selected"))
		return
	}
	ratio := m.cfg.Ratio
	out, err := m.cfg.Panes.Split(m.ctx, usecase.SplitPaneInput{
		Tree:      m.cfg.Tree,
		TargetID:  selected.ID,
		Direction: dir,
		Ratio:     &ratio,
	})
	if err != nil {
		m.setStatus("", err)
		return
	}
	m.setStatus(fmt.Sprintf("split %s %s", selected.ID, dir), nil)
	logging.FromContext(m.ctx).Debug().
		Str("pane_id", string(out.NewPaneNode.ID)).
		Msg("pane added from editor")
}

func (m *WorkspaceModel) closeSelected() {
	selected := m.cfg.Tree.Selected()
	if selected == nil {
		return
	}
	out, err := m.cfg.Panes.Close(m.ctx, m.cfg.Tree, selected.ID)
	if err != nil {
		m.setStatus("", err)
		return
	}
	if out.TreeEmpty {
		// an editor always shows at least one pane
		if _, err := m.cfg.Panes.Reset(m.ctx, m.cfg.Tree); err != nil {
			m.setStatus("", err)
			return
		}
		m.setStatus("layout cleared", nil)
		return
	}
	m.setStatus(fmt.Sprintf("closed %s", selected.ID), nil)
}

func (m *WorkspaceModel) resize(delta float64) {
	selected := m.cfg.Tree.Selected()
	if selected == nil {
		return
	}
	branch, err := m.cfg.Panes.Resize(m.ctx, m.cfg.Tree, selected.ID, delta)
	if err != nil {
		m.setStatus("", err)
		return
	}
	m.setStatus(fmt.Sprintf("ratio %.2f", branch.SplitRatio), nil)
}

// save snapshots the tree on the UI goroutine and stores it in the background.
func (m WorkspaceModel) save() tea.Cmd {
	if m.cfg.Layouts == nil || m.cfg.Tree.IsEmpty() {
		return nil
	}
	name := m.cfg.LayoutName
	doc := entity.DocumentFromTree(m.cfg.Tree)
	ctx := m.ctx
	layouts := m.cfg.Layouts
	return func() tea.Msg {
		return layoutSavedMsg{name: name, err: layouts.Import(ctx, name, doc)}
	}
}

func (m *WorkspaceModel) setStatus(text string, err error) {
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return
	}
	if text != "" {
		m.status = text
		m.statusErr = false
	}
}

// View implements tea.Model.
func (m WorkspaceModel) View() string {
	t := m.theme

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	if m.confirm != nil {
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.confirm.View())
	} else {
		body = t.RenderPanes(m.cfg.Tree, m.width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m WorkspaceModel) renderHeader() string {
	t := m.theme
	parts := []string{
		t.Highlight.Render("splitpane"),
		t.AccentBadge(m.cfg.LayoutName),
		t.PaneCountBadge(m.cfg.Tree.CountLeaves()),
		t.MutedBadge("split mode " + onOff(m.cfg.SplitMode.SplitModeEnabled())),
	}
	return strings.Join(parts, " ")
}

func (m WorkspaceModel) renderFooter() string {
	t := m.theme
	status := t.Subtle.Render(m.status)
	if m.statusErr {
		status = t.ErrorStyle.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))
}

// Status returns the last status line, for tests and the final summary.
func (m WorkspaceModel) Status() string {
	return m.status
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
