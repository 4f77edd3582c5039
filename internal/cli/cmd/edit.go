package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/splitpane/internal/cli"
	"github.com/bnema/splitpane/internal/cli/model"
	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/infrastructure/config"
	"github.com/bnema/splitpane/internal/infrastructure/snapshot"
	"github.com/bnema/splitpane/internal/logging"
)

var editNoAutosave bool

var editCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Open a layout in the interactive editor",
	Long: `Open a layout in a full-screen editor. A missing layout starts with a
single pane.

Structural changes are autosaved when session.autosave is on, and the
layout is saved again on exit. Edits to config.toml are picked up while
the editor runs; split mode changes only affect new panes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().BoolVar(&editNoAutosave, "no-autosave", false, "only save on exit or with w")
}

func runEdit(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	name := layoutName(a, args)
	ctx := logging.WithComponent(a.Ctx(), "edit")
	log := logging.FromContext(ctx)

	tree, err := openOrCreate(a, name)
	if err != nil {
		return err
	}

	// The source must see a change before the autosave timer is armed.
	source := snapshot.NewTreeSource(name, tree)
	unsubscribe := a.Events.Subscribe(source.OnChange)
	defer unsubscribe()

	var autosave *snapshot.Service
	if a.Config.Session.Autosave && !editNoAutosave {
		autosave = snapshot.NewService(a.LayoutsUC, source, a.Config.Session.SnapshotIntervalMs)
		autosave.Start(ctx)
		defer a.Events.Subscribe(autosave.OnChange)()
	}

	m := model.NewWorkspaceModel(ctx, a.Theme, model.WorkspaceModelConfig{
		LayoutName: name,
		Tree:       tree,
		Panes:      a.PanesUC,
		Layouts:    a.LayoutsUC,
		SplitMode:  a.SplitMode,
		LastPane:   a.LastPane,
		Ratio:      a.DefaultRatio(),
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if a.ConfigManager != nil {
		a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			a.ApplyConfig(cfg)
			p.Send(model.ConfigChangedMsg{
				SplitMode:        cfg.Workspace.SplitMode,
				Ratio:            cfg.Workspace.DefaultSplitRatio,
				ShowCloseButtons: cfg.Workspace.ShowCloseButtons,
			})
		})
		if err := a.ConfigManager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	_, runErr := p.Run()

	if autosave != nil {
		if err := autosave.Stop(ctx); err != nil {
			log.Error().Err(err).Msg("final autosave failed")
		}
	}
	if errors.Is(runErr, tea.ErrProgramKilled) {
		runErr = nil
	}
	if runErr != nil {
		return fmt.Errorf("run editor: %w", runErr)
	}

	if tree.IsEmpty() {
		return nil
	}
	if err := a.LayoutsUC.Save(ctx, name, tree); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	log.Info().Str("layout", name).Int("panes", tree.CountLeaves()).Msg("layout saved")
	return nil
}

// openOrCreate loads a stored layout or starts a fresh single-pane tree.
func openOrCreate(a *cli.App, name string) (*entity.PaneTree, error) {
	tree, err := loadTree(a, name)
	if err == nil {
		return tree, nil
	}
	if !errors.Is(err, entity.ErrLayoutNotFound) {
		return nil, err
	}

	tree = entity.NewPaneTree(nil)
	if _, err := a.PanesUC.Reset(a.Ctx(), tree); err != nil {
		return nil, err
	}
	logging.FromContext(a.Ctx()).Info().Str("layout", name).Msg("starting new layout")
	return tree, nil
}
