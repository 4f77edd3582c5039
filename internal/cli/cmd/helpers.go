package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/splitpane/internal/cli"
	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/logging"
)

// layoutName picks the positional name or the configured default layout.
func layoutName(a *cli.App, args []string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0])
	}
	return a.Config.Workspace.DefaultLayout
}

func loadTree(a *cli.App, name string) (*entity.PaneTree, error) {
	tree, err := a.LayoutsUC.Load(a.Ctx(), name)
	if err != nil {
		return nil, err
	}
	if err := tree.CheckInvariants(); err != nil {
		// documents are validated, so this means a bug in the rebuild
		logging.FromContext(a.Ctx()).Error().Err(err).Str("layout", name).Msg("restored tree is inconsistent")
		return nil, err
	}
	return tree, nil
}

func saveTree(a *cli.App, name string, tree *entity.PaneTree) error {
	if tree.IsEmpty() {
		return fmt.Errorf("layout %q has no panes left; use 'splitpane new --force %s' to start over", name, name)
	}
	return a.LayoutsUC.Save(a.Ctx(), name, tree)
}

// targetPane resolves --pane, defaulting to the selected pane.
func targetPane(tree *entity.PaneTree, id string) (entity.NodeID, error) {
	if id != "" {
		return entity.NodeID(id), nil
	}
	selected := tree.Selected()
	if selected == nil {
		return "", fmt.Errorf("no pane selected")
	}
	return selected.ID, nil
}
