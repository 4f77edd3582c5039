package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/splitpane/internal/application/usecase"
	"github.com/bnema/splitpane/internal/domain/entity"
)

var (
	splitPane      string
	splitDirection string
	splitRatio     float64
	splitContent   string

	closePane  string
	closeForce bool

	selectPane     string
	selectNext     bool
	selectPrevious bool

	resizePane      string
	resizeDelta     float64
	resizeContainer string
	resizeRatio     float64
)

var splitCmd = &cobra.Command{
	Use:   "split [layout]",
	Short: "Split a pane in two",
	Long: `Split a pane of a stored layout. The pane keeps its id and selection;
the new pane goes right, left, up or down of it.

Examples:
  splitpane split                          # split the selected pane to the right
  splitpane split work --pane a -d down    # stack a new pane under pane a
  splitpane split --content shell -r 0.7   # new pane shows "shell", old pane keeps 70%`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplit,
}

var closeCmd = &cobra.Command{
	Use:   "close [layout]",
	Short: "Close a pane and collapse its container",
	Long: `Close a pane. Its sibling takes the place of their container, and any
container left with a single child is collapsed.

Closing the last pane needs --force when workspace.confirm_last_pane_close
is set; the layout then restarts from a fresh pane.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClose,
}

var selectCmd = &cobra.Command{
	Use:   "select [layout]",
	Short: "Select a pane",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSelect,
}

var resizeCmd = &cobra.Command{
	Use:   "resize [layout]",
	Short: "Move the divider next to a pane, or set a container ratio",
	Long: `Grow (positive --delta) or shrink a pane by moving the divider of its
container, or set a container's ratio directly with --container and --ratio.
Ratios are clamped to [0.1, 0.9].`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResize,
}

func init() {
	rootCmd.AddCommand(splitCmd, closeCmd, selectCmd, resizeCmd)

	splitCmd.Flags().StringVarP(&splitPane, "pane", "p", "", "pane to split (default: selected pane)")
	splitCmd.Flags().StringVarP(&splitDirection, "direction", "d", string(usecase.SplitRight), "where the new pane goes: right, left, up, down")
	splitCmd.Flags().Float64VarP(&splitRatio, "ratio", "r", 0, "share kept by the split pane (default: workspace.default_split_ratio)")
	splitCmd.Flags().StringVar(&splitContent, "content", "", "content key of the new pane")

	closeCmd.Flags().StringVarP(&closePane, "pane", "p", "", "pane to close (default: selected pane)")
	closeCmd.Flags().BoolVarP(&closeForce, "force", "f", false, "allow closing the last pane")

	selectCmd.Flags().StringVarP(&selectPane, "pane", "p", "", "pane to select")
	selectCmd.Flags().BoolVar(&selectNext, "next", false, "select the next pane")
	selectCmd.Flags().BoolVar(&selectPrevious, "prev", false, "select the previous pane")
	selectCmd.MarkFlagsMutuallyExclusive("pane", "next", "prev")
	selectCmd.MarkFlagsOneRequired("pane", "next", "prev")

	resizeCmd.Flags().StringVarP(&resizePane, "pane", "p", "", "pane whose divider moves (default: selected pane)")
	resizeCmd.Flags().Float64Var(&resizeDelta, "delta", 0.05, "ratio change, negative shrinks")
	resizeCmd.Flags().StringVar(&resizeContainer, "container", "", "container whose ratio is set")
	resizeCmd.Flags().Float64Var(&resizeRatio, "ratio", 0, "ratio to set with --container")
	resizeCmd.MarkFlagsRequiredTogether("container", "ratio")
}

func runSplit(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	name := layoutName(a, args)

	dir, err := usecase.ParseSplitDirection(splitDirection)
	if err != nil {
		return err
	}
	ratio := a.DefaultRatio()
	if cmd.Flags().Changed("ratio") {
		ratio = splitRatio
	}

	tree, err := loadTree(a, name)
	if err != nil {
		return err
	}
	target, err := targetPane(tree, splitPane)
	if err != nil {
		return err
	}

	panes := a.PanesUC
	if splitContent != "" {
		panes = a.PanesWithContent(splitContent)
	}
	out, err := panes.Split(a.Ctx(), usecase.SplitPaneInput{
		Tree:      tree,
		TargetID:  target,
		Direction: dir,
		Ratio:     &ratio,
	})
	if err != nil {
		return err
	}
	if err := saveTree(a, name, tree); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(
		fmt.Sprintf("split %s %s: new pane %s", target, dir, out.NewPaneNode.ID)))
	return nil
}

func runClose(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	name := layoutName(a, args)

	tree, err := loadTree(a, name)
	if err != nil {
		return err
	}
	target, err := targetPane(tree, closePane)
	if err != nil {
		return err
	}

	a.LastPane.Override(closeForce)
	out, err := a.PanesUC.Close(a.Ctx(), tree, target)
	if errors.Is(err, entity.ErrLastPaneVeto) {
		return fmt.Errorf("%s is the last pane of %s (use --force to close it)", target, name)
	}
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("closed %s", target)
	if out.TreeEmpty {
		leaf, err := a.PanesUC.Reset(a.Ctx(), tree)
		if err != nil {
			return err
		}
		msg = fmt.Sprintf("closed %s, layout restarted with pane %s", target, leaf.ID)
	}
	if err := saveTree(a, name, tree); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(msg))
	return nil
}

func runSelect(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	name := layoutName(a, args)

	tree, err := loadTree(a, name)
	if err != nil {
		return err
	}

	var selected *entity.PaneNode
	switch {
	case selectNext:
		selected, err = a.PanesUC.SelectNext(a.Ctx(), tree)
	case selectPrevious:
		selected, err = a.PanesUC.SelectPrevious(a.Ctx(), tree)
	default:
		selected, err = a.PanesUC.Select(a.Ctx(), tree, entity.NodeID(selectPane))
	}
	if err != nil {
		return err
	}
	if err := saveTree(a, name, tree); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(fmt.Sprintf("selected %s", selected.ID)))
	return nil
}

func runResize(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	name := layoutName(a, args)

	tree, err := loadTree(a, name)
	if err != nil {
		return err
	}

	var container *entity.PaneNode
	if resizeContainer != "" {
		err = a.PanesUC.SetSplitRatio(a.Ctx(), usecase.SetSplitRatioInput{
			Tree:        tree,
			SplitNodeID: entity.NodeID(resizeContainer),
			Ratio:       resizeRatio,
		})
		container = tree.FindByID(entity.NodeID(resizeContainer))
	} else {
		var target entity.NodeID
		if target, err = targetPane(tree, resizePane); err != nil {
			return err
		}
		container, err = a.PanesUC.Resize(a.Ctx(), tree, target, resizeDelta)
	}
	if err != nil {
		return err
	}
	if err := saveTree(a, name, tree); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(
		fmt.Sprintf("container %s ratio %.2f", container.ID, container.SplitRatio)))
	return nil
}
