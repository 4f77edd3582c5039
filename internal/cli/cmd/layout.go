package cmd

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/bnema/splitpane/internal/cli"
	"github.com/bnema/splitpane/internal/cli/styles"
	"github.com/bnema/splitpane/internal/domain/entity"
)

const (
	defaultShowWidth  = 80
	defaultShowHeight = 20
)

var (
	newForce   bool
	newContent string
	showBoxes  bool
	showWidth  int
	showHeight int
	showJSON   bool
	listJSON   bool
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a layout holding a single pane",
	Long: `Create a layout with one selected pane. Without a name the configured
workspace.default_layout is used.

An existing layout is only replaced with --force.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a layout as an outline or as boxes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored layouts, most recently updated first",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var deleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a stored layout",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(newCmd, showCmd, listCmd, deleteCmd)

	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "replace an existing layout")
	newCmd.Flags().StringVar(&newContent, "content", "", "content key of the first pane")

	showCmd.Flags().BoolVarP(&showBoxes, "boxes", "b", false, "draw panes as boxes")
	showCmd.Flags().IntVar(&showWidth, "width", defaultShowWidth, "box drawing width")
	showCmd.Flags().IntVar(&showHeight, "height", defaultShowHeight, "box drawing height")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the layout document")

	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}

func runNew(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	name := layoutName(a, args)

	if !newForce {
		if _, err := a.LayoutsUC.Export(a.Ctx(), name); err == nil {
			return fmt.Errorf("layout %q already exists (use --force to replace it)", name)
		} else if !errors.Is(err, entity.ErrLayoutNotFound) {
			return err
		}
	}

	tree := entity.NewPaneTree(nil)
	panes := a.PanesUC
	if newContent != "" {
		panes = a.PanesWithContent(newContent)
	}
	if _, err := panes.Reset(a.Ctx(), tree); err != nil {
		return err
	}
	if err := saveTree(a, name, tree); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(fmt.Sprintf("created layout %s", name)))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	name := layoutName(a, args)
	out := cmd.OutOrStdout()

	if showJSON {
		doc, err := a.LayoutsUC.Export(a.Ctx(), name)
		if err != nil {
			return err
		}
		return writeJSON(out, doc)
	}

	tree, err := loadTree(a, name)
	if err != nil {
		return err
	}
	return printTree(out, a, name, tree)
}

func printTree(out io.Writer, a *cli.App, name string, tree *entity.PaneTree) error {
	fmt.Fprintf(out, "%s %s\n", a.Theme.Title.Render(name), a.Theme.PaneCountBadge(tree.CountLeaves()))
	if showBoxes {
		fmt.Fprintln(out, a.Theme.RenderPanes(tree, showWidth, showHeight))
		return nil
	}
	fmt.Fprintln(out, a.Theme.RenderOutline(tree))
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	infos, err := a.LayoutsUC.List(a.Ctx())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if listJSON {
		return writeJSON(out, infos)
	}
	return outputLayoutsTable(out, infos)
}

func outputLayoutsTable(out io.Writer, infos []entity.LayoutInfo) error {
	if len(infos) == 0 {
		fmt.Fprintln(out, "No saved layouts found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tPANES\tVERSION\tLAST UPDATED")
	for _, info := range infos {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			info.Name,
			info.PaneCount,
			info.Version,
			styles.RelativeTime(info.UpdatedAt),
		)
	}
	return w.Flush()
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	name := args[0]
	if _, err := a.LayoutsUC.Export(a.Ctx(), name); err != nil {
		return err
	}
	if err := a.LayoutsUC.Delete(a.Ctx(), name); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(fmt.Sprintf("deleted layout %s", name)))
	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
