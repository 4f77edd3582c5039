package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/splitpane/internal/application/usecase"
	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/infrastructure/codec"
	"github.com/bnema/splitpane/internal/infrastructure/config"
	"github.com/bnema/splitpane/internal/infrastructure/layoutfile"
	"github.com/bnema/splitpane/internal/logging"
)

var (
	exportOutput string
	exportFormat string

	exportAllDir    string
	exportAllFormat string

	importName    string
	importFormat  string
	importReplace bool

	validateFormat string

	schemaConfig bool
)

var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Write a layout document to a file or stdout",
	Long: `Export a stored layout as a JSON or YAML layout document.
Without --output the document is printed. The format follows the output
extension unless --format is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var exportAllCmd = &cobra.Command{
	Use:   "export-all",
	Short: "Export every stored layout into a directory",
	Long: `Export every stored layout to <dir>/<name>.<ext>. Layouts are written
in parallel, bounded by export.parallelism.`,
	Args: cobra.NoArgs,
	RunE: runExportAll,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Store a layout document under a name",
	Long: `Validate a JSON or YAML layout document and store it. The name defaults
to the file name without extension. Use - to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check layout documents without storing them",
	Long: `Validate layout documents and rebuild them into trees, reporting the
path of the first problem in each file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of layout documents",
	Args:  cobra.NoArgs,
	RunE:  runSchema,
}

func init() {
	rootCmd.AddCommand(exportCmd, exportAllCmd, importCmd, validateCmd, schemaCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "json or yaml (default: from extension, then export.format)")

	exportAllCmd.Flags().StringVar(&exportAllDir, "dir", ".", "output directory")
	exportAllCmd.Flags().StringVar(&exportAllFormat, "format", "", "json or yaml (default: export.format)")

	importCmd.Flags().StringVarP(&importName, "name", "n", "", "layout name (default: file name)")
	importCmd.Flags().StringVar(&importFormat, "format", "", "json or yaml (default: from extension)")
	importCmd.Flags().BoolVarP(&importReplace, "force", "f", false, "replace an existing layout")

	validateCmd.Flags().StringVar(&validateFormat, "format", "", "json or yaml (default: from extension)")

	schemaCmd.Flags().BoolVar(&schemaConfig, "config", false, "print the config.toml schema instead")
}

// exportFormatFor resolves an explicit flag, then the path, then the config.
func exportFormatFor(flag, path, configured string) (codec.Format, error) {
	if flag != "" {
		return codec.ParseFormat(flag)
	}
	if ext := filepath.Ext(path); ext != "" {
		return codec.FormatFromPath(path), nil
	}
	if configured == "" {
		return codec.FormatJSON, nil
	}
	return codec.ParseFormat(configured)
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	name := layoutName(a, args)

	format, err := exportFormatFor(exportFormat, exportOutput, a.Config.Export.Format)
	if err != nil {
		return err
	}
	doc, err := a.LayoutsUC.Export(a.Ctx(), name)
	if err != nil {
		return err
	}

	if exportOutput == "" || exportOutput == "-" {
		data, err := codec.Marshal(doc, format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := layoutfile.Save(a.Ctx(), exportOutput, doc, format); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(fmt.Sprintf("exported %s to %s", name, exportOutput)))
	return nil
}

func runExportAll(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	format, err := exportFormatFor(exportAllFormat, "", a.Config.Export.Format)
	if err != nil {
		return err
	}

	written, err := exportAll(a.Ctx(), a.LayoutsUC, exportAllDir, format, a.Config.Export.Parallelism)
	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Subtle.Render(path))
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(fmt.Sprintf("exported %d layouts to %s", len(written), exportAllDir)))
	return nil
}

// exportAll writes every stored layout to dir, at most parallelism at a
// time. It returns the written paths in listing order; the first error
// cancels the remaining exports.
func exportAll(
	ctx context.Context,
	layouts *usecase.ManageLayoutsUseCase,
	dir string,
	format codec.Format,
	parallelism int,
) ([]string, error) {
	infos, err := layouts.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	if parallelism < 1 {
		parallelism = 1
	}

	paths := make([]string, len(infos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, info := range infos {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := layouts.Export(gctx, info.Name)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, fileSafeName(info.Name)+format.Extension())
			if err := layoutfile.Save(gctx, path, doc, format); err != nil {
				return fmt.Errorf("export %s: %w", info.Name, err)
			}
			paths[i] = path
			return nil
		})
	}

	err = g.Wait()

	written := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			written = append(written, p)
		}
	}
	logging.FromContext(ctx).Info().
		Int("layouts", len(infos)).
		Int("written", len(written)).
		Str("dir", dir).
		Msg("layouts exported")
	return written, err
}

// fileSafeName keeps layout names usable as file names.
func fileSafeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, name)
}

func runImport(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	path := args[0]

	doc, err := readDocument(a.Ctx(), cmd.InOrStdin(), path, importFormat)
	if err != nil {
		return err
	}

	name := importName
	if name == "" {
		if path == "-" {
			return fmt.Errorf("--name is required when reading from stdin")
		}
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if !importReplace {
		if _, err := a.LayoutsUC.Export(a.Ctx(), name); err == nil {
			return fmt.Errorf("layout %q already exists (use --force to replace it)", name)
		} else if !errors.Is(err, entity.ErrLayoutNotFound) {
			return err
		}
	}
	if err := a.LayoutsUC.Import(a.Ctx(), name, doc); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(
		fmt.Sprintf("imported %s (%d panes)", name, doc.PaneCount())))
	return nil
}

func readDocument(ctx context.Context, stdin io.Reader, path, formatFlag string) (*entity.LayoutDocument, error) {
	var format codec.Format
	if formatFlag != "" {
		f, err := codec.ParseFormat(formatFlag)
		if err != nil {
			return nil, err
		}
		format = f
	}
	if path == "-" {
		if format == "" {
			format = codec.FormatJSON
		}
		return codec.Decode(stdin, format)
	}
	return layoutfile.Load(ctx, path, format)
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range args {
		doc, err := readDocument(a.Ctx(), cmd.InOrStdin(), path, validateFormat)
		if err == nil {
			var tree *entity.PaneTree
			tree, err = entity.TreeFromDocument(doc, entity.RebuildOptions{})
			if err == nil {
				err = tree.CheckInvariants()
			}
		}
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", a.Theme.ErrorStyle.Render("✗"), path, err)
			continue
		}
		fmt.Fprintf(out, "%s %s (%d panes)\n", a.Theme.SuccessStyle.Render("✓"), path, doc.PaneCount())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents are invalid", failed, len(args))
	}
	return nil
}

func runSchema(cmd *cobra.Command, _ []string) error {
	var (
		data []byte
		err  error
	)
	if schemaConfig {
		data, err = config.Schema()
	} else {
		data, err = codec.Schema()
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
