// Package ingest provides the ingest command.
package ingest

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/karnadigital/atlas"
	"github.com/karnadigital/atlas/internal/appcontext"
	"github.com/karnadigital/atlas/internal/cmd/output"
	"github.com/karnadigital/atlas/internal/cmd/table"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/ingest"
	"github.com/karnadigital/atlas/pkg/reconcile"
)

// Flags holds the ingest command flags.
type Flags struct {
	DataDir   string
	OutputDir string
	Manifest  string
	SQLite    string
	Compress  bool
	DryRun    bool
}

// NewCommand creates the ingest command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "ingest",
		GroupID: "core",
		Short:   "Build the catalog from the source documents",
		Long: `Ingest reads every declared source under the data root in order,
reconciles the records by id and writes the catalog documents:

  astronomy_objects.json   unified object list
  image_gallery.json       image references per object
  categories.json          object ids per category

Missing or malformed sources are reported and skipped. A missing data root
aborts the run before anything is written.`,
		Example: `  atlas ingest
  atlas ingest --data-dir ./Data --output-dir ./assets
  atlas ingest --manifest sources.yaml --sqlite --compress
  atlas ingest --dry-run -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().StringVar(&flags.DataDir, "data-dir", "", "data root holding the source documents")
	cmd.Flags().StringVar(&flags.OutputDir, "output-dir", "", "directory the catalog is written to")
	cmd.Flags().StringVar(&flags.Manifest, "manifest", "", "YAML or TOML file declaring the sources")
	cmd.Flags().StringVar(&flags.SQLite, "sqlite", "", "also write a SQLite snapshot with this file name")
	cmd.Flags().Lookup("sqlite").NoOptDefVal = constants.SQLiteFile
	cmd.Flags().BoolVar(&flags.Compress, "compress", false, "also write zstd-compressed copies")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "run the pipeline without writing the catalog")

	return cmd
}

// Options converts the flags that were set into atlas options.
func (f *Flags) Options(cmd *cobra.Command) []atlas.Option {
	var opts []atlas.Option
	if f.DataDir != "" {
		opts = append(opts, atlas.WithDataDir(f.DataDir))
	}
	if f.OutputDir != "" {
		opts = append(opts, atlas.WithOutputDir(f.OutputDir))
	}
	if f.Manifest != "" {
		opts = append(opts, atlas.WithManifestFile(f.Manifest))
	}
	if f.SQLite != "" {
		opts = append(opts, atlas.WithSQLite(f.SQLite))
	}
	if cmd.Flags().Changed("compress") {
		opts = append(opts, atlas.WithCompression(f.Compress))
	}
	if f.DryRun {
		opts = append(opts, atlas.WithDryRun(true))
	}
	return opts
}

func run(cmd *cobra.Command, app appcontext.Interface, flags *Flags) error {
	ctx := app.Context(cmd.Context())

	at, err := app.Atlas(flags.Options(cmd)...)
	if err != nil {
		return err
	}
	result, err := at.Ingest(ctx)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	format := app.OutputFormat()
	if !format.IsTable() {
		return output.NewFormatter(format).Format(w, NewSummary(result))
	}

	if err := output.Write(w, format, nil, table.ReportToTableData(result.Report)); err != nil {
		return err
	}
	if err := output.Write(w, format, nil, table.CategoriesToTableData(result.Report.Categories)); err != nil {
		return err
	}

	c := result.Changes
	fmt.Fprintf(w, "\n%d added, %d updated, %d removed", c.Added, c.Updated, c.Removed)
	if result.DryRun {
		fmt.Fprintln(w, " (dry run, nothing written)")
	} else {
		fmt.Fprintf(w, "; catalog written to %s\n", result.Output.Dir)
	}
	return nil
}

// Summary is the machine-readable form of an ingest result.
type Summary struct {
	RunID      string                    `json:"run_id" yaml:"run_id"`
	DryRun     bool                      `json:"dry_run" yaml:"dry_run"`
	Duration   string                    `json:"duration" yaml:"duration"`
	Sources    []SourceSummary           `json:"sources" yaml:"sources"`
	Totals     reconcile.Stats           `json:"totals" yaml:"totals"`
	Objects    int                       `json:"objects" yaml:"objects"`
	Images     int                       `json:"images" yaml:"images"`
	Categories map[catalogs.Category]int `json:"categories" yaml:"categories"`
	Changes    atlas.Changes             `json:"changes" yaml:"changes"`
	Files      []string                  `json:"files,omitempty" yaml:"files,omitempty"`
}

// SourceSummary is the machine-readable form of one source report.
type SourceSummary struct {
	ID     string           `json:"id" yaml:"id"`
	Path   string           `json:"path" yaml:"path"`
	Policy reconcile.Policy `json:"policy,omitempty" yaml:"policy,omitempty"`
	Status ingest.Status    `json:"status" yaml:"status"`
	Stats  reconcile.Stats  `json:"stats" yaml:"stats"`
	Images int              `json:"images" yaml:"images"`
	Error  string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewSummary flattens a result for JSON or YAML output.
func NewSummary(result *atlas.Result) Summary {
	s := Summary{
		RunID:      result.RunID,
		DryRun:     result.DryRun,
		Duration:   result.Duration.Round(time.Millisecond).String(),
		Totals:     result.Report.Totals,
		Objects:    result.Report.Objects,
		Images:     result.Report.Images,
		Categories: result.Report.Categories,
		Changes:    result.Changes,
	}
	for _, rep := range result.Report.Sources {
		src := SourceSummary{
			ID:     rep.ID.String(),
			Path:   rep.Path,
			Policy: rep.Policy,
			Status: rep.Status,
			Stats:  rep.Stats,
			Images: rep.Images,
		}
		if rep.Err != nil {
			src.Error = rep.Err.Error()
		}
		s.Sources = append(s.Sources, src)
	}
	if result.Output != nil {
		s.Files = result.Output.Files
	}
	return s
}
