// Package validate provides the validate command.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karnadigital/atlas/internal/appcontext"
	"github.com/karnadigital/atlas/internal/cmd/output"
	"github.com/karnadigital/atlas/internal/cmd/table"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/coords"
	"github.com/karnadigital/atlas/pkg/emit"
	"github.com/karnadigital/atlas/pkg/errors"
)

// NewCommand creates the validate command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		outputDir string
		strict    bool
	)

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Check an emitted catalog for suspicious records",
		Long: `Validate loads the emitted object list and reports coordinates out of
range, dangling parent references, placeholder positions, unknown types or
categories and empty names.

The command fails when an error-level finding is present, or any finding
at all with --strict.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := outputDir
			if dir == "" {
				dir = app.OutputDir()
			}

			objects, err := emit.LoadObjects(dir)
			if err != nil {
				return err
			}
			findings := catalogs.Validate(objects, coords.IsPlaceholder)

			w := cmd.OutOrStdout()
			if len(findings) == 0 {
				if app.OutputFormat().IsTable() {
					fmt.Fprintf(w, "%d objects, no findings\n", len(objects))
					return nil
				}
				findings = []catalogs.Finding{}
			}
			if err := output.Write(w, app.OutputFormat(), findings, table.FindingsToTableData(findings)); err != nil {
				return err
			}
			return Check(findings, strict)
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory holding the emitted catalog")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as failures")

	return cmd
}

// Check turns findings into a command result.
func Check(findings []catalogs.Finding, strict bool) error {
	var errs, warnings int
	for _, f := range findings {
		if f.Severity == catalogs.SeverityError {
			errs++
		} else {
			warnings++
		}
	}
	if errs > 0 || (strict && warnings > 0) {
		return errors.NewValidationError("catalog", nil,
			fmt.Sprintf("%d errors, %d warnings", errs, warnings))
	}
	return nil
}
