// Package list provides the list command.
package list

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karnadigital/atlas/internal/appcontext"
	"github.com/karnadigital/atlas/internal/cmd/output"
	"github.com/karnadigital/atlas/internal/cmd/table"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/emit"
	"github.com/karnadigital/atlas/pkg/errors"
)

// Filter selects objects for listing.
type Filter struct {
	Category string
	Type     string
	Search   string
	Limit    int
}

// NewCommand creates the list command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		outputDir string
		filter    Filter
	)

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Short:   "List objects of an emitted catalog",
		Long: `List shows the objects of the emitted catalog in catalog order.

Coordinates are rendered in sexagesimal notation; use -o wide for distance,
parent and description columns.`,
		Example: `  atlas list
  atlas list --category "Deep Sky"
  atlas list --type STAR --limit 10
  atlas list --search andromeda -o yaml`,
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
			objects, err = filter.Apply(objects)
			if err != nil {
				return err
			}

			format := app.OutputFormat()
			w := cmd.OutOrStdout()
			if len(objects) == 0 && format.IsTable() {
				fmt.Fprintln(w, "No objects found")
				return nil
			}
			return output.Write(w, format, objects, table.ObjectsToTableData(objects, format == output.FormatWide))
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory holding the emitted catalog")
	cmd.Flags().StringVar(&filter.Category, "category", "", "only objects in this category")
	cmd.Flags().StringVar(&filter.Type, "type", "", "only objects of this type (e.g. STAR, GALAXY)")
	cmd.Flags().StringVar(&filter.Search, "search", "", "only objects whose id or name contains this text")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "maximum number of objects (0 for all)")

	return cmd
}

// Apply returns the objects matching f, in order. Category and type are
// matched case-insensitively against the known values.
func (f Filter) Apply(objects []*catalogs.Object) ([]*catalogs.Object, error) {
	var category catalogs.Category
	if f.Category != "" {
		for _, c := range catalogs.Categories() {
			if strings.EqualFold(string(c), f.Category) {
				category = c
			}
		}
		if category == "" {
			return nil, errors.NewValidationError("category", f.Category, fmt.Sprintf("unknown category %q", f.Category))
		}
	}
	var objectType catalogs.ObjectType
	if f.Type != "" {
		objectType = catalogs.ObjectType(strings.ToUpper(f.Type))
		if !objectType.Valid() {
			return nil, errors.NewValidationError("type", f.Type, fmt.Sprintf("unknown type %q", f.Type))
		}
	}
	search := strings.ToLower(f.Search)

	matched := make([]*catalogs.Object, 0, len(objects))
	for _, obj := range objects {
		if category != "" && obj.Category != category {
			continue
		}
		if objectType != "" && obj.Type != objectType {
			continue
		}
		if search != "" &&
			!strings.Contains(obj.ID, search) &&
			!strings.Contains(strings.ToLower(obj.Name), search) {
			continue
		}
		matched = append(matched, obj)
		if f.Limit > 0 && len(matched) == f.Limit {
			break
		}
	}
	return matched, nil
}
