package table

import (
	"strconv"

	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/ingest"
)

// ReportToTableData converts a run report to one row per declared source.
func ReportToTableData(report *ingest.Report) Data {
	headers := []string{"Source", "Policy", "Status", "Inserted", "Replaced", "Merged", "Images", "Detail"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignLeft}

	rows := make([][]string, 0, len(report.Sources)+1)
	for _, rep := range report.Sources {
		detail := placeholder
		if rep.Err != nil {
			detail = truncate(rep.Err.Error(), 60)
		}
		rows = append(rows, []string{
			rep.ID.String(),
			orDash(string(rep.Policy)),
			string(rep.Status),
			strconv.Itoa(rep.Stats.Inserted),
			strconv.Itoa(rep.Stats.Replaced),
			strconv.Itoa(rep.Stats.Merged),
			strconv.Itoa(rep.Images),
			detail,
		})
	}
	rows = append(rows, []string{
		"total", "", "",
		strconv.Itoa(report.Totals.Inserted),
		strconv.Itoa(report.Totals.Replaced),
		strconv.Itoa(report.Totals.Merged),
		strconv.Itoa(report.Images),
		strconv.Itoa(report.Objects) + " objects",
	})

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// CategoriesToTableData converts per-category counts, in index order.
func CategoriesToTableData(counts map[catalogs.Category]int) Data {
	rows := make([][]string, 0, len(counts))
	for _, c := range catalogs.Categories() {
		rows = append(rows, []string{string(c), strconv.Itoa(counts[c])})
	}
	return Data{
		Headers:         []string{"Category", "Objects"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// FindingsToTableData converts validation findings to table format.
func FindingsToTableData(findings []catalogs.Finding) Data {
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, []string{string(f.Severity), f.ObjectID, f.Field, f.Message})
	}
	return Data{
		Headers: []string{"Severity", "Object", "Field", "Message"},
		Rows:    rows,
	}
}
