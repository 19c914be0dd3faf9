package table

import (
	"fmt"
	"strconv"
	"strings"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/karnadigital/atlas/pkg/catalogs"
)

// ObjectsToTableData converts objects to table format. Wide output adds
// distance, parent and description columns.
func ObjectsToTableData(objects []*catalogs.Object, wide bool) Data {
	headers := []string{"ID", "Name", "Type", "Category", "Mag", "RA", "Dec"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight}
	if wide {
		headers = append(headers, "Distance", "Parent", "Description")
		align = append(align, AlignRight, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(objects))
	for _, obj := range objects {
		row := []string{
			obj.ID,
			obj.Name,
			string(obj.Type),
			string(obj.Category),
			FormatMagnitude(obj.Magnitude),
			FormatRA(obj.RightAscension),
			FormatDec(obj.Declination),
		}
		if wide {
			row = append(row,
				FormatDistance(obj),
				orDash(obj.ParentID),
				orDash(truncate(firstLine(obj.Description), 60)),
			)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// FormatMagnitude renders an apparent magnitude, or a dash when unknown.
func FormatMagnitude(m *float64) string {
	if m == nil {
		return placeholder
	}
	return strconv.FormatFloat(*m, 'f', 2, 64)
}

// FormatRA renders right ascension in hours, minutes and seconds.
func FormatRA(deg *float64) string {
	if deg == nil {
		return placeholder
	}
	return fmt.Sprintf("%.1s", sexa.FmtRA(unit.RAFromDeg(*deg)))
}

// FormatDec renders declination in degrees, minutes and seconds.
func FormatDec(deg *float64) string {
	if deg == nil {
		return placeholder
	}
	return fmt.Sprintf("%.0s", sexa.FmtAngle(unit.AngleFromDeg(*deg)))
}

// FormatDistance prefers light years and falls back to AU.
func FormatDistance(obj *catalogs.Object) string {
	switch {
	case obj.DistanceLy != nil:
		return strconv.FormatFloat(*obj.DistanceLy, 'g', 6, 64) + " ly"
	case obj.DistanceAu != nil:
		return strconv.FormatFloat(*obj.DistanceAu, 'g', 6, 64) + " AU"
	default:
		return placeholder
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
