package catalogs

import (
	"fmt"
	"strings"
)

// Severity ranks a validation finding.
type Severity string

// Severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one problem discovered in a catalog. Findings are reported,
// never fatal: a dangling parent or a placeholder position is legal output.
type Finding struct {
	ObjectID string   `json:"object_id" yaml:"object_id"`
	Field    string   `json:"field" yaml:"field"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
}

// String returns a one-line rendering of the finding.
func (f Finding) String() string {
	return fmt.Sprintf("%s %s.%s: %s", strings.ToUpper(string(f.Severity)), f.ObjectID, f.Field, f.Message)
}

// PlaceholderFunc reports whether an id is known to carry placeholder coordinates.
type PlaceholderFunc func(id string) bool

// Validate checks objects for out-of-range coordinates, dangling parent
// references, unknown types or categories, empty names and, when isPlaceholder
// is non-nil, placeholder positions.
func Validate(objects []*Object, isPlaceholder PlaceholderFunc) []Finding {
	var findings []Finding
	add := func(obj *Object, field string, sev Severity, format string, args ...any) {
		findings = append(findings, Finding{
			ObjectID: obj.ID,
			Field:    field,
			Severity: sev,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	ids := make(map[string]struct{}, len(objects))
	for _, obj := range objects {
		ids[obj.ID] = struct{}{}
	}

	for _, obj := range objects {
		if strings.TrimSpace(obj.Name) == "" {
			add(obj, "name", SeverityWarning, "name is empty")
		}
		if !obj.Type.Valid() {
			add(obj, "type", SeverityError, "unknown type %q", obj.Type)
		}
		if !obj.Category.Valid() {
			add(obj, "category", SeverityError, "unknown category %q", obj.Category)
		}
		if ra := obj.RightAscension; ra != nil && (*ra < 0 || *ra >= 360) {
			add(obj, "rightAscension", SeverityError, "%g outside [0, 360)", *ra)
		}
		if dec := obj.Declination; dec != nil && (*dec < -90 || *dec > 90) {
			add(obj, "declination", SeverityError, "%g outside [-90, 90]", *dec)
		}
		if (obj.RightAscension == nil) != (obj.Declination == nil) {
			add(obj, "declination", SeverityWarning, "only one of rightAscension/declination is set")
		}
		if obj.ParentID != "" {
			if _, ok := ids[obj.ParentID]; !ok {
				add(obj, "parentId", SeverityWarning, "parent %q is not in the catalog", obj.ParentID)
			}
		}
		if isPlaceholder != nil && isPlaceholder(obj.ID) {
			add(obj, "rightAscension", SeverityWarning, "coordinates are a static placeholder")
		}
	}
	return findings
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
