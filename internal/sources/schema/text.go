package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/karnadigital/atlas/pkg/constants"
)

// Describe appends up to limit facts to base as a bullet list:
//
//	base
//
//	• fact one
//	• fact two
func Describe(base string, facts []string, limit int) string {
	facts = Facts(facts, limit)
	if len(facts) == 0 {
		return base
	}
	var b strings.Builder
	b.WriteString(base)
	b.WriteString("\n\n")
	for i, fact := range facts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(fact)
	}
	return b.String()
}

// Facts returns at most limit facts. A limit <= 0 uses the default.
func Facts(facts []string, limit int) []string {
	if limit <= 0 {
		limit = constants.MaxFacts
	}
	if len(facts) > limit {
		facts = facts[:limit]
	}
	return append([]string(nil), facts...)
}

// Radius halves a diameter. An absent or zero diameter yields nil; a
// malformed one is logged like any other field.
func Radius(ctx context.Context, objectID string, diameter Number) *float64 {
	d := Check(ctx, objectID, "diameter_km", diameter)
	if d == nil || *d == 0 {
		return nil
	}
	r := *d / 2
	return &r
}

// Text is a string field that also accepts numbers and booleans, kept as
// their literal token. Objects and arrays decode as empty and are reported
// through Malformed.
type Text struct {
	value string
	bad   string
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	switch data[0] {
	case '"':
		if err := json.Unmarshal(data, &t.value); err != nil {
			t.bad = string(data)
		}
	case '{', '[':
		t.bad = string(data)
	default:
		t.value = string(data)
	}
	return nil
}

// String returns the decoded text, "" when absent or malformed.
func (t Text) String() string {
	return t.value
}

// Malformed returns the raw token when the field was present but unusable.
func (t Text) Malformed() (string, bool) {
	return t.bad, t.bad != ""
}

// TextOf returns a Text holding s, for building documents in code.
func TextOf(s string) Text {
	return Text{value: s}
}

// FactList is the interesting_facts field: a list of strings or a single
// string. Non-string items are dropped and reported through Malformed.
type FactList struct {
	facts []string
	bad   string
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FactList) UnmarshalJSON(data []byte) error {
	*f = FactList{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single = strings.TrimSpace(single); single != "" {
			f.facts = []string{single}
		}
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		f.bad = string(data)
		return nil
	}
	var rejected []string
	for _, item := range items {
		var fact string
		if err := json.Unmarshal(item, &fact); err != nil {
			rejected = append(rejected, string(item))
			continue
		}
		f.facts = append(f.facts, fact)
	}
	if len(rejected) > 0 {
		f.bad = "[" + strings.Join(rejected, ",") + "]"
	}
	return nil
}

// Strings returns the usable facts in document order.
func (f FactList) Strings() []string {
	return f.facts
}

// Malformed returns the rejected tokens when any were present.
func (f FactList) Malformed() (string, bool) {
	return f.bad, f.bad != ""
}

// Flag is a bool field that also accepts "true", "false", "yes" and "no"
// strings in any case. Anything else is reported through Malformed.
type Flag struct {
	value bool
	set   bool
	bad   string
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	*f = Flag{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &f.value); err == nil {
		f.set = true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "yes":
			f.value, f.set = true, true
			return nil
		case "false", "no":
			f.value, f.set = false, true
			return nil
		}
	}
	f.bad = string(data)
	return nil
}

// Ptr returns the value, or nil when absent or malformed.
func (f Flag) Ptr() *bool {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

// Malformed returns the raw token when the field was present but unusable.
func (f Flag) Malformed() (string, bool) {
	return f.bad, f.bad != ""
}
