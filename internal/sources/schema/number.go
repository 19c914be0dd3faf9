// Package schema holds the building blocks shared by the JSON format readers:
// lenient scalar types, image reference extraction and description assembly.
package schema

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a float field that also accepts numeric strings. A value that is
// neither is kept out of the record and reported through Malformed, so one
// bad field never fails the whole document.
type Number struct {
	value float64
	set   bool
	bad   string
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	token := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			n.bad = token
			return nil
		}
		token = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
		if token == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		n.bad = string(data)
		return nil
	}
	n.value, n.set = v, true
	return nil
}

// Valid reports whether a usable value was decoded.
func (n Number) Valid() bool {
	return n.set
}

// Value returns the decoded value, 0 when absent.
func (n Number) Value() float64 {
	return n.value
}

// Ptr returns the value, or nil when absent.
func (n Number) Ptr() *float64 {
	if !n.set {
		return nil
	}
	v := n.value
	return &v
}

// IntPtr returns the value truncated to an int, or nil when absent.
func (n Number) IntPtr() *int {
	if !n.set {
		return nil
	}
	v := int(n.value)
	return &v
}

// Malformed returns the raw token when the field was present but unusable.
func (n Number) Malformed() (string, bool) {
	return n.bad, n.bad != ""
}

// Of returns a set Number, for building documents in code.
func Of(v float64) Number {
	return Number{value: v, set: true}
}
