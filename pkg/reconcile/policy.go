// Package reconcile owns the canonical id to object map and the precedence
// rules applied when several sources contribute the same object.
//
// Two policies exist. Replace lets the incoming record overwrite the stored
// one. Merge reconciles field by field. Neither is commutative, so the order
// in which sources are applied is part of the result.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/karnadigital/atlas/pkg/errors"
)

// Policy selects how an upsert treats an existing record.
type Policy string

// Policies.
const (
	PolicyReplace Policy = "replace"
	PolicyMerge   Policy = "merge"
)

// String returns the string representation of a Policy.
func (p Policy) String() string {
	return string(p)
}

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	return p == PolicyReplace || p == PolicyMerge
}

// ParsePolicy parses a policy name, case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", errors.NewValidationError("policy", s,
			fmt.Sprintf("unknown policy %q (want %q or %q)", s, PolicyReplace, PolicyMerge))
	}
	return p, nil
}
