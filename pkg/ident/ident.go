// Package ident canonicalizes raw object names and ids into catalog keys.
//
// A canonical id is trimmed, lowercased snake case: "Andromeda Galaxy" and
// "andromeda-galaxy" both become "andromeda_galaxy". Readers call Normalize
// exactly once on every raw id before it is used as a key.
package ident

import "strings"

var replacer = strings.NewReplacer(" ", "_", "-", "_")

// Normalize returns the canonical id for raw.
// Normalize(Normalize(s)) == Normalize(s) for all inputs.
func Normalize(raw string) string {
	return replacer.Replace(strings.ToLower(strings.TrimSpace(raw)))
}

// NormalizeStar is Normalize for brace-ASCII ids, where a `*` marks a
// designation suffix and is spelled out as `_star`.
func NormalizeStar(raw string) string {
	return Normalize(strings.ReplaceAll(raw, "*", "_star"))
}

// FromName normalizes raw and reports whether a usable id remains.
func FromName(raw string) (string, bool) {
	id := Normalize(raw)
	return id, id != ""
}
