package reconcile

import (
	"unicode/utf8"

	"github.com/karnadigital/atlas/internal/utils/ptr"
	"github.com/karnadigital/atlas/pkg/catalogs"
)

// MergeObjects reconciles incoming into a copy of existing:
//
//   - Description: the longer by character count wins; a tie keeps existing.
//   - InterestingFacts: union by exact value, existing order first.
//   - Magnitude, DistanceLy, DistanceAu, RadiusKm, MassKg: existing wins when
//     present.
//   - RightAscension, Declination: incoming wins whenever present.
//   - Name, Type, Category: existing wins; an empty name is filled.
//   - ParentID, Constellation, ImageURL, Metadata: existing wins when present.
//
// The coordinate rule is deliberately the opposite of the scalar rule.
func MergeObjects(existing, incoming *catalogs.Object) *catalogs.Object {
	merged := existing.Clone()
	if incoming == nil {
		return merged
	}

	if utf8.RuneCountInString(incoming.Description) > utf8.RuneCountInString(merged.Description) {
		merged.Description = incoming.Description
	}

	merged.InterestingFacts = unionFacts(merged.InterestingFacts, incoming.InterestingFacts)

	merged.Magnitude = keepExisting(merged.Magnitude, incoming.Magnitude)
	merged.DistanceLy = keepExisting(merged.DistanceLy, incoming.DistanceLy)
	merged.DistanceAu = keepExisting(merged.DistanceAu, incoming.DistanceAu)
	merged.RadiusKm = keepExisting(merged.RadiusKm, incoming.RadiusKm)
	merged.MassKg = keepExisting(merged.MassKg, incoming.MassKg)

	if incoming.RightAscension != nil {
		merged.RightAscension = ptr.Clone(incoming.RightAscension)
	}
	if incoming.Declination != nil {
		merged.Declination = ptr.Clone(incoming.Declination)
	}

	if merged.Name == "" {
		merged.Name = incoming.Name
	}
	if merged.Type == "" {
		merged.Type = incoming.Type
	}
	if merged.Category == "" {
		merged.Category = incoming.Category
	}

	merged.ParentID = firstNonEmpty(merged.ParentID, incoming.ParentID)
	merged.Constellation = firstNonEmpty(merged.Constellation, incoming.Constellation)
	merged.ImageURL = firstNonEmpty(merged.ImageURL, incoming.ImageURL)
	if merged.Metadata == nil {
		merged.Metadata = incoming.Metadata
	}

	return merged
}

func keepExisting(existing, incoming *float64) *float64 {
	if existing != nil {
		return existing
	}
	return ptr.Clone(incoming)
}

func firstNonEmpty(existing, incoming string) string {
	if existing != "" {
		return existing
	}
	return incoming
}

func unionFacts(existing, incoming []string) []string {
	if len(incoming) == 0 {
		return existing
	}
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, list := range [][]string{existing, incoming} {
		for _, fact := range list {
			if _, dup := seen[fact]; dup {
				continue
			}
			seen[fact] = struct{}{}
			out = append(out, fact)
		}
	}
	return out
}
