package catalogs

import "slices"

// CategoryIndex lists member ids per fixed category in first-processed order.
// An id appears at most once per category.
type CategoryIndex struct {
	members map[Category][]string
	seen    map[Category]map[string]struct{}
}

// NewCategoryIndex creates an index with every fixed category present.
func NewCategoryIndex() *CategoryIndex {
	idx := &CategoryIndex{
		members: make(map[Category][]string, len(categoryOrder)),
		seen:    make(map[Category]map[string]struct{}, len(categoryOrder)),
	}
	for _, c := range categoryOrder {
		idx.members[c] = []string{}
		idx.seen[c] = make(map[string]struct{})
	}
	return idx
}

// Add files id under category. It reports false for unknown categories,
// empty ids and ids already listed.
func (idx *CategoryIndex) Add(category Category, id string) bool {
	seen, ok := idx.seen[category]
	if !ok || id == "" {
		return false
	}
	if _, dup := seen[id]; dup {
		return false
	}
	seen[id] = struct{}{}
	idx.members[category] = append(idx.members[category], id)
	return true
}

// IDs returns a copy of the ids filed under category.
func (idx *CategoryIndex) IDs(category Category) []string {
	return slices.Clone(idx.members[category])
}

// Counts returns the number of members per category.
func (idx *CategoryIndex) Counts() map[Category]int {
	counts := make(map[Category]int, len(idx.members))
	for c, ids := range idx.members {
		counts[c] = len(ids)
	}
	return counts
}

// Clone returns an independent copy of the index.
func (idx *CategoryIndex) Clone() *CategoryIndex {
	cp := NewCategoryIndex()
	for _, c := range categoryOrder {
		for _, id := range idx.members[c] {
			cp.Add(c, id)
		}
	}
	return cp
}

// MarshalJSON writes the categories in their fixed order.
func (idx *CategoryIndex) MarshalJSON() ([]byte, error) {
	keys := make([]string, len(categoryOrder))
	for i, c := range categoryOrder {
		keys[i] = string(c)
	}
	return marshalOrdered(keys, func(key string) []string {
		if ids := idx.members[Category(key)]; ids != nil {
			return ids
		}
		return []string{}
	})
}
