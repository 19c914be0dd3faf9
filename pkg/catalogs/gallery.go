package catalogs

// Gallery collects image references per object id.
//
// Insertion is stable and unique: a reference is kept at the position it was
// first seen and exact duplicates are dropped, so reruns over the same
// sources reproduce the same gallery.
type Gallery struct {
	order  []string
	images map[string][]string
	seen   map[string]map[string]struct{}
}

// NewGallery creates an empty gallery.
func NewGallery() *Gallery {
	return &Gallery{
		images: make(map[string][]string),
		seen:   make(map[string]map[string]struct{}),
	}
}

// Add appends urls to id's collection, skipping empty strings and
// references already present. It returns the number added.
func (g *Gallery) Add(id string, urls ...string) int {
	if id == "" {
		return 0
	}
	added := 0
	for _, url := range urls {
		if url == "" {
			continue
		}
		seen, ok := g.seen[id]
		if !ok {
			seen = make(map[string]struct{})
			g.seen[id] = seen
			g.order = append(g.order, id)
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		g.images[id] = append(g.images[id], url)
		added++
	}
	return added
}

// Images returns a copy of id's references.
func (g *Gallery) Images(id string) []string {
	return append([]string(nil), g.images[id]...)
}

// Len returns the number of ids with at least one image.
func (g *Gallery) Len() int {
	return len(g.order)
}

// Total returns the number of references across all ids.
func (g *Gallery) Total() int {
	n := 0
	for _, urls := range g.images {
		n += len(urls)
	}
	return n
}

// Finalize returns the gallery restricted to ids with at least one image,
// in the order ids first received one.
func (g *Gallery) Finalize() GalleryMap {
	m := GalleryMap{
		IDs:    make([]string, 0, len(g.order)),
		Images: make(map[string][]string, len(g.order)),
	}
	for _, id := range g.order {
		if urls := g.images[id]; len(urls) > 0 {
			m.IDs = append(m.IDs, id)
			m.Images[id] = append([]string(nil), urls...)
		}
	}
	return m
}

// GalleryMap is a finalized gallery. It serializes as a JSON object keyed by
// id, in IDs order.
type GalleryMap struct {
	IDs    []string
	Images map[string][]string
}

// MarshalJSON implements json.Marshaler.
func (m GalleryMap) MarshalJSON() ([]byte, error) {
	return marshalOrdered(m.IDs, func(id string) []string { return m.Images[id] })
}
