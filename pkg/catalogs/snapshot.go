package catalogs

// Snapshot is one consistent view of a finished run, the only input the
// emitter reads.
type Snapshot struct {
	Objects    []*Object      // first-insertion order
	Gallery    GalleryMap     // ids with at least one image
	Categories *CategoryIndex // fixed category order
}

// NewSnapshot copies the current state so later mutation of the sources
// cannot leak into the emitted catalog.
func NewSnapshot(objects *Objects, gallery *Gallery, categories *CategoryIndex) *Snapshot {
	list := objects.List()
	for i, obj := range list {
		list[i] = obj.Clone()
	}
	return &Snapshot{
		Objects:    list,
		Gallery:    gallery.Finalize(),
		Categories: categories.Clone(),
	}
}

// Object returns the object with id, or nil.
func (s *Snapshot) Object(id string) *Object {
	for _, obj := range s.Objects {
		if obj.ID == id {
			return obj
		}
	}
	return nil
}
