// Package sourcetest provides a recording sink for format reader tests.
package sourcetest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/karnadigital/atlas/pkg/catalogs"
)

// Sink records every call a reader makes, in order.
type Sink struct {
	Objects []*catalogs.Object
	Images  map[string][]string
	Err     error // returned from Upsert when set
}

// NewSink creates an empty recording sink.
func NewSink() *Sink {
	return &Sink{Images: make(map[string][]string)}
}

// Upsert implements sources.Sink.
func (s *Sink) Upsert(_ context.Context, obj *catalogs.Object) error {
	if s.Err != nil {
		return s.Err
	}
	s.Objects = append(s.Objects, obj.Clone())
	return nil
}

// AddImages implements sources.Sink.
func (s *Sink) AddImages(id string, refs ...string) {
	s.Images[id] = append(s.Images[id], refs...)
}

// Get returns the last object upserted under id, or nil.
func (s *Sink) Get(id string) *catalogs.Object {
	for i := len(s.Objects) - 1; i >= 0; i-- {
		if s.Objects[i].ID == id {
			return s.Objects[i]
		}
	}
	return nil
}

// IDs returns the ids upserted, in call order.
func (s *Sink) IDs() []string {
	ids := make([]string, len(s.Objects))
	for i, obj := range s.Objects {
		ids[i] = obj.ID
	}
	return ids
}

// Open opens a file from the package's testdata directory.
func Open(t testing.TB, name string) *os.File {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("opening fixture %s: %v", name, err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}
