// Package sources defines the contracts between the ingestion pipeline and
// the format readers that feed it.
//
// A Source decodes one input document and pushes partial objects and image
// references into a Sink. The pipeline decides, per source, which merge
// policy the Sink applies; readers never see the policy. The Manifest lists
// the declared sources in the order they are applied, which is part of the
// result since upserts do not commute.
//
// Example usage:
//
//	manifest := sources.DefaultManifest()
//	for _, def := range manifest.Enabled() {
//	    src, _ := registry.New(def.ID)
//	    f, _ := os.Open(filepath.Join(root, def.Path))
//	    err := src.Read(ctx, f, acc.Bind(def.Policy))
//	}
package sources

import (
	"context"
	"io"
	"slices"
	"sync"

	"github.com/karnadigital/atlas/pkg/catalogs"
)

// ID represents the identifier of a data source.
type ID string

// String returns the string representation of a source id.
func (id ID) String() string {
	return string(id)
}

// Source ids, in default processing order.
const (
	PlanetsID          ID = "planets"
	StarsID            ID = "stars"
	MoonsID            ID = "moons"
	NebulaeID          ID = "nebulae"
	GalaxiesID         ID = "galaxies"
	ConstellationsID   ID = "constellations"
	SmallBodiesID      ID = "small_bodies"
	ExoplanetsID       ID = "exoplanets"
	CompleteID         ID = "complete"
	StardroidStarsID   ID = "stardroid_stars"
	StardroidMessierID ID = "stardroid_messier"
)

// IDs returns every known source id in default processing order.
func IDs() []ID {
	return []ID{
		PlanetsID,
		StarsID,
		MoonsID,
		NebulaeID,
		GalaxiesID,
		ConstellationsID,
		SmallBodiesID,
		ExoplanetsID,
		CompleteID,
		StardroidStarsID,
		StardroidMessierID,
	}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// Format names the encoding of a source document.
type Format string

// Formats.
const (
	FormatJSON       Format = "json"
	FormatBraceASCII Format = "brace-ascii"
)

// Sink receives a reader's output.
type Sink interface {
	// Upsert stores a partial object under its canonical id.
	Upsert(ctx context.Context, obj *catalogs.Object) error

	// AddImages records image references for id.
	AddImages(id string, refs ...string)
}

// Source decodes one document into a Sink.
type Source interface {
	// ID returns the id of this source
	ID() ID

	// Format returns the document encoding the source reads
	Format() Format

	// Read decodes r and upserts every usable record into sink.
	// A document that cannot be decoded returns a malformed-document error;
	// records already upserted before the failure stay.
	Read(ctx context.Context, r io.Reader, sink Sink) error
}

// Sources is a thread-safe container of constructed sources.
type Sources struct {
	mu      sync.RWMutex
	sources map[ID]Source
}

// NewSources creates a new Sources instance.
func NewSources() *Sources {
	return &Sources{
		sources: make(map[ID]Source),
	}
}

// Get returns a source by ID.
func (s *Sources) Get(id ID) (Source, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src, found := s.sources[id]
	return src, found
}

// Set sets a source by ID.
func (s *Sources) Set(src Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources[src.ID()] = src
}

// Len returns the number of sources.
func (s *Sources) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sources)
}

// IDs returns the ids held, in default processing order.
func (s *Sources) IDs() []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]ID, 0, len(s.sources))
	for _, id := range IDs() {
		if _, ok := s.sources[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
