// Package galaxies reads the galaxies document.
package galaxies

import (
	"context"
	"io"

	"github.com/karnadigital/atlas/internal/sources/schema"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/coords"
	"github.com/karnadigital/atlas/pkg/sources"
)

// Document is the galaxies.json layout.
type Document struct {
	NotableGalaxies []Galaxy `json:"notable_galaxies"`
}

// Galaxy is one notable galaxy.
type Galaxy struct {
	schema.Entry
	Type          schema.Text    `json:"type"`
	Magnitude     schema.Number  `json:"magnitude"`
	DistanceLy    schema.Number  `json:"distance_ly"`
	Constellation schema.Text    `json:"constellation"`
	DiameterLy    catalogs.Value `json:"diameter_ly"`
}

// Source reads galaxies.json.
type Source struct{}

// New creates a galaxies reader.
func New() *Source { return &Source{} }

// ID implements sources.Source.
func (s *Source) ID() sources.ID { return sources.GalaxiesID }

// Format implements sources.Source.
func (s *Source) Format() sources.Format { return sources.FormatJSON }

// Read implements sources.Source.
func (s *Source) Read(ctx context.Context, r io.Reader, sink sources.Sink) error {
	var doc Document
	if err := schema.Decode(r, &doc, s.ID()); err != nil {
		return err
	}
	for i, g := range doc.NotableGalaxies {
		id, ok := schema.ID(ctx, g.ID, "notable_galaxies", i)
		if !ok {
			continue
		}
		if err := schema.Put(ctx, sink, galaxyObject(ctx, id, g), g.Images()); err != nil {
			return err
		}
	}
	return nil
}

func galaxyObject(ctx context.Context, id string, g Galaxy) *catalogs.Object {
	g.Report(ctx, id)
	facts := g.Facts(constants.MaxFacts)
	obj := &catalogs.Object{
		ID:               id,
		Name:             g.DisplayName(),
		Type:             catalogs.TypeGalaxy,
		Category:         catalogs.CategoryDeepSky,
		Description:      schema.Describe(g.Description.String(), facts, constants.MaxFacts),
		Magnitude:        schema.Check(ctx, id, "magnitude", g.Magnitude),
		DistanceLy:       schema.Check(ctx, id, "distance_ly", g.DistanceLy),
		Constellation:    schema.Str(ctx, id, "constellation", g.Constellation),
		InterestingFacts: facts,
		Metadata: catalogs.GalaxyMetadata{
			GalaxyType: schema.Str(ctx, id, "type", g.Type),
			DiameterLy: g.DiameterLy,
		},
	}
	if c, ok := coords.Resolve(id); ok {
		obj.SetCoordinates(c.RA, c.Dec)
	}
	return obj
}
