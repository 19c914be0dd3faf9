// Package nebulae reads the nebulae document.
package nebulae

import (
	"context"
	"io"

	"github.com/karnadigital/atlas/internal/sources/schema"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/coords"
	"github.com/karnadigital/atlas/pkg/sources"
)

// Document is the nebulae.json layout.
type Document struct {
	NotableNebulae []Nebula `json:"notable_nebulae"`
}

// Nebula is one notable nebula.
type Nebula struct {
	schema.Entry
	Type          schema.Text    `json:"type"`
	Magnitude     schema.Number  `json:"magnitude"`
	DistanceLy    schema.Number  `json:"distance_ly"`
	Constellation schema.Text    `json:"constellation"`
	SizeLy        catalogs.Value `json:"size_ly"`
}

// Source reads nebulae.json.
type Source struct{}

// New creates a nebulae reader.
func New() *Source { return &Source{} }

// ID implements sources.Source.
func (s *Source) ID() sources.ID { return sources.NebulaeID }

// Format implements sources.Source.
func (s *Source) Format() sources.Format { return sources.FormatJSON }

// Read implements sources.Source.
func (s *Source) Read(ctx context.Context, r io.Reader, sink sources.Sink) error {
	var doc Document
	if err := schema.Decode(r, &doc, s.ID()); err != nil {
		return err
	}
	for i, n := range doc.NotableNebulae {
		id, ok := schema.ID(ctx, n.ID, "notable_nebulae", i)
		if !ok {
			continue
		}
		n.Report(ctx, id)
		facts := n.Facts(constants.MaxFacts)
		obj := &catalogs.Object{
			ID:               id,
			Name:             n.DisplayName(),
			Type:             catalogs.TypeNebula,
			Category:         catalogs.CategoryDeepSky,
			Description:      schema.Describe(n.Description.String(), facts, constants.MaxFacts),
			Magnitude:        schema.Check(ctx, id, "magnitude", n.Magnitude),
			DistanceLy:       schema.Check(ctx, id, "distance_ly", n.DistanceLy),
			Constellation:    schema.Str(ctx, id, "constellation", n.Constellation),
			InterestingFacts: facts,
			Metadata: catalogs.NebulaMetadata{
				NebulaType: schema.Str(ctx, id, "type", n.Type),
				SizeLy:     n.SizeLy,
			},
		}
		if c, ok := coords.Resolve(id); ok {
			obj.SetCoordinates(c.RA, c.Dec)
		}
		if err := schema.Put(ctx, sink, obj, n.Images()); err != nil {
			return err
		}
	}
	return nil
}
