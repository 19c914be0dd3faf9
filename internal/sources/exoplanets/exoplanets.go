// Package exoplanets reads the exoplanet systems document.
package exoplanets

import (
	"context"
	"fmt"
	"io"

	"github.com/karnadigital/atlas/internal/sources/schema"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/sources"
)

// Document is the exoplanets.json layout.
type Document struct {
	NotableSystems []System `json:"notable_systems"`
}

// System is one planetary system around another star.
type System struct {
	schema.Entry
	PlanetsCount  schema.Number  `json:"planets_count"`
	DistanceLy    schema.Number  `json:"distance_ly"`
	Constellation schema.Text    `json:"constellation"`
	StarType      schema.Text    `json:"star_type"`
	DiscoveryYear catalogs.Value `json:"discovery_year"`
}

// Source reads exoplanets.json.
type Source struct{}

// New creates an exoplanets reader.
func New() *Source { return &Source{} }

// ID implements sources.Source.
func (s *Source) ID() sources.ID { return sources.ExoplanetsID }

// Format implements sources.Source.
func (s *Source) Format() sources.Format { return sources.FormatJSON }

// Read implements sources.Source.
func (s *Source) Read(ctx context.Context, r io.Reader, sink sources.Sink) error {
	var doc Document
	if err := schema.Decode(r, &doc, s.ID()); err != nil {
		return err
	}
	for i, sys := range doc.NotableSystems {
		id, ok := schema.ID(ctx, sys.ID, "notable_systems", i)
		if !ok {
			continue
		}
		if err := schema.Put(ctx, sink, systemObject(ctx, id, sys), sys.Images()); err != nil {
			return err
		}
	}
	return nil
}

// Describe prefixes a system description with its planet count, when known.
func Describe(planets int, description string) string {
	if planets == 0 {
		return description
	}
	return fmt.Sprintf("System with %d known planets.\n\n%s", planets, description)
}

func systemObject(ctx context.Context, id string, sys System) *catalogs.Object {
	sys.Report(ctx, id)
	facts := sys.Facts(constants.MaxFacts)
	planets := 0
	if n := schema.Check(ctx, id, "planets_count", sys.PlanetsCount); n != nil {
		planets = int(*n)
	}
	return &catalogs.Object{
		ID:               id,
		Name:             sys.DisplayName(),
		Type:             catalogs.TypeExoplanetSystem,
		Category:         catalogs.CategoryExoplanets,
		Description:      Describe(planets, schema.Describe(sys.Description.String(), facts, constants.MaxFacts)),
		DistanceLy:       schema.Check(ctx, id, "distance_ly", sys.DistanceLy),
		Constellation:    schema.Str(ctx, id, "constellation", sys.Constellation),
		InterestingFacts: facts,
		Metadata: catalogs.ExoplanetSystemMetadata{
			StarType:      schema.Str(ctx, id, "star_type", sys.StarType),
			DiscoveryYear: sys.DiscoveryYear,
			PlanetsCount:  planets,
		},
	}
}
