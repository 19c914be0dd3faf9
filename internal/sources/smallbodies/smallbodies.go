// Package smallbodies reads the small bodies document: notable asteroids
// and comets.
package smallbodies

import (
	"context"
	"io"

	"github.com/karnadigital/atlas/internal/sources/schema"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/sources"
)

// Document is the small_bodies.json layout.
type Document struct {
	Asteroids struct {
		Notable []Asteroid `json:"notable_asteroids"`
	} `json:"asteroids"`
	Comets struct {
		Notable []Comet `json:"notable_comets"`
	} `json:"comets"`
}

// Asteroid is one notable asteroid.
type Asteroid struct {
	schema.Entry
	DiameterKm    schema.Number  `json:"diameter_km"`
	DiscoveryYear catalogs.Value `json:"discovery_year"`
	Discoverer    schema.Text    `json:"discoverer"`
	Location      schema.Text    `json:"location"`
}

// Comet is one notable comet.
type Comet struct {
	schema.Entry
	OrbitalPeriodYears schema.Number  `json:"orbital_period_years"`
	DiscoveryYear      catalogs.Value `json:"discovery_year"`
	Discoverer         schema.Text    `json:"discoverer"`
}

// Source reads small_bodies.json.
type Source struct{}

// New creates a small bodies reader.
func New() *Source { return &Source{} }

// ID implements sources.Source.
func (s *Source) ID() sources.ID { return sources.SmallBodiesID }

// Format implements sources.Source.
func (s *Source) Format() sources.Format { return sources.FormatJSON }

// Read implements sources.Source.
func (s *Source) Read(ctx context.Context, r io.Reader, sink sources.Sink) error {
	var doc Document
	if err := schema.Decode(r, &doc, s.ID()); err != nil {
		return err
	}

	for i, a := range doc.Asteroids.Notable {
		id, ok := schema.ID(ctx, a.ID, "asteroids.notable_asteroids", i)
		if !ok {
			continue
		}
		a.Report(ctx, id)
		facts := a.Facts(constants.MaxFacts)
		obj := &catalogs.Object{
			ID:               id,
			Name:             a.DisplayName(),
			Type:             catalogs.TypeAsteroid,
			Category:         catalogs.CategorySmallBodies,
			Description:      schema.Describe(a.Description.String(), facts, constants.MaxFacts),
			RadiusKm:         schema.Radius(ctx, id, a.DiameterKm),
			InterestingFacts: facts,
			Metadata: catalogs.AsteroidMetadata{
				DiscoveryYear: a.DiscoveryYear,
				Discoverer:    schema.Str(ctx, id, "discoverer", a.Discoverer),
				Location:      schema.Str(ctx, id, "location", a.Location),
			},
		}
		if err := schema.Put(ctx, sink, obj, a.Images()); err != nil {
			return err
		}
	}

	for i, c := range doc.Comets.Notable {
		id, ok := schema.ID(ctx, c.ID, "comets.notable_comets", i)
		if !ok {
			continue
		}
		c.Report(ctx, id)
		facts := c.Facts(constants.MaxFacts)
		obj := &catalogs.Object{
			ID:               id,
			Name:             c.DisplayName(),
			Type:             catalogs.TypeComet,
			Category:         catalogs.CategorySmallBodies,
			Description:      schema.Describe(c.Description.String(), facts, constants.MaxFacts),
			InterestingFacts: facts,
			Metadata: catalogs.CometMetadata{
				OrbitalPeriodYears: schema.Check(ctx, id, "orbital_period_years", c.OrbitalPeriodYears),
				DiscoveryYear:      c.DiscoveryYear,
				Discoverer:         schema.Str(ctx, id, "discoverer", c.Discoverer),
			},
		}
		if err := schema.Put(ctx, sink, obj, c.Images()); err != nil {
			return err
		}
	}
	return nil
}
