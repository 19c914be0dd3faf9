// Package moons reads the moons document.
package moons

import (
	"context"
	"io"

	"github.com/karnadigital/atlas/internal/sources/schema"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/ident"
	"github.com/karnadigital/atlas/pkg/sources"
)

// UnknownParent is the parent id of a moon that names no planet.
const UnknownParent = "unknown"

// Document is the moons.json layout.
type Document struct {
	MajorMoons []Moon `json:"major_moons"`
}

// Moon is one natural satellite.
type Moon struct {
	schema.Entry
	Planet               schema.Text    `json:"planet"`
	DiameterKm           schema.Number  `json:"diameter_km"`
	Magnitude            schema.Number  `json:"magnitude"`
	MassKg               schema.Number  `json:"mass_kg"`
	OrbitalPeriodDays    schema.Number  `json:"orbital_period_days"`
	Discovered           catalogs.Value `json:"discovered"`
	DistanceFromPlanetKm schema.Number  `json:"distance_from_planet_km"`
}

// Source reads moons.json.
type Source struct{}

// New creates a moons reader.
func New() *Source { return &Source{} }

// ID implements sources.Source.
func (s *Source) ID() sources.ID { return sources.MoonsID }

// Format implements sources.Source.
func (s *Source) Format() sources.Format { return sources.FormatJSON }

// Read implements sources.Source.
func (s *Source) Read(ctx context.Context, r io.Reader, sink sources.Sink) error {
	var doc Document
	if err := schema.Decode(r, &doc, s.ID()); err != nil {
		return err
	}
	for i, moon := range doc.MajorMoons {
		id, ok := schema.ID(ctx, moon.ID, "major_moons", i)
		if !ok {
			continue
		}
		if err := schema.Put(ctx, sink, moonObject(ctx, id, moon), moon.Images()); err != nil {
			return err
		}
	}
	return nil
}

// Parent returns the canonical id of the planet a moon orbits.
func Parent(planet string) string {
	if id, ok := ident.FromName(planet); ok {
		return id
	}
	return UnknownParent
}

func moonObject(ctx context.Context, id string, moon Moon) *catalogs.Object {
	moon.Report(ctx, id)
	facts := moon.Facts(constants.MaxFacts)
	return &catalogs.Object{
		ID:               id,
		Name:             moon.DisplayName(),
		Type:             catalogs.TypeMoon,
		Category:         catalogs.CategorySolarSystem,
		Description:      schema.Describe(moon.Description.String(), facts, constants.MaxFacts),
		RadiusKm:         schema.Radius(ctx, id, moon.DiameterKm),
		Magnitude:        schema.Check(ctx, id, "magnitude", moon.Magnitude),
		MassKg:           schema.Check(ctx, id, "mass_kg", moon.MassKg),
		ParentID:         Parent(schema.Str(ctx, id, "planet", moon.Planet)),
		InterestingFacts: facts,
		Metadata: catalogs.MoonMetadata{
			MassKg:               moon.MassKg.Ptr(),
			OrbitalPeriodDays:    schema.Check(ctx, id, "orbital_period_days", moon.OrbitalPeriodDays),
			Discovered:           moon.Discovered,
			DistanceFromPlanetKm: schema.Check(ctx, id, "distance_from_planet_km", moon.DistanceFromPlanetKm),
		},
	}
}
