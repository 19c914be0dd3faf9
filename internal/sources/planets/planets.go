// Package planets reads the planets document: the major planets and the
// dwarf planets, all orbiting the Sun.
package planets

import (
	"context"
	"io"

	"github.com/karnadigital/atlas/internal/sources/schema"
	"github.com/karnadigital/atlas/internal/utils/ptr"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/coords"
	"github.com/karnadigital/atlas/pkg/sources"
)

// Document is the planets.json layout.
type Document struct {
	Planets      []Planet      `json:"planets"`
	DwarfPlanets []DwarfPlanet `json:"dwarf_planets"`
}

// Planet is one major planet.
type Planet struct {
	schema.Entry
	DistanceFromSunAU   schema.Number  `json:"distance_from_sun_au"`
	DiameterKm          schema.Number  `json:"diameter_km"`
	MassKg              schema.Number  `json:"mass_kg"`
	OrbitalPeriodDays   schema.Number  `json:"orbital_period_days"`
	RotationPeriodHours schema.Number  `json:"rotation_period_hours"`
	MoonsCount          schema.Number  `json:"moons_count"`
	HasRings            schema.Flag    `json:"has_rings"`
	Atmosphere          catalogs.Value `json:"atmosphere"`
}

// DwarfPlanet is one dwarf planet.
type DwarfPlanet struct {
	schema.Entry
	DistanceFromSunAU schema.Number `json:"distance_from_sun_au"`
	DiameterKm        schema.Number `json:"diameter_km"`
	MoonsCount        schema.Number `json:"moons_count"`
}

// magnitudes are typical apparent magnitudes; Earth's is as seen from Venus.
var magnitudes = map[string]float64{
	"mercury": -0.4,
	"venus":   -4.6,
	"earth":   -3.99,
	"mars":    -2.94,
	"jupiter": -2.94,
	"saturn":  0.46,
	"uranus":  5.68,
	"neptune": 7.78,
}

// Magnitude returns the fixed apparent magnitude of a planet, if known.
func Magnitude(id string) (float64, bool) {
	m, ok := magnitudes[id]
	return m, ok
}

// Source reads planets.json.
type Source struct{}

// New creates a planets reader.
func New() *Source { return &Source{} }

// ID implements sources.Source.
func (s *Source) ID() sources.ID { return sources.PlanetsID }

// Format implements sources.Source.
func (s *Source) Format() sources.Format { return sources.FormatJSON }

// Read implements sources.Source.
func (s *Source) Read(ctx context.Context, r io.Reader, sink sources.Sink) error {
	var doc Document
	if err := schema.Decode(r, &doc, s.ID()); err != nil {
		return err
	}

	for i, p := range doc.Planets {
		id, ok := schema.ID(ctx, p.ID, "planets", i)
		if !ok {
			continue
		}
		if err := schema.Put(ctx, sink, planetObject(ctx, id, p), p.Images()); err != nil {
			return err
		}
	}

	for i, d := range doc.DwarfPlanets {
		id, ok := schema.ID(ctx, d.ID, "dwarf_planets", i)
		if !ok {
			continue
		}
		if err := schema.Put(ctx, sink, dwarfObject(ctx, id, d), d.Images()); err != nil {
			return err
		}
	}
	return nil
}

func planetObject(ctx context.Context, id string, p Planet) *catalogs.Object {
	p.Report(ctx, id)
	facts := p.Facts(constants.MaxFacts)
	obj := &catalogs.Object{
		ID:               id,
		Name:             p.DisplayName(),
		Type:             catalogs.TypePlanet,
		Category:         catalogs.CategorySolarSystem,
		Description:      schema.Describe(p.Description.String(), facts, constants.MaxFacts),
		DistanceAu:       schema.Check(ctx, id, "distance_from_sun_au", p.DistanceFromSunAU),
		RadiusKm:         schema.Radius(ctx, id, p.DiameterKm),
		MassKg:           schema.Check(ctx, id, "mass_kg", p.MassKg),
		ParentID:         catalogs.SunID,
		InterestingFacts: facts,
		Metadata: catalogs.PlanetMetadata{
			MassKg:              p.MassKg.Ptr(),
			OrbitalPeriodDays:   schema.Check(ctx, id, "orbital_period_days", p.OrbitalPeriodDays),
			RotationPeriodHours: schema.Check(ctx, id, "rotation_period_hours", p.RotationPeriodHours),
			MoonsCount:          p.MoonsCount.IntPtr(),
			HasRings:            schema.Bool(ctx, id, "has_rings", p.HasRings),
			Atmosphere:          p.Atmosphere,
		},
	}
	if m, ok := Magnitude(id); ok {
		obj.Magnitude = ptr.Float64(m)
	}
	if c, ok := coords.Resolve(id); ok {
		obj.SetCoordinates(c.RA, c.Dec)
	}
	return obj
}

func dwarfObject(ctx context.Context, id string, d DwarfPlanet) *catalogs.Object {
	d.Report(ctx, id)
	return &catalogs.Object{
		ID:          id,
		Name:        d.DisplayName(),
		Type:        catalogs.TypeDwarfPlanet,
		Category:    catalogs.CategorySolarSystem,
		Description: d.Description.String(),
		DistanceAu:  schema.Check(ctx, id, "distance_from_sun_au", d.DistanceFromSunAU),
		RadiusKm:    schema.Radius(ctx, id, d.DiameterKm),
		Magnitude:   ptr.Float64(constants.DwarfPlanetMagnitude),
		ParentID:    catalogs.SunID,
		Metadata: catalogs.DwarfPlanetMetadata{
			MoonsCount: d.MoonsCount.IntPtr(),
		},
	}
}
