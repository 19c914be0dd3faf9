// Package stars reads the stars document: the Sun and the brightest stars
// of the night sky.
package stars

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

// SunDescription replaces whatever base description the Sun entry carries.
const SunDescription = "The star at the center of our Solar System."

// Document is the stars.json layout.
type Document struct {
	Sun            *Sun   `json:"the_sun"`
	BrightestStars []Star `json:"brightest_stars"`
}

// Sun is the the_sun entry.
type Sun struct {
	schema.Entry
	DiameterKm      schema.Number `json:"diameter_km"`
	SpectralClass   schema.Text   `json:"spectral_class"`
	SurfaceTempC    schema.Number `json:"surface_temp_c"`
	AgeBillionYears schema.Number `json:"age_billion_years"`
}

// Star is one of the brightest stars.
type Star struct {
	schema.Entry
	ApparentMagnitude schema.Number `json:"apparent_magnitude"`
	DistanceLy        schema.Number `json:"distance_ly"`
	Constellation     schema.Text   `json:"constellation"`
	SpectralType      schema.Text   `json:"spectral_type"`
	MassSolar         schema.Number `json:"mass_solar"`
	RadiusSolar       schema.Number `json:"radius_solar"`
	LuminositySolar   schema.Number `json:"luminosity_solar"`
}

// Source reads stars.json.
type Source struct{}

// New creates a stars reader.
func New() *Source { return &Source{} }

// ID implements sources.Source.
func (s *Source) ID() sources.ID { return sources.StarsID }

// Format implements sources.Source.
func (s *Source) Format() sources.Format { return sources.FormatJSON }

// Read implements sources.Source.
func (s *Source) Read(ctx context.Context, r io.Reader, sink sources.Sink) error {
	var doc Document
	if err := schema.Decode(r, &doc, s.ID()); err != nil {
		return err
	}

	if doc.Sun != nil {
		if id, ok := schema.ID(ctx, doc.Sun.ID, "the_sun", 0); ok {
			if err := schema.Put(ctx, sink, sunObject(ctx, id, *doc.Sun), doc.Sun.Images()); err != nil {
				return err
			}
		}
	}

	for i, star := range doc.BrightestStars {
		id, ok := schema.ID(ctx, star.ID, "brightest_stars", i)
		if !ok {
			continue
		}
		if err := schema.Put(ctx, sink, starObject(ctx, id, star), star.Images()); err != nil {
			return err
		}
	}
	return nil
}

func sunObject(ctx context.Context, id string, sun Sun) *catalogs.Object {
	sun.Report(ctx, id)
	facts := sun.Facts(constants.MaxFacts)
	obj := &catalogs.Object{
		ID:               id,
		Name:             sun.DisplayName(),
		Type:             catalogs.TypeStar,
		Category:         catalogs.CategorySolarSystem,
		Description:      schema.Describe(SunDescription, facts, constants.MaxFacts),
		RadiusKm:         schema.Radius(ctx, id, sun.DiameterKm),
		Magnitude:        ptr.Float64(constants.SunMagnitude),
		InterestingFacts: facts,
		Metadata: catalogs.SunMetadata{
			SpectralClass:   schema.Str(ctx, id, "spectral_class", sun.SpectralClass),
			SurfaceTempC:    schema.Check(ctx, id, "surface_temp_c", sun.SurfaceTempC),
			AgeBillionYears: schema.Check(ctx, id, "age_billion_years", sun.AgeBillionYears),
		},
	}
	// The Sun has no fixed sky position; 0/0 is a placeholder.
	obj.SetCoordinates(0, 0)
	return obj
}

func starObject(ctx context.Context, id string, star Star) *catalogs.Object {
	star.Report(ctx, id)
	facts := star.Facts(constants.MaxFacts)
	obj := &catalogs.Object{
		ID:               id,
		Name:             star.DisplayName(),
		Type:             catalogs.TypeStar,
		Category:         catalogs.DefaultCategory(catalogs.TypeStar, id),
		Description:      schema.Describe(star.Description.String(), facts, constants.MaxFacts),
		Magnitude:        schema.Check(ctx, id, "apparent_magnitude", star.ApparentMagnitude),
		DistanceLy:       schema.Check(ctx, id, "distance_ly", star.DistanceLy),
		Constellation:    schema.Str(ctx, id, "constellation", star.Constellation),
		InterestingFacts: facts,
		Metadata: catalogs.StarMetadata{
			SpectralType:    schema.Str(ctx, id, "spectral_type", star.SpectralType),
			MassSolar:       schema.Check(ctx, id, "mass_solar", star.MassSolar),
			RadiusSolar:     schema.Check(ctx, id, "radius_solar", star.RadiusSolar),
			LuminositySolar: schema.Check(ctx, id, "luminosity_solar", star.LuminositySolar),
		},
	}
	if c, ok := coords.Resolve(id); ok {
		obj.SetCoordinates(c.RA, c.Dec)
	}
	return obj
}
