// Package complete reads the consolidated astronomy document. It overlaps
// the per-schema documents and is merged over them, so it mostly fills gaps
// and contributes image references.
package complete

import (
	"context"
	"io"

	"github.com/karnadigital/atlas/internal/sources/schema"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/sources"
)

// Document is the astronomy_data_complete.json layout.
type Document struct {
	SolarSystem struct {
		Sun          *Body  `json:"sun"`
		Planets      []Body `json:"planets"`
		DwarfPlanets []Body `json:"dwarf_planets"`
	} `json:"solar_system"`
	Stars struct {
		Brightest []Star `json:"brightest"`
	} `json:"stars"`
	Galaxies   []DeepSky `json:"galaxies"`
	Nebulae    []DeepSky `json:"nebulae"`
	BlackHoles []DeepSky `json:"black_holes"`
}

// Body is a Sun, planet or dwarf planet entry. Entries are keyed by name.
type Body struct {
	Name              schema.Text   `json:"name"`
	Description       schema.Text   `json:"description"`
	DiameterKm        schema.Number `json:"diameter_km"`
	DistanceFromSunAU schema.Number `json:"distance_from_sun_au"`
	schema.Imagery
}

// Star is a stars.brightest entry.
type Star struct {
	Name               schema.Text   `json:"name"`
	Description        schema.Text   `json:"description"`
	ApparentMagnitude  schema.Number `json:"apparentMagnitude"`
	DistanceLightYears schema.Number `json:"distanceLightYears"`
	Constellation      schema.Text   `json:"constellation"`
	schema.Imagery
}

// DeepSky is a galaxy, nebula or black hole entry.
type DeepSky struct {
	Name               schema.Text   `json:"name"`
	Description        schema.Text   `json:"description"`
	NotableFeatures    schema.Text   `json:"notableFeatures"`
	DistanceLightYears schema.Number `json:"distanceLightYears"`
	Constellation      schema.Text   `json:"constellation"`
	schema.Imagery
}

// Source reads the consolidated document.
type Source struct{}

// New creates a consolidated document reader.
func New() *Source { return &Source{} }

// ID implements sources.Source.
func (s *Source) ID() sources.ID { return sources.CompleteID }

// Format implements sources.Source.
func (s *Source) Format() sources.Format { return sources.FormatJSON }

// Read implements sources.Source.
func (s *Source) Read(ctx context.Context, r io.Reader, sink sources.Sink) error {
	var doc Document
	if err := schema.Decode(r, &doc, s.ID()); err != nil {
		return err
	}

	var objects []*catalogs.Object
	var images [][]string
	add := func(obj *catalogs.Object, im schema.Imagery) {
		refs := im.Images()
		if len(refs) > 0 {
			obj.ImageURL = refs[0]
		}
		objects = append(objects, obj)
		images = append(images, refs)
	}

	ss := doc.SolarSystem
	if ss.Sun != nil {
		name := schema.Str(ctx, catalogs.SunID, "name", ss.Sun.Name)
		if name == "" {
			name = "Sun"
		}
		add(&catalogs.Object{
			ID:          catalogs.SunID,
			Name:        name,
			Type:        catalogs.TypeStar,
			Category:    catalogs.CategorySolarSystem,
			Description: schema.Str(ctx, catalogs.SunID, "description", ss.Sun.Description),
			RadiusKm:    schema.Radius(ctx, catalogs.SunID, ss.Sun.DiameterKm),
		}, ss.Sun.Imagery)
	}
	for i, p := range ss.Planets {
		if id, ok := schema.ID(ctx, p.Name, "solar_system.planets", i); ok {
			add(bodyObject(ctx, id, p, catalogs.TypePlanet), p.Imagery)
		}
	}
	for i, p := range ss.DwarfPlanets {
		if id, ok := schema.ID(ctx, p.Name, "solar_system.dwarf_planets", i); ok {
			add(bodyObject(ctx, id, p, catalogs.TypeDwarfPlanet), p.Imagery)
		}
	}

	for i, star := range doc.Stars.Brightest {
		id, ok := schema.ID(ctx, star.Name, "stars.brightest", i)
		if !ok {
			continue
		}
		add(&catalogs.Object{
			ID:            id,
			Name:          star.Name.String(),
			Type:          catalogs.TypeStar,
			Category:      catalogs.DefaultCategory(catalogs.TypeStar, id),
			Description:   schema.Str(ctx, id, "description", star.Description),
			Magnitude:     schema.Check(ctx, id, "apparentMagnitude", star.ApparentMagnitude),
			DistanceLy:    schema.Check(ctx, id, "distanceLightYears", star.DistanceLightYears),
			Constellation: schema.Str(ctx, id, "constellation", star.Constellation),
		}, star.Imagery)
	}

	sections := []struct {
		name    string
		entries []DeepSky
		typ     catalogs.ObjectType
	}{
		{"galaxies", doc.Galaxies, catalogs.TypeGalaxy},
		{"nebulae", doc.Nebulae, catalogs.TypeNebula},
		{"black_holes", doc.BlackHoles, catalogs.TypeBlackHole},
	}
	for _, section := range sections {
		for i, e := range section.entries {
			if id, ok := schema.ID(ctx, e.Name, section.name, i); ok {
				add(deepSkyObject(ctx, id, e, section.typ), e.Imagery)
			}
		}
	}

	for i, obj := range objects {
		if err := schema.Put(ctx, sink, obj, images[i]); err != nil {
			return err
		}
	}
	return nil
}

func bodyObject(ctx context.Context, id string, b Body, typ catalogs.ObjectType) *catalogs.Object {
	return &catalogs.Object{
		ID:          id,
		Name:        b.Name.String(),
		Type:        typ,
		Category:    catalogs.CategorySolarSystem,
		Description: schema.Str(ctx, id, "description", b.Description),
		RadiusKm:    schema.Radius(ctx, id, b.DiameterKm),
		DistanceAu:  schema.Check(ctx, id, "distance_from_sun_au", b.DistanceFromSunAU),
		ParentID:    catalogs.SunID,
	}
}

// deepSkyObject builds a galaxy, nebula or black hole. Galaxies describe
// themselves through notableFeatures.
func deepSkyObject(ctx context.Context, id string, e DeepSky, typ catalogs.ObjectType) *catalogs.Object {
	description := schema.Str(ctx, id, "description", e.Description)
	if features := schema.Str(ctx, id, "notableFeatures", e.NotableFeatures); typ == catalogs.TypeGalaxy && features != "" {
		description = features
	}
	obj := &catalogs.Object{
		ID:          id,
		Name:        e.Name.String(),
		Type:        typ,
		Category:    catalogs.DefaultCategory(typ, id),
		Description: description,
		DistanceLy:  schema.Check(ctx, id, "distanceLightYears", e.DistanceLightYears),
	}
	if typ != catalogs.TypeBlackHole {
		obj.Constellation = schema.Str(ctx, id, "constellation", e.Constellation)
	}
	return obj
}
