// Package constellations reads the constellations document. A constellation
// is placed at the position of its brightest star when that star is known.
package constellations

import (
	"context"
	"encoding/json"
	"io"

	"github.com/karnadigital/atlas/internal/sources/schema"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/coords"
	"github.com/karnadigital/atlas/pkg/ident"
	"github.com/karnadigital/atlas/pkg/sources"
)

// Document is the constellations.json layout.
type Document struct {
	MajorConstellations []Constellation `json:"major_constellations"`
}

// Constellation is one constellation.
type Constellation struct {
	schema.Entry
	Abbreviation  schema.Text    `json:"abbreviation"`
	AreaSqDeg     schema.Number  `json:"area_sq_deg"`
	BrightestStar BrightestStar  `json:"brightest_star"`
	Mythology     catalogs.Value `json:"mythology"`
}

// BrightestStar is the brightest_star field: an object with a name, or a
// bare name string.
type BrightestStar struct {
	Name string `json:"name"`
}

// UnmarshalJSON implements json.Unmarshaler. Other shapes decode as empty.
func (b *BrightestStar) UnmarshalJSON(data []byte) error {
	*b = BrightestStar{}
	if err := json.Unmarshal(data, &b.Name); err == nil {
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		b.Name = obj.Name
	}
	return nil
}

// Source reads constellations.json.
type Source struct{}

// New creates a constellations reader.
func New() *Source { return &Source{} }

// ID implements sources.Source.
func (s *Source) ID() sources.ID { return sources.ConstellationsID }

// Format implements sources.Source.
func (s *Source) Format() sources.Format { return sources.FormatJSON }

// Read implements sources.Source.
func (s *Source) Read(ctx context.Context, r io.Reader, sink sources.Sink) error {
	var doc Document
	if err := schema.Decode(r, &doc, s.ID()); err != nil {
		return err
	}
	for i, c := range doc.MajorConstellations {
		id, ok := schema.ID(ctx, c.ID, "major_constellations", i)
		if !ok {
			continue
		}
		if err := schema.Put(ctx, sink, constellationObject(ctx, id, c), c.Images()); err != nil {
			return err
		}
	}
	return nil
}

func constellationObject(ctx context.Context, id string, c Constellation) *catalogs.Object {
	c.Report(ctx, id)
	facts := c.Facts(constants.MaxConstellationFacts)
	obj := &catalogs.Object{
		ID:               id,
		Name:             c.DisplayName(),
		Type:             catalogs.TypeConstellation,
		Category:         catalogs.CategoryConstellations,
		Description:      schema.Describe(c.Description.String(), facts, constants.MaxConstellationFacts),
		InterestingFacts: facts,
		Metadata: catalogs.ConstellationMetadata{
			Abbreviation:  schema.Str(ctx, id, "abbreviation", c.Abbreviation),
			AreaSqDeg:     schema.Check(ctx, id, "area_sq_deg", c.AreaSqDeg),
			BrightestStar: c.BrightestStar.Name,
			Mythology:     c.Mythology,
		},
	}
	if pos, ok := coords.Resolve(ident.Normalize(c.BrightestStar.Name)); ok && !pos.Placeholder {
		obj.SetCoordinates(pos.RA, pos.Dec)
	}
	return obj
}
