package constellations

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadigital/atlas/internal/sources/sourcetest"
	"github.com/karnadigital/atlas/pkg/catalogs"
)

func TestReadConstellations(t *testing.T) {
	doc := `{"major_constellations": [
		{"id": "Orion", "name": "Orion", "abbreviation": "Ori", "area_sq_deg": 594,
		 "brightest_star": {"name": "Rigel", "magnitude": 0.13},
		 "mythology": "A hunter", "description": "The hunter.",
		 "interesting_facts": ["one", "two", "three", "four"]},
		{"id": "Lyra", "brightest_star": "Vega"},
		{"id": "Crux", "brightest_star": {"name": "Acrux"}},
		{"id": "Draco", "brightest_star": 7}
	]}`
	sink := sourcetest.NewSink()
	require.NoError(t, New().Read(context.Background(), strings.NewReader(doc), sink))
	assert.Equal(t, []string{"orion", "lyra", "crux", "draco"}, sink.IDs())

	orion := sink.Get("orion")
	assert.Equal(t, catalogs.TypeConstellation, orion.Type)
	assert.Equal(t, catalogs.CategoryConstellations, orion.Category)
	assert.Equal(t, "The hunter.\n\n• one\n• two\n• three", orion.Description)
	assert.Equal(t, []string{"one", "two", "three"}, orion.InterestingFacts)
	assert.Equal(t, 78.6, *orion.RightAscension)
	assert.Equal(t, -8.2, *orion.Declination)
	meta := orion.Metadata.(catalogs.ConstellationMetadata)
	assert.Equal(t, "Ori", meta.Abbreviation)
	assert.Equal(t, 594.0, *meta.AreaSqDeg)
	assert.Equal(t, "Rigel", meta.BrightestStar)
	assert.Equal(t, `"A hunter"`, string(meta.Mythology))

	assert.Equal(t, 279.3, *sink.Get("lyra").RightAscension)
	assert.Nil(t, sink.Get("crux").RightAscension, "star not in the table")
	assert.Nil(t, sink.Get("draco").RightAscension)
	assert.Empty(t, sink.Get("draco").Metadata.(catalogs.ConstellationMetadata).BrightestStar)
}
