package smallbodies

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadigital/atlas/internal/sources/sourcetest"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/errors"
)

func TestReadSmallBodies(t *testing.T) {
	doc := `{
		"asteroids": {"description": "Rocky bodies", "notable_asteroids": [
			{"id": "Ceres-Asteroid", "name": "Ceres", "diameter_km": 939.4, "discovery_year": 1801,
			 "discoverer": "Giuseppe Piazzi", "location": "Main belt"},
			{"id": "Vesta", "name": "Vesta", "diameter_km": 0}
		]},
		"comets": {"notable_comets": [
			{"id": "Halley's Comet", "name": "Halley's Comet", "orbital_period_years": 76,
			 "discovery_year": "Ancient", "discoverer": "Edmond Halley",
			 "interesting_facts": ["Next visit 2061"], "image_url": "halley.jpg"}
		]}
	}`
	sink := sourcetest.NewSink()
	require.NoError(t, New().Read(context.Background(), strings.NewReader(doc), sink))
	assert.Equal(t, []string{"ceres_asteroid", "vesta", "halley's_comet"}, sink.IDs())

	ceres := sink.Get("ceres_asteroid")
	assert.Equal(t, catalogs.TypeAsteroid, ceres.Type)
	assert.Equal(t, catalogs.CategorySmallBodies, ceres.Category)
	assert.Equal(t, 469.7, *ceres.RadiusKm)
	meta := ceres.Metadata.(catalogs.AsteroidMetadata)
	assert.Equal(t, "1801", string(meta.DiscoveryYear))
	assert.Equal(t, "Main belt", meta.Location)

	assert.Nil(t, sink.Get("vesta").RadiusKm)

	halley := sink.Get("halley's_comet")
	assert.Equal(t, catalogs.TypeComet, halley.Type)
	assert.Equal(t, catalogs.CategorySmallBodies, halley.Category)
	assert.Equal(t, 76.0, *halley.Metadata.(catalogs.CometMetadata).OrbitalPeriodYears)
	assert.Equal(t, []string{"halley.jpg"}, sink.Images["halley's_comet"])
}

func TestReadOnlyComets(t *testing.T) {
	sink := sourcetest.NewSink()
	require.NoError(t, New().Read(context.Background(), strings.NewReader(`{"comets": {"notable_comets": [{"id": "Encke"}]}}`), sink))
	assert.Equal(t, []string{"encke"}, sink.IDs())
}

func TestReadMalformed(t *testing.T) {
	err := New().Read(context.Background(), strings.NewReader(`{"asteroids": []}`), sourcetest.NewSink())
	assert.True(t, errors.IsMalformedDocument(err))
}
