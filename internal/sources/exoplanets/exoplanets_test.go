package exoplanets

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadigital/atlas/internal/sources/sourcetest"
	"github.com/karnadigital/atlas/pkg/catalogs"
)

func TestReadExoplanets(t *testing.T) {
	doc := `{"notable_systems": [
		{"id": "TRAPPIST-1", "name": "TRAPPIST-1", "planets_count": 7, "distance_ly": 40.7,
		 "constellation": "Aquarius", "star_type": "Ultra-cool red dwarf", "discovery_year": 2016,
		 "description": "Seven Earth-sized planets.", "interesting_facts": ["Three in the habitable zone"]},
		{"id": "Kepler-452", "name": "Kepler-452", "description": "Earth's cousin."}
	]}`
	sink := sourcetest.NewSink()
	require.NoError(t, New().Read(context.Background(), strings.NewReader(doc), sink))
	assert.Equal(t, []string{"trappist_1", "kepler_452"}, sink.IDs())

	trappist := sink.Get("trappist_1")
	assert.Equal(t, catalogs.TypeExoplanetSystem, trappist.Type)
	assert.Equal(t, catalogs.CategoryExoplanets, trappist.Category)
	assert.Equal(t, "System with 7 known planets.\n\nSeven Earth-sized planets.\n\n• Three in the habitable zone", trappist.Description)
	assert.Equal(t, 40.7, *trappist.DistanceLy)
	meta := trappist.Metadata.(catalogs.ExoplanetSystemMetadata)
	assert.Equal(t, 7, meta.PlanetsCount)
	assert.Equal(t, "2016", string(meta.DiscoveryYear))

	kepler := sink.Get("kepler_452")
	assert.Equal(t, "Earth's cousin.", kepler.Description)
	assert.Equal(t, 0, kepler.Metadata.(catalogs.ExoplanetSystemMetadata).PlanetsCount)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "base", Describe(0, "base"))
	assert.Equal(t, "System with 1 known planets.\n\n", Describe(1, ""))
}
