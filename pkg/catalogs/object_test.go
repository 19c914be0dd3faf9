package catalogs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadigital/atlas/internal/utils/ptr"
)

func TestObjectJSONOmitsAbsentOptionals(t *testing.T) {
	obj := &Object{
		ID:       "pluto",
		Name:     "Pluto",
		Type:     TypeDwarfPlanet,
		Category: CategorySolarSystem,
		ParentID: SunID,
	}

	data, err := json.Marshal(obj)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "pluto", raw["id"])
	assert.Equal(t, "DWARF_PLANET", raw["type"])
	assert.Equal(t, "Solar System", raw["category"])
	for _, key := range []string{"radiusKm", "magnitude", "rightAscension", "declination", "metadata", "imageUrl"} {
		assert.NotContains(t, raw, key)
	}
}

func TestObjectJSONFlattensMetadata(t *testing.T) {
	obj := &Object{
		ID:       "earth",
		Name:     "Earth",
		Type:     TypePlanet,
		Category: CategorySolarSystem,
		RadiusKm: ptr.Float64(6378),
		Metadata: PlanetMetadata{
			MoonsCount: ptr.To(1),
			HasRings:   ptr.To(false),
			Atmosphere: Value(`["N2","O2"]`),
		},
	}

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"metadata":{"moons_count":1,"has_rings":false,"atmosphere":["N2","O2"]}`)
	assert.Contains(t, string(data), `"radiusKm":6378`)

	var back Object
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "earth", back.ID)
	require.NotNil(t, back.RadiusKm)
	assert.Equal(t, 6378.0, *back.RadiusKm)
	require.IsType(t, RawMetadata{}, back.Metadata)
	assert.Equal(t, MetadataRaw, back.Metadata.Kind())

	again, err := json.Marshal(&back)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestValueSkipsNull(t *testing.T) {
	var m MoonMetadata
	require.NoError(t, json.Unmarshal([]byte(`{"discovered":null,"mass_kg":1.5}`), &m))
	assert.Nil(t, m.Discovered)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mass_kg":1.5}`, string(data))
}

func TestObjectClone(t *testing.T) {
	orig := &Object{
		ID:               "vega",
		Magnitude:        ptr.Float64(0.03),
		InterestingFacts: []string{"a"},
	}
	orig.SetCoordinates(279.3, 38.78)

	cp := orig.Clone()
	*cp.Magnitude = 9
	*cp.RightAscension = 1
	cp.InterestingFacts[0] = "b"

	assert.Equal(t, 0.03, *orig.Magnitude)
	assert.Equal(t, 279.3, *orig.RightAscension)
	assert.Equal(t, "a", orig.InterestingFacts[0])
	assert.True(t, orig.HasCoordinates())
	assert.Nil(t, (*Object)(nil).Clone())
}

func TestDefaultCategory(t *testing.T) {
	tests := []struct {
		typ  ObjectType
		id   string
		want Category
	}{
		{TypePlanet, "mars", CategorySolarSystem},
		{TypeDwarfPlanet, "ceres", CategorySolarSystem},
		{TypeMoon, "europa", CategorySolarSystem},
		{TypeStar, SunID, CategorySolarSystem},
		{TypeStar, "vega", CategoryStars},
		{TypeConstellation, "orion", CategoryConstellations},
		{TypeNebula, "m42", CategoryDeepSky},
		{TypeGalaxy, "m31", CategoryDeepSky},
		{TypeBlackHole, "sagittarius_a_star", CategoryDeepSky},
		{TypeStarCluster, "m45", CategoryDeepSky},
		{TypeExoplanetSystem, "trappist_1", CategoryExoplanets},
		{TypeAsteroid, "vesta", CategorySmallBodies},
		{TypeComet, "halley", CategorySmallBodies},
		{ObjectType("QUASAR"), "3c273", ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ)+"/"+tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultCategory(tt.typ, tt.id))
		})
	}
}
