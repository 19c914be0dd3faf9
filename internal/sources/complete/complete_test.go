package complete

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

const document = `{
  "solar_system": {
    "sun": {"description": "Our star.", "diameter_km": 1392700, "image_url": "sun.jpg"},
    "planets": [
      {"name": "Earth", "description": "Home.", "diameter_km": 12756, "distance_from_sun_au": 1, "image_url": "earth.jpg"}
    ],
    "dwarf_planets": [
      {"name": "Pluto", "diameter_km": 2376},
      {"description": "nameless"}
    ]
  },
  "stars": {
    "brightest": [
      {"name": "Sirius", "description": "Dog star.", "apparentMagnitude": -1.46, "distanceLightYears": 8.6, "constellation": "Canis Major"}
    ]
  },
  "galaxies": [
    {"name": "Andromeda Galaxy", "notableFeatures": "Nearest large spiral galaxy.", "distanceLightYears": 2537000, "constellation": "Andromeda", "image_url": "m31.jpg"}
  ],
  "nebulae": [
    {"name": "Crab Nebula", "description": "Supernova remnant.", "distanceLightYears": 6500}
  ],
  "black_holes": [
    {"name": "Sagittarius A*", "description": "Galactic center.", "distanceLightYears": 26000, "constellation": "Sagittarius"}
  ]
}`

func TestReadComplete(t *testing.T) {
	sink := sourcetest.NewSink()
	require.NoError(t, New().Read(context.Background(), strings.NewReader(document), sink))
	assert.Equal(t, []string{"sun", "earth", "pluto", "sirius", "andromeda_galaxy", "crab_nebula", "sagittarius_a*"}, sink.IDs())

	sun := sink.Get("sun")
	assert.Equal(t, "Sun", sun.Name)
	assert.Equal(t, catalogs.CategorySolarSystem, sun.Category)
	assert.Equal(t, 696350.0, *sun.RadiusKm)
	assert.Equal(t, "sun.jpg", sun.ImageURL)
	assert.Equal(t, []string{"sun.jpg"}, sink.Images["sun"])

	earth := sink.Get("earth")
	assert.Equal(t, catalogs.TypePlanet, earth.Type)
	assert.Equal(t, catalogs.SunID, earth.ParentID)
	assert.Equal(t, 1.0, *earth.DistanceAu)
	assert.Equal(t, 6378.0, *earth.RadiusKm)

	pluto := sink.Get("pluto")
	assert.Equal(t, catalogs.TypeDwarfPlanet, pluto.Type)
	assert.Empty(t, pluto.ImageURL)
	assert.NotContains(t, sink.Images, "pluto")

	sirius := sink.Get("sirius")
	assert.Equal(t, catalogs.CategoryStars, sirius.Category)
	assert.Equal(t, -1.46, *sirius.Magnitude)
	assert.Equal(t, 8.6, *sirius.DistanceLy)
	assert.Nil(t, sirius.RightAscension)

	m31 := sink.Get("andromeda_galaxy")
	assert.Equal(t, catalogs.TypeGalaxy, m31.Type)
	assert.Equal(t, "Nearest large spiral galaxy.", m31.Description)
	assert.Equal(t, "Andromeda", m31.Constellation)

	assert.Equal(t, catalogs.TypeNebula, sink.Get("crab_nebula").Type)

	bh := sink.Get("sagittarius_a*")
	assert.Equal(t, catalogs.TypeBlackHole, bh.Type)
	assert.Equal(t, catalogs.CategoryDeepSky, bh.Category)
	assert.Empty(t, bh.Constellation)
}

func TestReadEmpty(t *testing.T) {
	sink := sourcetest.NewSink()
	require.NoError(t, New().Read(context.Background(), strings.NewReader(`{}`), sink))
	assert.Empty(t, sink.Objects)
}

func TestReadMalformed(t *testing.T) {
	err := New().Read(context.Background(), strings.NewReader(`{"galaxies": {}}`), sourcetest.NewSink())
	assert.True(t, errors.IsMalformedDocument(err))
}
