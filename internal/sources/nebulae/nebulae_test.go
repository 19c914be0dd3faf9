package nebulae

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadigital/atlas/internal/sources/sourcetest"
	"github.com/karnadigital/atlas/pkg/catalogs"
)

func TestReadNebulae(t *testing.T) {
	doc := `{"notable_nebulae": [
		{"id": "Orion Nebula", "name": "Orion Nebula", "type": "Emission", "magnitude": 4.0,
		 "distance_ly": 1344, "constellation": "Orion", "size_ly": 24,
		 "description": "A stellar nursery.", "interesting_facts": ["a", "b", "c", "d", "e", "f"],
		 "image_urls": {"hubble": "h.jpg", "esa": "e.jpg"}},
		{"id": "Helix-Nebula", "name": "Helix Nebula", "size_ly": "2.87"}
	]}`
	sink := sourcetest.NewSink()
	require.NoError(t, New().Read(context.Background(), strings.NewReader(doc), sink))
	assert.Equal(t, []string{"orion_nebula", "helix_nebula"}, sink.IDs())

	orion := sink.Get("orion_nebula")
	assert.Equal(t, catalogs.TypeNebula, orion.Type)
	assert.Equal(t, catalogs.CategoryDeepSky, orion.Category)
	assert.Equal(t, 83.82, *orion.RightAscension)
	assert.Equal(t, -5.39, *orion.Declination)
	assert.Equal(t, "A stellar nursery.\n\n• a\n• b\n• c\n• d\n• e", orion.Description)
	meta := orion.Metadata.(catalogs.NebulaMetadata)
	assert.Equal(t, "Emission", meta.NebulaType)
	assert.Equal(t, "24", string(meta.SizeLy))
	assert.Equal(t, []string{"e.jpg", "h.jpg"}, sink.Images["orion_nebula"])

	helix := sink.Get("helix_nebula")
	assert.Nil(t, helix.RightAscension)
	assert.Nil(t, helix.Magnitude)
}
