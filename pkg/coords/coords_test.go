package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		id          string
		ok          bool
		ra, dec     float64
		placeholder bool
	}{
		{id: "sirius", ok: true, ra: 101.25, dec: -16.71},
		{id: "m31", ok: true, ra: 10.68, dec: 41.27},
		{id: "andromeda_galaxy", ok: true, ra: 10.68, dec: 41.27},
		{id: "mars", ok: true, placeholder: true},
		{id: "proxima_centauri", ok: false},
		{id: "Sirius", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			c, ok := Resolve(tt.id)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.ra, c.RA)
			assert.Equal(t, tt.dec, c.Dec)
			assert.Equal(t, tt.placeholder, c.Placeholder)
			assert.Equal(t, tt.placeholder, IsPlaceholder(tt.id))
		})
	}
}

func TestTableRanges(t *testing.T) {
	ids := IDs()
	require.NotEmpty(t, ids)
	assert.IsNonDecreasing(t, ids)

	for _, id := range ids {
		c, _ := Resolve(id)
		assert.GreaterOrEqual(t, c.RA, 0.0, id)
		assert.Less(t, c.RA, 360.0, id)
		assert.GreaterOrEqual(t, c.Dec, -90.0, id)
		assert.LessOrEqual(t, c.Dec, 90.0, id)
	}
}
