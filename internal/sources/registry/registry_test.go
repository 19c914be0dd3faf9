package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadigital/atlas/pkg/errors"
	"github.com/karnadigital/atlas/pkg/sources"
)

func TestEveryDeclaredSourceHasAReader(t *testing.T) {
	for _, id := range sources.IDs() {
		t.Run(id.String(), func(t *testing.T) {
			src, err := New(id)
			require.NoError(t, err)
			assert.Equal(t, id, src.ID())
			def, ok := sources.DefaultDefinition(id)
			require.True(t, ok)
			assert.Equal(t, def.Format(), src.Format())
		})
	}
	assert.Equal(t, sources.IDs(), List())
	assert.Equal(t, len(sources.IDs()), All().Len())
}

func TestNewUnknown(t *testing.T) {
	_, err := New("comets")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, Has("comets"))
}

func TestNewReturnsFreshReaders(t *testing.T) {
	a, _ := New(sources.StardroidStarsID)
	b, _ := New(sources.StardroidStarsID)
	assert.NotSame(t, a, b)
}
