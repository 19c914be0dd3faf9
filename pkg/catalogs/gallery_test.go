package catalogs

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryDeduplicates(t *testing.T) {
	g := NewGallery()

	assert.Equal(t, 1, g.Add("m31", "https://example.org/m31.jpg"))
	assert.Equal(t, 0, g.Add("m31", "https://example.org/m31.jpg"))
	assert.Equal(t, []string{"https://example.org/m31.jpg"}, g.Images("m31"))
}

func TestGalleryStableOrder(t *testing.T) {
	g := NewGallery()
	g.Add("mars", "b.jpg", "a.jpg", "", "b.jpg")
	g.Add("venus")
	g.Add("earth", "")
	g.Add("jupiter", "j.jpg")
	g.Add("mars", "c.jpg", "a.jpg")

	final := g.Finalize()
	assert.Equal(t, []string{"mars", "jupiter"}, final.IDs)
	assert.Equal(t, []string{"b.jpg", "a.jpg", "c.jpg"}, final.Images["mars"])
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 4, g.Total())

	data, err := json.Marshal(final)
	require.NoError(t, err)
	assert.Equal(t, `{"mars":["b.jpg","a.jpg","c.jpg"],"jupiter":["j.jpg"]}`, string(data))
}

func TestGalleryMapDoesNotEscapeHTML(t *testing.T) {
	g := NewGallery()
	g.Add("m1", "https://example.org/img?a=1&b=<2>")

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(g.Finalize()))
	assert.Equal(t, `{"m1":["https://example.org/img?a=1&b=<2>"]}`+"\n", buf.String())
}

func TestGalleryEmpty(t *testing.T) {
	data, err := json.Marshal(NewGallery().Finalize())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}
