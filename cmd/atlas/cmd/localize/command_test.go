package localize

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadigital/atlas/internal/appcontext"
	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/emit"
)

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	doc := `[
  {"id": "mars", "name": "Mars", "type": "PLANET", "category": "Solar System", "imageUrl": "https://example.org/mars.jpg"},
  {"id": "venus", "name": "Venus", "type": "PLANET", "category": "Solar System", "imageUrl": "https://example.org/venus.jpg"}
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.ObjectsFile), []byte(doc), 0o644))

	images := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(images, "mars.webp"), []byte("x"), 0o644))

	cmd := NewCommand(&appcontext.Mock{Dir: dir})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--images-dir", images})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "1 of 1 local images applied\n", out.String())

	objects, err := emit.LoadObjects(dir)
	require.NoError(t, err)
	assert.Equal(t, "images/mars.webp", objects[0].ImageURL)
	assert.Equal(t, "https://example.org/venus.jpg", objects[1].ImageURL)
}

func TestCommandFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/gone.jpg" {
			w.WriteHeader(http.StatusGone)
			return
		}
		_, _ = w.Write([]byte("pixels"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	doc := `[
  {"id": "mars", "name": "Mars", "type": "PLANET", "category": "Solar System", "imageUrl": "` + srv.URL + `/gone.jpg"},
  {"id": "venus", "name": "Venus", "type": "PLANET", "category": "Solar System"}
]`
	gallery := `{"mars": ["` + srv.URL + `/gone.jpg", "` + srv.URL + `/mars.webp"]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.ObjectsFile), []byte(doc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.GalleryFile), []byte(gallery), 0o644))

	images := filepath.Join(dir, constants.LocalImagesDir)
	cmd := NewCommand(&appcontext.Mock{Dir: dir})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--images-dir", images, "--fetch"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "1 of 1 local images applied\n", out.String())
	assert.FileExists(t, filepath.Join(images, "mars.webp"))

	objects, err := emit.LoadObjects(dir)
	require.NoError(t, err)
	assert.Equal(t, "images/mars.webp", objects[0].ImageURL)
	assert.Empty(t, objects[1].ImageURL)
}

func TestCommandRequiresSource(t *testing.T) {
	cmd := NewCommand(&appcontext.Mock{Dir: t.TempDir()})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
