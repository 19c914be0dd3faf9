package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadigital/atlas/internal/utils/ptr"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/errors"
	"github.com/karnadigital/atlas/pkg/logging"
	"github.com/karnadigital/atlas/pkg/reconcile"
	"github.com/karnadigital/atlas/pkg/sources"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestAccumulatorPolicies(t *testing.T) {
	acc, err := NewAccumulator()
	require.NoError(t, err)
	ctx := context.Background()

	replace := acc.Bind(reconcile.PolicyReplace)
	require.NoError(t, replace.Upsert(ctx, &catalogs.Object{ID: "m31", Name: "M31", Type: catalogs.TypeGalaxy, Category: catalogs.CategoryDeepSky}))

	merge := acc.Bind(reconcile.PolicyMerge)
	require.NoError(t, merge.Upsert(ctx, &catalogs.Object{
		ID:          "m31",
		Type:        catalogs.TypeNebula,
		Description: "The Andromeda Galaxy is the nearest large spiral galaxy.",
		Magnitude:   ptr.Float64(3.4),
	}))
	merge.AddImages("m31", "a.jpg", "a.jpg", "b.jpg")

	m31, ok := acc.Get("m31")
	require.True(t, ok)
	assert.Equal(t, catalogs.TypeGalaxy, m31.Type)
	assert.Equal(t, "The Andromeda Galaxy is the nearest large spiral galaxy.", m31.Description)
	assert.Equal(t, 3.4, *m31.Magnitude)

	assert.Equal(t, reconcile.Stats{Inserted: 1}, replace.Stats())
	assert.Equal(t, reconcile.Stats{Merged: 1}, merge.Stats())
	assert.Equal(t, reconcile.Stats{Inserted: 1, Merged: 1}, acc.Stats())
	assert.Equal(t, 2, merge.Images())
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, acc.Gallery().Images("m31"))

	assert.Error(t, merge.Upsert(ctx, &catalogs.Object{}))
}

func TestSnapshotCategories(t *testing.T) {
	acc, err := NewAccumulator()
	require.NoError(t, err)
	ctx := context.Background()
	sink := acc.Bind(reconcile.PolicyReplace)

	require.NoError(t, sink.Upsert(ctx, &catalogs.Object{ID: "vega", Type: catalogs.TypeStar, Category: catalogs.CategoryStars}))
	require.NoError(t, sink.Upsert(ctx, &catalogs.Object{ID: "earth", Type: catalogs.TypePlanet, Category: catalogs.CategorySolarSystem}))
	// re-categorized by a later replace
	require.NoError(t, sink.Upsert(ctx, &catalogs.Object{ID: "vega", Type: catalogs.TypeStar, Category: catalogs.CategorySolarSystem}))
	// no category: falls back to the type default
	require.NoError(t, sink.Upsert(ctx, &catalogs.Object{ID: "m42", Type: catalogs.TypeNebula}))

	snap := acc.Snapshot()
	assert.Equal(t, []string{"vega", "earth"}, snap.Categories.IDs(catalogs.CategorySolarSystem))
	assert.Empty(t, snap.Categories.IDs(catalogs.CategoryStars))
	assert.Equal(t, []string{"m42"}, snap.Categories.IDs(catalogs.CategoryDeepSky))

	// the snapshot is detached from later upserts
	require.NoError(t, sink.Upsert(ctx, &catalogs.Object{ID: "earth", Name: "Terra", Type: catalogs.TypePlanet}))
	assert.Empty(t, snap.Object("earth").Name)
}

const galaxiesDoc = `{"notable_galaxies": [
	{"id": "M31", "name": "Andromeda", "type": "Spiral", "magnitude": 3.44,
	 "image_urls": {"nasa": "https://nasa.example.gov/m31.jpg"}}
]}`

const completeDoc = `{"galaxies": [
	{"name": "M31", "notableFeatures": "The nearest large spiral galaxy to the Milky Way.",
	 "image_url": "https://example.org/m31.jpg", "distanceLightYears": 2537000}
]}`

const messierDoc = `source {
  search_location {
    right_ascension: 10.5
    declination: 41.0
  }
  size: 5
  shape: DIFFUSE_NEBULA
  strings_str_id: "m31"
}
`

func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "astronomy_data/galaxies.json", galaxiesDoc)
	writeFile(t, root, "astronomy_data/stars.json", `{"brightest_stars": [`)
	writeFile(t, root, "astronomy_data_complete.json", completeDoc)
	writeFile(t, root, "stardroid/messier.ascii", messierDoc)
	return root
}

func TestRunEndToEnd(t *testing.T) {
	tl := logging.NewTestLogger(t)
	p, err := NewPipeline(fixture(t))
	require.NoError(t, err)

	result, err := p.Run(tl.Context())
	require.NoError(t, err)
	require.NotEmpty(t, result.RunID)

	m31 := result.Snapshot.Object("m31")
	require.NotNil(t, m31)
	assert.Equal(t, catalogs.TypeGalaxy, m31.Type, "merge never changes the type")
	assert.Equal(t, "Andromeda", m31.Name)
	assert.Equal(t, "The nearest large spiral galaxy to the Milky Way.", m31.Description)
	assert.Equal(t, 3.44, *m31.Magnitude, "existing magnitude is kept")
	assert.Equal(t, 10.5, *m31.RightAscension, "later coordinates win")
	assert.Equal(t, 2537000.0, *m31.DistanceLy)
	assert.Equal(t, "https://example.org/m31.jpg", m31.ImageURL)
	assert.Equal(t, []string{"https://nasa.example.gov/m31.jpg", "https://example.org/m31.jpg"}, result.Snapshot.Gallery.Images["m31"])
	assert.Equal(t, []string{"m31"}, result.Snapshot.Categories.IDs(catalogs.CategoryDeepSky))

	report := result.Report
	galaxies, _ := report.Source(sources.GalaxiesID)
	assert.Equal(t, StatusOK, galaxies.Status)
	assert.Equal(t, reconcile.Stats{Inserted: 1}, galaxies.Stats)

	planets, _ := report.Source(sources.PlanetsID)
	assert.Equal(t, StatusMissing, planets.Status)
	assert.True(t, errors.IsMissingSource(planets.Err))

	stars, _ := report.Source(sources.StarsID)
	assert.Equal(t, StatusMalformed, stars.Status)
	assert.True(t, errors.IsMalformedDocument(stars.Err))

	messier, _ := report.Source(sources.StardroidMessierID)
	assert.Equal(t, reconcile.Stats{Merged: 1}, messier.Stats)

	assert.Equal(t, 1, report.Objects)
	assert.Equal(t, reconcile.Stats{Inserted: 1, Merged: 2}, report.Totals)
	assert.Len(t, report.Problems(), len(sources.IDs())-3)

	assert.True(t, tl.ContainsAll("Source file not found, skipping", "Source document is malformed, skipping", result.RunID))
}

func TestRunWithManifest(t *testing.T) {
	root := fixture(t)
	off := false
	manifest := &sources.Manifest{Sources: []sources.Definition{
		{ID: sources.StardroidMessierID, Policy: reconcile.PolicyReplace},
		{ID: sources.GalaxiesID, Policy: reconcile.PolicyMerge},
		{ID: sources.CompleteID, Enabled: &off},
	}}
	manifest.Normalize()

	p, err := NewPipeline(root, WithManifest(manifest))
	require.NoError(t, err)
	result, err := p.Run(context.Background())
	require.NoError(t, err)

	m31 := result.Snapshot.Object("m31")
	assert.Equal(t, catalogs.TypeNebula, m31.Type, "first writer decides the type")
	assert.Equal(t, "M31", m31.Name)
	assert.Equal(t, 3.0, *m31.Magnitude)

	complete, _ := result.Report.Source(sources.CompleteID)
	assert.Equal(t, StatusDisabled, complete.Status)
	assert.Empty(t, result.Report.Problems())
}

func TestRunWithBareManifest(t *testing.T) {
	manifest := &sources.Manifest{Sources: []sources.Definition{{ID: sources.GalaxiesID}}}

	p, err := NewPipeline(fixture(t), WithManifest(manifest))
	require.NoError(t, err)
	result, err := p.Run(context.Background())
	require.NoError(t, err)

	galaxies, _ := result.Report.Source(sources.GalaxiesID)
	assert.Equal(t, StatusOK, galaxies.Status)
	assert.Equal(t, reconcile.Stats{Inserted: 1}, galaxies.Stats)
	assert.NotNil(t, result.Snapshot.Object("m31"))
	assert.Empty(t, manifest.Sources[0].Path, "caller's manifest is left as given")
	assert.Empty(t, manifest.Sources[0].Policy)
}

func TestRunRootNotFound(t *testing.T) {
	p, err := NewPipeline(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	result, err := p.Run(context.Background())
	assert.Nil(t, result)
	assert.True(t, errors.IsRootNotFound(err))

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	p, err = NewPipeline(file)
	require.NoError(t, err)
	_, err = p.Run(context.Background())
	assert.True(t, errors.IsRootNotFound(err))
}

func TestRunCancelled(t *testing.T) {
	p, err := NewPipeline(fixture(t))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := p.Run(ctx)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSourceFactoryError(t *testing.T) {
	p, err := NewPipeline(fixture(t), WithSourceFactory(func(id sources.ID) (sources.Source, error) {
		return nil, errors.NewValidationError("source", id, "no reader")
	}))
	require.NoError(t, err)
	result, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Report.Problems(), len(sources.IDs()))
	assert.Equal(t, StatusFailed, result.Report.Sources[0].Status)
	assert.Empty(t, result.Snapshot.Objects)
}

func TestPipelineOptions(t *testing.T) {
	_, err := NewPipeline(".", WithManifest(nil))
	assert.Error(t, err)
	_, err = NewPipeline(".", WithManifest(&sources.Manifest{}))
	assert.Error(t, err)
	_, err = NewPipeline(".", WithSourceFactory(nil))
	assert.Error(t, err)
}
