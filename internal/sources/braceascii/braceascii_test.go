package braceascii

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karnadigital/atlas/internal/sources/sourcetest"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/logging"
	"github.com/karnadigital/atlas/pkg/sources"
)

func read(t *testing.T, src *Source, doc string) *sourcetest.Sink {
	t.Helper()
	sink := sourcetest.NewSink()
	require.NoError(t, src.Read(context.Background(), strings.NewReader(doc), sink))
	return sink
}

func TestSingleLineBlock(t *testing.T) {
	sink := read(t, NewStars(), `source { right_ascension: 101.25 declination: -16.71 strings_str_id: "sirius" }`)
	require.Len(t, sink.Objects, 1)

	sirius := sink.Objects[0]
	assert.Equal(t, "sirius", sirius.ID)
	assert.Equal(t, "Sirius", sirius.Name)
	assert.Equal(t, catalogs.TypeStar, sirius.Type)
	assert.Equal(t, catalogs.CategoryStars, sirius.Category)
	assert.Equal(t, 101.25, *sirius.RightAscension)
	assert.Equal(t, -16.71, *sirius.Declination)
	assert.Nil(t, sirius.Magnitude)
	assert.Empty(t, sirius.ImageURL)
}

func TestSynthesizedID(t *testing.T) {
	doc := `
source {
  search_location {
    right_ascension: 12.34
    declination: -5.0
  }
  point {
    size: 3
  }
}
`
	sink := read(t, NewStars(), doc)
	require.Len(t, sink.Objects, 1)
	star := sink.Objects[0]
	assert.Equal(t, "star_12_34_m5_00", star.ID)
	assert.Equal(t, "Star (12.34, -5.00)", star.Name)
	assert.Equal(t, 3.0, *star.Magnitude)

	again := read(t, NewStars(), doc)
	assert.Equal(t, sink.IDs(), again.IDs(), "reruns synthesize identical ids")
}

func TestSynthesizeID(t *testing.T) {
	tests := []struct {
		ra, dec float64
		want    string
	}{
		{12.34, -5.0, "star_12_34_m5_00"},
		{0, 0, "star_0_00_0_00"},
		{359.999, 89.5, "star_360_00_89_50"},
		{101.256, -16.714, "star_101_26_m16_71"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, SynthesizeID(tt.ra, tt.dec))
		})
	}
}

func TestDeclinationDefaultsToZero(t *testing.T) {
	sink := read(t, NewStars(), "source {\n right_ascension: 5.5\n}")
	assert.Equal(t, []string{"star_5_50_0_00"}, sink.IDs())
	assert.Nil(t, sink.Objects[0].Declination)
}

func TestDroppedWithoutIDOrPosition(t *testing.T) {
	sink := read(t, NewStars(), "source {\n  declination: 10\n  size: 2\n}\n")
	assert.Empty(t, sink.Objects)
}

func TestStarNames(t *testing.T) {
	doc := `source {
  right_ascension: 219.9
  declination: -60.83
  strings_str_id: "alpha_centauri"
}
source {
  strings_str_id: "Polaris*"
}`
	sink := read(t, NewStars(), doc)
	assert.Equal(t, []string{"alpha_centauri", "polaris_star"}, sink.IDs())
	assert.Equal(t, "Alpha Centauri", sink.Objects[0].Name)
}

func TestMessier(t *testing.T) {
	sink := sourcetest.NewSink()
	require.NoError(t, NewMessier().Read(context.Background(), sourcetest.Open(t, "messier.ascii"), sink))
	require.Equal(t, []string{"m31", "m42", "m45"}, sink.IDs())

	m31 := sink.Get("m31")
	assert.Equal(t, "M31", m31.Name)
	assert.Equal(t, catalogs.TypeGalaxy, m31.Type)
	assert.Equal(t, catalogs.CategoryDeepSky, m31.Category)
	assert.Equal(t, 4.0, *m31.Magnitude)
	assert.Equal(t, "images/m31.png", m31.ImageURL)

	assert.Equal(t, catalogs.TypeNebula, sink.Get("m42").Type)

	m45 := sink.Get("m45")
	assert.Equal(t, catalogs.TypeStarCluster, m45.Type)
	assert.Nil(t, m45.Magnitude, "malformed size leaves magnitude absent")
	assert.Equal(t, 56.75, *m45.RightAscension)
	assert.Equal(t, 24.11, *m45.Declination)
}

func TestShapeIgnoredForStars(t *testing.T) {
	sink := read(t, NewStars(), `source { shape: DIFFUSE_NEBULA strings_str_id: "vega" }`)
	assert.Equal(t, catalogs.TypeStar, sink.Objects[0].Type)
}

func TestToleratesNoise(t *testing.T) {
	tl := logging.NewTestLogger(t)
	doc := `}}
right_ascension: 1.0
garbage line with { no close
}
source {
  right_ascension: abc
  declination: 1.5
  unknown_field: 42
  strings_str_id: "vega"
}
`
	sink := sourcetest.NewSink()
	require.NoError(t, NewStars().Read(tl.Context(), strings.NewReader(doc), sink))
	require.Equal(t, []string{"vega"}, sink.IDs())
	assert.Nil(t, sink.Objects[0].RightAscension)
	assert.Equal(t, 1.5, *sink.Objects[0].Declination)
	assert.True(t, tl.ContainsAll("Ignoring malformed field", "right_ascension"))
}

func TestNonFiniteCoordinates(t *testing.T) {
	tests := []struct {
		name string
		ra   string
		dec  string
	}{
		{name: "nan", ra: "NaN", dec: "1.5"},
		{name: "inf", ra: "Inf", dec: "-infinity"},
		{name: "signed inf", ra: "+Inf", dec: "nan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := logging.NewTestLogger(t)
			doc := "source {\n  right_ascension: " + tt.ra + "\n  declination: " + tt.dec + "\n  strings_str_id: \"bad\"\n}\n" +
				"source {\n  right_ascension: " + tt.ra + "\n}\n"
			sink := sourcetest.NewSink()
			require.NoError(t, NewStars().Read(tl.Context(), strings.NewReader(doc), sink))

			require.Equal(t, []string{"bad"}, sink.IDs(), "a non-finite position cannot name an unnamed record")
			bad := sink.Objects[0]
			assert.Nil(t, bad.RightAscension)
			if tt.dec == "1.5" {
				assert.Equal(t, 1.5, *bad.Declination)
			} else {
				assert.Nil(t, bad.Declination)
			}
			assert.True(t, tl.ContainsAll("Ignoring malformed field", "right_ascension"))

			_, err := json.Marshal(sink.Objects)
			assert.NoError(t, err, "objects stay encodable")
		})
	}
}

func TestUpsertsImmediately(t *testing.T) {
	sink := &orderSink{Sink: sourcetest.NewSink()}
	doc := "source {\n strings_str_id: \"a\"\n}\nsource {\n strings_str_id: \"b\"\n}\n"
	require.NoError(t, NewStars().Read(context.Background(), &lineReader{r: strings.NewReader(doc), sink: sink}, sink))
	assert.Equal(t, []int{3, 6}, sink.at)
}

func TestSourceIdentity(t *testing.T) {
	assert.Equal(t, sources.StardroidStarsID, NewStars().ID())
	assert.Equal(t, sources.StardroidMessierID, NewMessier().ID())
	assert.Equal(t, sources.FormatBraceASCII, NewMessier().Format())
}

// lineReader hands out one byte per Read so the sink can observe how much
// input had been consumed at each upsert.
type lineReader struct {
	r    *strings.Reader
	sink *orderSink
}

func (l *lineReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := l.r.Read(p[:1])
	if n == 1 && p[0] == '\n' {
		l.sink.lines++
	}
	return n, err
}

type orderSink struct {
	*sourcetest.Sink
	lines int
	at    []int
}

func (s *orderSink) Upsert(ctx context.Context, obj *catalogs.Object) error {
	s.at = append(s.at, s.lines)
	return s.Sink.Upsert(ctx, obj)
}
