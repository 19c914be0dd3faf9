package errors_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/karnadigital/atlas/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{Resource: "object", ID: "m31"}
		assert.Equal(t, "object with ID m31 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("manifest", "sources.yaml")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("sources[0].id", "quasars", "unknown source")
		assert.Equal(t, "validation failed for field sources[0].id: unknown source", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
		assert.Equal(t, "quasars", err.Value)
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "manifest declares no sources"}
		assert.Equal(t, "validation failed: manifest declares no sources", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("wrap", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapValidation("policy", nil))
		err := pkgerrors.WrapValidation("policy", errors.New("unknown policy"))
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestConfigError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.NewConfigError("emit", "output directory unusable", base)
	assert.Equal(t, "configuration error in emit: output directory unusable", err.Error())
	assert.ErrorIs(t, err, base)

	bare := &pkgerrors.ConfigError{Message: "no data root"}
	assert.Equal(t, "configuration error: no data root", bare.Error())
}

func TestSourceError(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		err := pkgerrors.NewMissingSourceError("planets", "Data/astronomy_data/planets.json")
		assert.Equal(t, "source planets: file Data/astronomy_data/planets.json not found", err.Error())
		assert.True(t, pkgerrors.IsMissingSource(err))
		assert.False(t, pkgerrors.IsMalformedDocument(err))
	})

	t.Run("malformed", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := pkgerrors.WrapSource("stars", "stars.json", cause)
		assert.Equal(t, "source stars (stars.json): unexpected end of JSON input", err.Error())
		assert.True(t, pkgerrors.IsMalformedDocument(err))
		assert.False(t, pkgerrors.IsMissingSource(err))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapSource("stars", "stars.json", nil))
		err := &pkgerrors.SourceError{Source: "stars", Path: "stars.json"}
		assert.Equal(t, "source stars (stars.json): unreadable", err.Error())
	})
}

func TestRootNotFoundError(t *testing.T) {
	err := &pkgerrors.RootNotFoundError{Path: "Data", Err: fs.ErrNotExist}
	assert.Equal(t, "data root Data not found", err.Error())
	assert.True(t, pkgerrors.IsRootNotFound(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	wrapped := fmt.Errorf("ingest: %w", err)
	assert.True(t, pkgerrors.IsRootNotFound(wrapped))
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.ParseError
		want string
	}{
		{
			name: "file and line",
			err:  &pkgerrors.ParseError{Format: "brace-ascii", File: "stars.ascii", Line: 12, Message: "line too long"},
			want: "parse error in brace-ascii at stars.ascii:12: line too long",
		},
		{
			name: "file only",
			err:  pkgerrors.NewParseError("json", "galaxies.json", "unexpected EOF", nil),
			want: "parse error in json file galaxies.json: unexpected EOF",
		},
		{
			name: "neither",
			err:  &pkgerrors.ParseError{Format: "toml", Message: "bad key"},
			want: "toml parse error: bad key",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, pkgerrors.IsMalformedDocument(tt.err))
		})
	}

	cause := errors.New("eof")
	err := pkgerrors.WrapParse("yaml", "sources.yaml", cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, pkgerrors.WrapParse("yaml", "sources.yaml", nil))
}

func TestFieldError(t *testing.T) {
	cause := errors.New("invalid syntax")
	err := pkgerrors.NewFieldError("diameter_km", "unknown", cause)
	assert.Equal(t, `field diameter_km: cannot parse "unknown"`, err.Error())
	assert.True(t, pkgerrors.IsMalformedField(err))
	assert.False(t, pkgerrors.IsMalformedDocument(err))
	assert.ErrorIs(t, err, cause)
}

func TestIOError(t *testing.T) {
	err := pkgerrors.WrapIO("write", "assets/categories.json", errors.New("disk full"))
	assert.Equal(t, "IO error during write of assets/categories.json: disk full", err.Error())

	var ioErr *pkgerrors.IOError
	require.True(t, pkgerrors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Operation)

	noPath := pkgerrors.NewIOError("rename", "", errors.New("cross-device link"))
	assert.Equal(t, "IO error during rename: cross-device link", noPath.Error())
	assert.Nil(t, pkgerrors.WrapIO("write", "x", nil))
}

func TestResourceError(t *testing.T) {
	err := pkgerrors.WrapResource("encode", "document", "image_gallery.json", errors.New("bad value"))
	assert.Equal(t, "failed to encode document image_gallery.json: bad value", err.Error())

	noID := pkgerrors.NewResourceError("load", "config", "", errors.New("boom"))
	assert.Equal(t, "failed to load config: boom", noID.Error())
	assert.Nil(t, pkgerrors.WrapResource("load", "config", "", nil))
}

func TestJoin(t *testing.T) {
	err := pkgerrors.Join(
		pkgerrors.NewMissingSourceError("moons", "moons.json"),
		pkgerrors.WrapSource("stars", "stars.json", errors.New("bad")),
	)
	assert.True(t, pkgerrors.IsMissingSource(err))
	assert.True(t, pkgerrors.IsMalformedDocument(err))
	assert.False(t, pkgerrors.IsRootNotFound(err))
}
