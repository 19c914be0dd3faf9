// Package emit writes a catalog snapshot to disk.
//
// Every document of one emission is first written to a temporary file in the
// output directory. Only when all of them have been written are they renamed
// into place, so a failed emission leaves the previous catalog untouched.
package emit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/errors"
	"github.com/karnadigital/atlas/pkg/logging"
)

// Writer emits snapshots into one output directory.
type Writer struct {
	dir      string
	compress bool
	sqlite   string
}

// Option configures a Writer.
type Option func(*Writer) error

// WithCompression also writes a zstd-compressed copy of every JSON document.
func WithCompression(enabled bool) Option {
	return func(w *Writer) error {
		w.compress = enabled
		return nil
	}
}

// WithSQLite also writes the snapshot as a SQLite database. A relative name
// is placed in the output directory.
func WithSQLite(name string) Option {
	return func(w *Writer) error {
		if name == "" {
			return fmt.Errorf("sqlite file name cannot be empty")
		}
		w.sqlite = name
		return nil
	}
}

// NewWriter creates a writer for dir.
func NewWriter(dir string, opts ...Option) (*Writer, error) {
	if dir == "" {
		return nil, &errors.ConfigError{Component: "emit", Message: "no output directory configured"}
	}
	w := &Writer{dir: dir}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, fmt.Errorf("applying writer option: %w", err)
		}
	}
	return w, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Output lists what an emission wrote.
type Output struct {
	Dir   string
	Files []string // paths, in write order
}

// Write emits the snapshot: the object list, the image gallery and the
// category index, plus any configured extras.
func (w *Writer) Write(ctx context.Context, snap *catalogs.Snapshot) (*Output, error) {
	logger := logging.FromContext(ctx)
	if err := os.MkdirAll(w.dir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", w.dir, err)
	}

	objects := snap.Objects
	if objects == nil {
		objects = []*catalogs.Object{}
	}
	docs := []struct {
		name  string
		value any
	}{
		{constants.ObjectsFile, objects},
		{constants.GalleryFile, snap.Gallery},
		{constants.CategoriesFile, snap.Categories},
	}

	b := newBatch(w.dir)
	defer b.abort()

	for _, doc := range docs {
		data, err := encodeJSON(doc.value)
		if err != nil {
			return nil, errors.WrapResource("encode", "document", doc.name, err)
		}
		if err := b.add(doc.name, data); err != nil {
			return nil, err
		}
		if w.compress {
			packed, err := compressZstd(data)
			if err != nil {
				return nil, errors.WrapResource("compress", "document", doc.name, err)
			}
			if err := b.add(doc.name+constants.CompressedExt, packed); err != nil {
				return nil, err
			}
		}
	}

	if w.sqlite != "" {
		if err := b.addFunc(w.sqlite, func(path string) error {
			return writeSQLite(ctx, path, snap)
		}); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := b.commit()
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("dir", w.dir).
		Int("objects", len(objects)).
		Int("files", len(files)).
		Msg("Catalog written")
	return &Output{Dir: w.dir, Files: files}, nil
}

// encodeJSON renders v as indented UTF-8 JSON without HTML escaping.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", constants.JSONIndent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// target resolves name against dir unless it is absolute.
func target(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
