package schema

import (
	"context"
	"encoding/json"
	"io"

	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/errors"
	"github.com/karnadigital/atlas/pkg/ident"
	"github.com/karnadigital/atlas/pkg/logging"
	"github.com/karnadigital/atlas/pkg/sources"
)

// Decode reads one JSON document from r into v. Shape mismatches are
// malformed-document errors.
func Decode(r io.Reader, v any, source sources.ID) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return errors.WrapParse("json", source.String(), err)
	}
	return nil
}

// ID normalizes raw into a canonical id. An entry without one is logged and
// reported unusable.
func ID(ctx context.Context, raw Text, section string, index int) (string, bool) {
	id, ok := ident.FromName(raw.String())
	if !ok {
		logging.FromContext(ctx).Warn().
			Str("section", section).
			Int("index", index).
			Msg("Skipping entry without an id")
	}
	return id, ok
}

// Lenient is a field type that keeps unusable tokens out of the record.
type Lenient interface {
	Malformed() (string, bool)
}

// Report logs v at debug level when it was present but unusable.
func Report(ctx context.Context, objectID, field string, v Lenient) {
	if token, bad := v.Malformed(); bad {
		logging.FromContext(ctx).Debug().
			Err(errors.NewFieldError(field, token, nil)).
			Str("object_id", objectID).
			Msg("Ignoring malformed field")
	}
}

// Check returns n as an optional value, logging a malformed token at debug
// level. The field stays absent in that case.
func Check(ctx context.Context, objectID, field string, n Number) *float64 {
	Report(ctx, objectID, field, n)
	return n.Ptr()
}

// Str returns t as a string, logging a malformed token at debug level.
func Str(ctx context.Context, objectID, field string, t Text) string {
	Report(ctx, objectID, field, t)
	return t.String()
}

// Bool returns f as an optional value, logging a malformed token at debug level.
func Bool(ctx context.Context, objectID, field string, f Flag) *bool {
	Report(ctx, objectID, field, f)
	return f.Ptr()
}

// Put upserts obj and records its images.
func Put(ctx context.Context, sink sources.Sink, obj *catalogs.Object, images []string) error {
	if err := sink.Upsert(ctx, obj); err != nil {
		return err
	}
	if len(images) > 0 {
		sink.AddImages(obj.ID, images...)
	}
	return nil
}
