// Package braceascii reads the nested-brace text catalogs exported by the
// Stardroid sky map tool.
//
// A document is a sequence of blocks:
//
//	source {
//	  search_location {
//	    right_ascension: 101.25
//	    declination: -16.71
//	  }
//	  size: 7
//	  strings_str_id: "sirius"
//	}
//
// The reader does not parse this grammar. It counts braces to know when a
// block ends and matches known field prefixes anywhere on a line, so
// unrecognized content and malformed numbers are skipped rather than
// rejected.
package braceascii

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/karnadigital/atlas/internal/utils/ptr"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/constants"
	"github.com/karnadigital/atlas/pkg/errors"
	"github.com/karnadigital/atlas/pkg/ident"
	"github.com/karnadigital/atlas/pkg/logging"
	"github.com/karnadigital/atlas/pkg/sources"
)

// Field prefixes recognized inside a block.
const (
	openKeyword   = "source"
	fieldRA       = "right_ascension:"
	fieldDec      = "declination:"
	fieldSize     = "size:"
	fieldShape    = "shape:"
	fieldStringID = "strings_str_id:"
)

const maxLineCapacity = 1024 * 1024

// Schema describes how blocks of one document become records.
type Schema struct {
	Source      sources.ID
	DefaultType catalogs.ObjectType
	SizeBase    float64 // magnitude = SizeBase - size
	Shapes      bool    // honour the shape field
	Name        func(raw string) string
	ImageURL    func(id string) string // nil when records carry no image
}

var titleCaser = cases.Title(language.Und)

// Stars is the stars.ascii schema.
var Stars = Schema{
	Source:      sources.StardroidStarsID,
	DefaultType: catalogs.TypeStar,
	SizeBase:    constants.StarSizeBase,
	Name: func(raw string) string {
		return titleCaser.String(strings.ReplaceAll(raw, "_", " "))
	},
}

// Messier is the messier.ascii schema.
var Messier = Schema{
	Source:      sources.StardroidMessierID,
	DefaultType: catalogs.TypeGalaxy,
	SizeBase:    constants.MessierSizeBase,
	Shapes:      true,
	Name: func(raw string) string {
		return strings.ToUpper(strings.ReplaceAll(raw, "_", " "))
	},
	ImageURL: func(id string) string {
		return constants.LocalImagesDir + "/" + id + ".png"
	},
}

// Source reads one brace-ASCII document.
type Source struct {
	schema Schema
}

// New creates a reader for the given schema.
func New(schema Schema) *Source {
	return &Source{schema: schema}
}

// NewStars creates a stars.ascii reader.
func NewStars() *Source { return New(Stars) }

// NewMessier creates a messier.ascii reader.
func NewMessier() *Source { return New(Messier) }

// ID implements sources.Source.
func (s *Source) ID() sources.ID { return s.schema.Source }

// Format implements sources.Source.
func (s *Source) Format() sources.Format { return sources.FormatBraceASCII }

// Read implements sources.Source. Records are upserted as soon as their
// block closes.
func (s *Source) Read(ctx context.Context, r io.Reader, sink sources.Sink) error {
	p := &parser{schema: s.schema, ctx: ctx}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineCapacity)

	for scanner.Scan() {
		p.line++
		obj := p.feed(scanner.Text())
		if obj == nil {
			continue
		}
		if err := sink.Upsert(ctx, obj); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return &errors.ParseError{
			Format:  string(sources.FormatBraceASCII),
			File:    s.schema.Source.String(),
			Line:    p.line + 1,
			Message: err.Error(),
			Err:     err,
		}
	}
	logging.FromContext(ctx).Debug().
		Int("records", p.finalized).
		Int("synthesized", p.synthesized).
		Int("dropped", p.dropped).
		Msg("Parsed brace-ASCII document")
	return nil
}

// partial is a record under construction.
type partial struct {
	id        string
	name      string
	typ       catalogs.ObjectType
	ra, dec   *float64
	magnitude *float64
}

type parser struct {
	schema  Schema
	ctx     context.Context
	line    int
	depth   int
	current *partial

	finalized, synthesized, dropped int
}

// feed consumes one line and returns a record when a block closes on it.
func (p *parser) feed(raw string) *catalogs.Object {
	line := strings.TrimSpace(raw)
	if line == "" {
		return nil
	}
	if p.depth == 0 && strings.HasPrefix(line, openKeyword) {
		p.current = &partial{typ: p.schema.DefaultType}
	}

	opens := strings.Count(line, "{")
	closes := strings.Count(line, "}")
	p.depth += opens
	if p.depth >= 1 && p.current != nil {
		p.extract(line)
	}
	p.depth -= closes
	if p.depth < 0 {
		p.depth = 0
	}

	if p.depth != 0 || closes == 0 || p.current == nil {
		return nil
	}
	rec := p.current
	p.current = nil
	return p.finalize(rec)
}

func (p *parser) extract(line string) {
	rec := p.current
	if tok, ok := token(line, fieldRA); ok {
		if v, ok := p.float(fieldRA, tok); ok {
			rec.ra = &v
		}
	}
	if tok, ok := token(line, fieldDec); ok {
		if v, ok := p.float(fieldDec, tok); ok {
			rec.dec = &v
		}
	}
	if tok, ok := token(line, fieldSize); ok {
		if size, err := strconv.Atoi(tok); err == nil {
			rec.magnitude = ptr.Float64(p.schema.SizeBase - float64(size))
		} else {
			p.malformed(fieldSize, tok)
		}
	}
	if p.schema.Shapes {
		if tok, ok := token(line, fieldShape); ok {
			switch {
			case strings.Contains(tok, "NEBULA"):
				rec.typ = catalogs.TypeNebula
			case strings.Contains(tok, "CLUSTER"):
				rec.typ = catalogs.TypeStarCluster
			}
		}
	}
	if tok, ok := token(line, fieldStringID); ok {
		val := strings.ReplaceAll(tok, `"`, "")
		if id := ident.NormalizeStar(val); id != "" {
			rec.id = id
			rec.name = p.schema.Name(val)
		}
	}
}

func (p *parser) float(field, tok string) (float64, bool) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.malformed(field, tok)
		return 0, false
	}
	return v, true
}

func (p *parser) malformed(field, tok string) {
	logging.FromContext(p.ctx).Debug().
		Err(errors.NewFieldError(strings.TrimSuffix(field, ":"), tok, nil)).
		Int("line", p.line).
		Msg("Ignoring malformed field")
}

func (p *parser) finalize(rec *partial) *catalogs.Object {
	named := rec.id != ""
	if !named {
		if rec.ra == nil {
			p.dropped++
			return nil
		}
		dec := 0.0
		if rec.dec != nil {
			dec = *rec.dec
		}
		rec.id = SynthesizeID(*rec.ra, dec)
		rec.name = fmt.Sprintf("Star (%.2f, %.2f)", *rec.ra, dec)
		p.synthesized++
	}
	p.finalized++

	obj := &catalogs.Object{
		ID:             rec.id,
		Name:           rec.name,
		Type:           rec.typ,
		Category:       catalogs.DefaultCategory(rec.typ, rec.id),
		Magnitude:      rec.magnitude,
		RightAscension: rec.ra,
		Declination:    rec.dec,
	}
	if named && p.schema.ImageURL != nil {
		obj.ImageURL = p.schema.ImageURL(rec.id)
	}
	return obj
}

// SynthesizeID derives a stable id for an unnamed record from its position.
func SynthesizeID(ra, dec float64) string {
	id := fmt.Sprintf("star_%.2f_%.2f", ra, dec)
	return strings.NewReplacer(".", "_", "-", "m").Replace(id)
}

// token returns the value following prefix on line: a quoted string, or the
// run of characters up to the next space or brace.
func token(line, prefix string) (string, bool) {
	i := strings.Index(line, prefix)
	if i < 0 {
		return "", false
	}
	rest := strings.TrimSpace(line[i+len(prefix):])
	if strings.HasPrefix(rest, `"`) {
		if end := strings.Index(rest[1:], `"`); end >= 0 {
			return rest[:end+2], true
		}
		return rest, true
	}
	end := strings.IndexAny(rest, " \t{}")
	if end >= 0 {
		rest = rest[:end]
	}
	return rest, true
}
