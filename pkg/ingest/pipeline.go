// Package ingest runs the catalog pipeline: every declared source is read in
// manifest order into one Accumulator, and the result is frozen into a
// Snapshot for the emitter.
//
// Source failures are recoverable. A missing file is a warning and a
// document that cannot be decoded is skipped with an error diagnostic; in
// both cases the run continues with the next source. Only a missing data
// root aborts the run.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/karnadigital/atlas/internal/sources/registry"
	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/errors"
	"github.com/karnadigital/atlas/pkg/logging"
	"github.com/karnadigital/atlas/pkg/reconcile"
	"github.com/karnadigital/atlas/pkg/sources"
)

// SourceFactory constructs the reader for a source id.
type SourceFactory func(id sources.ID) (sources.Source, error)

// Pipeline reads a data root into a catalog snapshot.
type Pipeline struct {
	root       string
	manifest   *sources.Manifest
	newSource  SourceFactory
	engineOpts []reconcile.Option
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithManifest replaces the default source list.
func WithManifest(m *sources.Manifest) Option {
	return func(p *Pipeline) error {
		if m == nil {
			return fmt.Errorf("manifest cannot be nil")
		}
		normalized := &sources.Manifest{Sources: slices.Clone(m.Sources)}
		normalized.Normalize()
		if err := normalized.Validate(); err != nil {
			return err
		}
		p.manifest = normalized
		return nil
	}
}

// WithSourceFactory replaces the registry lookup used to build readers.
func WithSourceFactory(fn SourceFactory) Option {
	return func(p *Pipeline) error {
		if fn == nil {
			return fmt.Errorf("source factory cannot be nil")
		}
		p.newSource = fn
		return nil
	}
}

// WithEngineOptions configures the merge engine of each run.
func WithEngineOptions(opts ...reconcile.Option) Option {
	return func(p *Pipeline) error {
		p.engineOpts = append(p.engineOpts, opts...)
		return nil
	}
}

// NewPipeline creates a pipeline over root.
func NewPipeline(root string, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		root:      root,
		manifest:  sources.DefaultManifest(),
		newSource: registry.New,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("applying pipeline option: %w", err)
		}
	}
	return p, nil
}

// Root returns the data root.
func (p *Pipeline) Root() string {
	return p.root
}

// Manifest returns the declared sources.
func (p *Pipeline) Manifest() *sources.Manifest {
	return p.manifest
}

// Result is the outcome of one run.
type Result struct {
	RunID    string
	Snapshot *catalogs.Snapshot
	Report   *Report

	StartedAt time.Time
	Duration  time.Duration
}

// Run reads every enabled source in order. It returns a RootNotFoundError
// when the data root is absent and the context error when ctx is cancelled
// between sources; no snapshot is produced in either case.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	// Step 1: Tag the run
	runID := uuid.NewString()
	ctx = logging.WithRun(ctx, runID)
	logger := logging.FromContext(ctx)
	started := time.Now()

	// Step 2: The data root is the only fatal input condition
	if err := checkRoot(p.root); err != nil {
		return nil, err
	}

	acc, err := NewAccumulator(p.engineOpts...)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("root", p.root).
		Int("sources", len(p.manifest.Enabled())).
		Msg("Starting ingestion")

	// Step 3: Read each declared source in order
	report := &Report{}
	for _, def := range p.manifest.Sources {
		if err := ctx.Err(); err != nil {
			logger.Warn().Err(err).Msg("Ingestion cancelled")
			return nil, err
		}
		if !def.IsEnabled() {
			report.add(SourceReport{ID: def.ID, Path: def.Path, Policy: def.Policy, Status: StatusDisabled})
			continue
		}
		report.add(p.read(logging.WithSource(ctx, def.ID.String()), acc, def))
	}

	// Step 4: Freeze the result
	snapshot := acc.Snapshot()
	report.finish(acc, snapshot)

	result := &Result{
		RunID:     runID,
		Snapshot:  snapshot,
		Report:    report,
		StartedAt: started,
		Duration:  time.Since(started),
	}
	logger.Info().
		Int("objects", report.Objects).
		Int("images", report.Images).
		Int("failed", len(report.Problems())).
		Dur("duration", result.Duration).
		Msg("Ingestion completed")
	return result, nil
}

func (p *Pipeline) read(ctx context.Context, acc *Accumulator, def sources.Definition) (rep SourceReport) {
	logger := logging.FromContext(ctx)
	started := time.Now()
	rep = SourceReport{ID: def.ID, Path: def.Path, Policy: def.Policy}
	defer func() { rep.Duration = time.Since(started) }()

	path := def.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.root, path)
	}

	src, err := p.newSource(def.ID)
	if err != nil {
		rep.Status, rep.Err = StatusFailed, err
		logger.Error().Err(err).Msg("No reader for source")
		return rep
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			rep.Status, rep.Err = StatusMissing, errors.NewMissingSourceError(def.ID.String(), path)
			logger.Warn().Str("path", path).Msg("Source file not found, skipping")
		} else {
			rep.Status, rep.Err = StatusFailed, errors.WrapIO("open", path, err)
			logger.Error().Err(err).Str("path", path).Msg("Cannot open source file, skipping")
		}
		return rep
	}
	defer func() { _ = f.Close() }()

	sink := acc.Bind(def.Policy)
	err = src.Read(ctx, f, sink)
	rep.Stats, rep.Images = sink.Stats(), sink.Images()
	if err != nil {
		rep.Status, rep.Err = StatusMalformed, errors.WrapSource(def.ID.String(), path, err)
		logger.Error().
			Err(err).
			Str("path", path).
			Int("records_kept", rep.Stats.Total()).
			Msg("Source document is malformed, skipping")
		return rep
	}

	rep.Status = StatusOK
	logger.Info().
		Int("inserted", rep.Stats.Inserted).
		Int("replaced", rep.Stats.Replaced).
		Int("merged", rep.Stats.Merged).
		Int("images", rep.Images).
		Msg("Source ingested")
	return rep
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return &errors.RootNotFoundError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return &errors.RootNotFoundError{Path: root, Err: fmt.Errorf("%s is not a directory", root)}
	}
	return nil
}
