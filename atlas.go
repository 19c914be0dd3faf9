// Package atlas builds the unified astronomy catalog: it reads every
// declared source under a data root, reconciles the records and writes the
// catalog documents to an output directory.
package atlas

import (
	"context"
	"fmt"
	"sync"

	"github.com/karnadigital/atlas/pkg/emit"
	"github.com/karnadigital/atlas/pkg/errors"
	"github.com/karnadigital/atlas/pkg/ingest"
	"github.com/karnadigital/atlas/pkg/logging"
)

// Atlas runs ingestion with event hooks
type Atlas interface {
	// Ingest reads all sources and emits the catalog
	Ingest(ctx context.Context) (*Result, error)

	// OnObjectAdded registers a callback for objects absent from the previous catalog
	OnObjectAdded(ObjectAddedHook)

	// OnObjectUpdated registers a callback for objects that changed
	OnObjectUpdated(ObjectUpdatedHook)

	// OnObjectRemoved registers a callback for objects no longer produced
	OnObjectRemoved(ObjectRemovedHook)

	// OnSourceDone registers a callback invoked once per declared source
	OnSourceDone(SourceDoneHook)
}

// Result is the outcome of one Ingest call.
type Result struct {
	*ingest.Result

	// Output is nil on a dry run
	Output  *emit.Output
	Changes Changes
	DryRun  bool
}

// Changes counts differences against the previously emitted catalog.
type Changes struct {
	Added   int `json:"added" yaml:"added"`
	Updated int `json:"updated" yaml:"updated"`
	Removed int `json:"removed" yaml:"removed"`
}

// atlas is the internal implementation of the Atlas interface
type atlas struct {
	mu     sync.Mutex
	config *config

	// Event hooks
	*hooks
}

// New creates a new Atlas instance with the given options
func New(opts ...Option) (Atlas, error) {
	a := &atlas{
		config: defaultConfig(),
		hooks:  newHooks(),
	}
	if err := a.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}
	return a, nil
}

func (a *atlas) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(a.config); err != nil {
			return err
		}
	}
	return nil
}

// Ingest runs the pipeline, diffs the snapshot against the catalog already
// in the output directory and, unless this is a dry run, writes it.
func (a *atlas) Ingest(ctx context.Context) (*Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	cfg := a.config

	// Step 1: Read and reconcile every source
	pipeline, err := ingest.NewPipeline(cfg.dataDir, cfg.pipelineOptions()...)
	if err != nil {
		return nil, err
	}
	run, err := pipeline.Run(ctx)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithRun(ctx, run.RunID)
	logger := logging.FromContext(ctx)
	for _, rep := range run.Report.Sources {
		a.hooks.triggerSourceDone(rep)
	}

	// Step 2: Compare with what is on disk
	previous, err := emit.LoadObjects(cfg.outputDir)
	if err != nil && !errors.IsNotFound(err) {
		logger.Warn().Err(err).Str("dir", cfg.outputDir).Msg("Previous catalog unreadable, treating every object as new")
	}

	result := &Result{Result: run, DryRun: cfg.dryRun}
	if cfg.dryRun {
		result.Changes = a.hooks.triggerCatalogUpdate(previous, run.Snapshot.Objects)
		logger.Info().Msg("Dry run, catalog not written")
		return result, nil
	}

	// Step 3: Emit
	writer, err := emit.NewWriter(cfg.outputDir, cfg.writerOptions()...)
	if err != nil {
		return nil, err
	}
	out, err := writer.Write(ctx, run.Snapshot)
	if err != nil {
		return nil, err
	}
	result.Output = out
	result.Changes = a.hooks.triggerCatalogUpdate(previous, run.Snapshot.Objects)
	return result, nil
}
