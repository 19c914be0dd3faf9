package ingest

import (
	"context"

	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/logging"
	"github.com/karnadigital/atlas/pkg/reconcile"
	"github.com/karnadigital/atlas/pkg/sources"
)

// Accumulator is the aggregate one run builds: the merge engine holding the
// object records and the image gallery. It is owned by a single run and is
// not safe for concurrent upserts from several sources.
type Accumulator struct {
	engine  *reconcile.Engine
	gallery *catalogs.Gallery
}

// NewAccumulator creates an empty accumulator. Options configure the
// underlying merge engine.
func NewAccumulator(opts ...reconcile.Option) (*Accumulator, error) {
	engine, err := reconcile.NewEngine(opts...)
	if err != nil {
		return nil, err
	}
	return &Accumulator{
		engine:  engine,
		gallery: catalogs.NewGallery(),
	}, nil
}

// Bind returns a Sink that upserts with policy.
func (a *Accumulator) Bind(policy reconcile.Policy) *Binding {
	return &Binding{acc: a, policy: policy}
}

// Get returns the current record for id.
func (a *Accumulator) Get(id string) (*catalogs.Object, bool) {
	return a.engine.Get(id)
}

// Len returns the number of distinct objects.
func (a *Accumulator) Len() int {
	return a.engine.Len()
}

// Stats returns upsert outcome counts across every binding.
func (a *Accumulator) Stats() reconcile.Stats {
	return a.engine.Stats()
}

// Gallery returns the image gallery.
func (a *Accumulator) Gallery() *catalogs.Gallery {
	return a.gallery
}

// Snapshot freezes the current state. The category index lists every object
// once, under its final category, in first-insertion order.
func (a *Accumulator) Snapshot() *catalogs.Snapshot {
	objects := a.engine.Objects()
	index := catalogs.NewCategoryIndex()
	objects.ForEach(func(id string, obj *catalogs.Object) bool {
		category := obj.Category
		if !category.Valid() {
			category = catalogs.DefaultCategory(obj.Type, id)
		}
		index.Add(category, id)
		return true
	})
	return catalogs.NewSnapshot(objects, a.gallery, index)
}

// Binding is a Sink tied to one merge policy. It counts what it stored so
// the pipeline can report per-source results.
type Binding struct {
	acc    *Accumulator
	policy reconcile.Policy
	stats  reconcile.Stats
	images int
}

var _ sources.Sink = (*Binding)(nil)

// Upsert implements sources.Sink.
func (b *Binding) Upsert(ctx context.Context, obj *catalogs.Object) error {
	outcome, err := b.acc.engine.Upsert(obj, b.policy)
	if err != nil {
		return err
	}
	b.stats.Record(outcome)
	logging.FromContext(ctx).Trace().
		Str("object_id", obj.ID).
		Stringer("outcome", outcome).
		Msg("Upserted object")
	return nil
}

// AddImages implements sources.Sink.
func (b *Binding) AddImages(id string, refs ...string) {
	b.images += b.acc.gallery.Add(id, refs...)
}

// Stats returns the outcomes recorded through this binding.
func (b *Binding) Stats() reconcile.Stats {
	return b.stats
}

// Images returns the number of new gallery references added through this binding.
func (b *Binding) Images() int {
	return b.images
}
