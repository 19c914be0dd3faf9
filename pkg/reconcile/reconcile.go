package reconcile

import (
	"fmt"

	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/errors"
)

// Engine owns the canonical id to object map. It is not safe for concurrent
// upserts: callers serialize writes, since neither policy commutes.
type Engine struct {
	objects    *catalogs.Objects
	strategies map[Policy]Strategy
	stats      Stats
}

// Option configures an Engine.
type Option func(*Engine) error

// WithStrategy overrides the strategy used for its policy.
func WithStrategy(s Strategy) Option {
	return func(e *Engine) error {
		if s == nil {
			return fmt.Errorf("strategy cannot be nil")
		}
		if !s.Policy().Valid() {
			return fmt.Errorf("strategy %s has unknown policy %q", s.Name(), s.Policy())
		}
		e.strategies[s.Policy()] = s
		return nil
	}
}

// WithObjects seeds the engine with an existing store.
func WithObjects(objects *catalogs.Objects) Option {
	return func(e *Engine) error {
		if objects == nil {
			return fmt.Errorf("objects cannot be nil")
		}
		e.objects = objects
		return nil
	}
}

// NewEngine creates an engine with the built-in strategies.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		objects:    catalogs.NewObjects(),
		strategies: make(map[Policy]Strategy, 2),
	}
	for _, p := range []Policy{PolicyReplace, PolicyMerge} {
		s, _ := strategyFor(p)
		e.strategies[p] = s
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("applying engine option: %w", err)
		}
	}
	return e, nil
}

// Upsert stores obj under its id using policy. A new id is always inserted
// as-is (copied); an existing id is resolved by the policy's strategy and
// keeps its position in the order.
func (e *Engine) Upsert(obj *catalogs.Object, policy Policy) (Outcome, error) {
	if obj == nil || obj.ID == "" {
		return 0, errors.NewValidationError("id", nil, "object has no id")
	}
	strategy, ok := e.strategies[policy]
	if !ok {
		return 0, errors.NewValidationError("policy", policy, fmt.Sprintf("unknown policy %q", policy))
	}

	existing, found := e.objects.Get(obj.ID)
	var stored *catalogs.Object
	var outcome Outcome
	switch {
	case !found:
		stored, outcome = obj.Clone(), OutcomeInserted
	case policy == PolicyReplace:
		stored, outcome = strategy.Apply(existing, obj), OutcomeReplaced
	default:
		stored, outcome = strategy.Apply(existing, obj), OutcomeMerged
	}

	if _, err := e.objects.Set(stored); err != nil {
		return 0, err
	}
	e.stats.Record(outcome)
	return outcome, nil
}

// Get returns the stored object for id.
func (e *Engine) Get(id string) (*catalogs.Object, bool) {
	return e.objects.Get(id)
}

// Objects returns the underlying ordered store.
func (e *Engine) Objects() *catalogs.Objects {
	return e.objects
}

// Len returns the number of distinct ids stored.
func (e *Engine) Len() int {
	return e.objects.Len()
}

// Stats returns the outcome counts so far.
func (e *Engine) Stats() Stats {
	return e.stats
}
