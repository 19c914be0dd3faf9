package reconcile

import (
	"github.com/karnadigital/atlas/pkg/catalogs"
)

// Strategy combines an existing record with an incoming one.
type Strategy interface {
	// Name returns the strategy name
	Name() string

	// Description returns a human-readable description
	Description() string

	// Policy returns the policy the strategy implements
	Policy() Policy

	// Apply returns the record to store. existing is never nil.
	// Implementations must not mutate incoming.
	Apply(existing, incoming *catalogs.Object) *catalogs.Object
}

// baseStrategy provides common strategy functionality
type baseStrategy struct {
	name        string
	description string
	policy      Policy
}

// Name returns the strategy name
func (s *baseStrategy) Name() string {
	return s.name
}

// Description returns a human-readable description
func (s *baseStrategy) Description() string {
	return s.description
}

// Policy returns the policy the strategy implements
func (s *baseStrategy) Policy() Policy {
	return s.policy
}

// ReplaceStrategy lets the incoming record win outright.
type ReplaceStrategy struct {
	baseStrategy
}

// NewReplaceStrategy creates a last-writer-wins strategy
func NewReplaceStrategy() Strategy {
	return &ReplaceStrategy{
		baseStrategy: baseStrategy{
			name:        "replace",
			description: "Incoming record overwrites the stored record",
			policy:      PolicyReplace,
		},
	}
}

// Apply returns a copy of incoming.
func (s *ReplaceStrategy) Apply(_, incoming *catalogs.Object) *catalogs.Object {
	return incoming.Clone()
}

// MergeStrategy reconciles records field by field.
type MergeStrategy struct {
	baseStrategy
}

// NewMergeStrategy creates a field-level merge strategy
func NewMergeStrategy() Strategy {
	return &MergeStrategy{
		baseStrategy: baseStrategy{
			name:        "merge",
			description: "Field-level reconciliation; coordinates follow the incoming record",
			policy:      PolicyMerge,
		},
	}
}

// Apply merges incoming into a copy of existing.
func (s *MergeStrategy) Apply(existing, incoming *catalogs.Object) *catalogs.Object {
	return MergeObjects(existing, incoming)
}

// strategyFor returns the built-in strategy for a policy.
func strategyFor(p Policy) (Strategy, bool) {
	switch p {
	case PolicyReplace:
		return NewReplaceStrategy(), true
	case PolicyMerge:
		return NewMergeStrategy(), true
	default:
		return nil, false
	}
}
