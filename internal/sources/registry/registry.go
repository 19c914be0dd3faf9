// Package registry maps source ids to their format readers.
// This package is separate from pkg/sources to avoid circular dependencies.
package registry

import (
	"fmt"

	"github.com/karnadigital/atlas/internal/sources/braceascii"
	"github.com/karnadigital/atlas/internal/sources/complete"
	"github.com/karnadigital/atlas/internal/sources/constellations"
	"github.com/karnadigital/atlas/internal/sources/exoplanets"
	"github.com/karnadigital/atlas/internal/sources/galaxies"
	"github.com/karnadigital/atlas/internal/sources/moons"
	"github.com/karnadigital/atlas/internal/sources/nebulae"
	"github.com/karnadigital/atlas/internal/sources/planets"
	"github.com/karnadigital/atlas/internal/sources/smallbodies"
	"github.com/karnadigital/atlas/internal/sources/stars"
	"github.com/karnadigital/atlas/pkg/errors"
	"github.com/karnadigital/atlas/pkg/sources"
)

// registry maps source IDs to their reader constructors
var registry = map[sources.ID]func() sources.Source{
	sources.PlanetsID:          func() sources.Source { return planets.New() },
	sources.StarsID:            func() sources.Source { return stars.New() },
	sources.MoonsID:            func() sources.Source { return moons.New() },
	sources.NebulaeID:          func() sources.Source { return nebulae.New() },
	sources.GalaxiesID:         func() sources.Source { return galaxies.New() },
	sources.ConstellationsID:   func() sources.Source { return constellations.New() },
	sources.SmallBodiesID:      func() sources.Source { return smallbodies.New() },
	sources.ExoplanetsID:       func() sources.Source { return exoplanets.New() },
	sources.CompleteID:         func() sources.Source { return complete.New() },
	sources.StardroidStarsID:   func() sources.Source { return braceascii.NewStars() },
	sources.StardroidMessierID: func() sources.Source { return braceascii.NewMessier() },
}

// New creates a NEW reader for the given source id.
func New(id sources.ID) (sources.Source, error) {
	newSource, ok := registry[id]
	if !ok {
		return nil, &errors.ValidationError{
			Field:   "source",
			Value:   id,
			Message: fmt.Sprintf("unsupported source: %s", id),
		}
	}
	return newSource(), nil
}

// Has checks if a source id has a reader.
func Has(id sources.ID) bool {
	_, ok := registry[id]
	return ok
}

// List returns all source ids that have readers, in default processing order.
func List() []sources.ID {
	ids := make([]sources.ID, 0, len(registry))
	for _, id := range sources.IDs() {
		if Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// All constructs one reader per registered source.
func All() *sources.Sources {
	all := sources.NewSources()
	for _, id := range List() {
		all.Set(registry[id]())
	}
	return all
}
