package atlas

import (
	"encoding/json"
	"sync"

	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/ingest"
)

// Hook function types for catalog events
type (
	// ObjectAddedHook is called for an object absent from the previous catalog
	ObjectAddedHook func(obj *catalogs.Object)

	// ObjectUpdatedHook is called for an object whose emitted form changed
	ObjectUpdatedHook func(old, new *catalogs.Object)

	// ObjectRemovedHook is called for an object the run no longer produced
	ObjectRemovedHook func(obj *catalogs.Object)

	// SourceDoneHook is called with the report of each declared source
	SourceDoneHook func(report ingest.SourceReport)
)

// hooks manages event callbacks for catalog changes
type hooks struct {
	mu              sync.RWMutex
	onObjectAdded   []ObjectAddedHook
	onObjectUpdated []ObjectUpdatedHook
	onObjectRemoved []ObjectRemovedHook
	onSourceDone    []SourceDoneHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnObjectAdded registers a callback for added objects
func (h *hooks) OnObjectAdded(fn ObjectAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onObjectAdded = append(h.onObjectAdded, fn)
}

// OnObjectUpdated registers a callback for changed objects
func (h *hooks) OnObjectUpdated(fn ObjectUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onObjectUpdated = append(h.onObjectUpdated, fn)
}

// OnObjectRemoved registers a callback for removed objects
func (h *hooks) OnObjectRemoved(fn ObjectRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onObjectRemoved = append(h.onObjectRemoved, fn)
}

// OnSourceDone registers a callback for source reports
func (h *hooks) OnSourceDone(fn SourceDoneHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onSourceDone = append(h.onSourceDone, fn)
}

func (h *hooks) triggerSourceDone(rep ingest.SourceReport) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onSourceDone {
		hook(rep)
	}
}

// triggerCatalogUpdate compares the previous and new object lists, fires the
// matching hooks and returns the counts. Objects are compared in their
// emitted JSON form since a reloaded catalog carries untyped metadata.
func (h *hooks) triggerCatalogUpdate(oldObjects, newObjects []*catalogs.Object) Changes {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var changes Changes

	oldMap := make(map[string]*catalogs.Object, len(oldObjects))
	for _, obj := range oldObjects {
		oldMap[obj.ID] = obj
	}
	newIDs := make(map[string]struct{}, len(newObjects))

	for _, obj := range newObjects {
		newIDs[obj.ID] = struct{}{}
		old, exists := oldMap[obj.ID]
		if !exists {
			changes.Added++
			for _, hook := range h.onObjectAdded {
				hook(obj)
			}
			continue
		}
		if !sameEmitted(old, obj) {
			changes.Updated++
			for _, hook := range h.onObjectUpdated {
				hook(old, obj)
			}
		}
	}

	for _, old := range oldObjects {
		if _, exists := newIDs[old.ID]; !exists {
			changes.Removed++
			for _, hook := range h.onObjectRemoved {
				hook(old)
			}
		}
	}
	return changes
}

func sameEmitted(a, b *catalogs.Object) bool {
	left, err := json.Marshal(a)
	if err != nil {
		return false
	}
	right, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return string(left) == string(right)
}
