package catalogs

import (
	"fmt"
	"sync"
)

// Objects is a concurrent safe, insertion-ordered map of objects.
// Replacing an existing id keeps its original position.
type Objects struct {
	mu      sync.RWMutex
	objects map[string]*Object
	order   []string
}

// ObjectsOption defines a function that configures an Objects instance.
type ObjectsOption func(*Objects)

// WithObjectsCapacity sets the initial capacity of the objects map.
func WithObjectsCapacity(capacity int) ObjectsOption {
	return func(o *Objects) {
		o.objects = make(map[string]*Object, capacity)
		o.order = make([]string, 0, capacity)
	}
}

// NewObjects creates a new Objects map with optional configuration.
func NewObjects(opts ...ObjectsOption) *Objects {
	o := &Objects{
		objects: make(map[string]*Object),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Get returns an object by id and whether it exists.
func (o *Objects) Get(id string) (*Object, bool) {
	o.mu.RLock()
	obj, ok := o.objects[id]
	o.mu.RUnlock()
	return obj, ok
}

// Set stores obj under its id, appending new ids to the order.
// It reports whether the id was already present.
func (o *Objects) Set(obj *Object) (existed bool, err error) {
	if obj == nil {
		return false, fmt.Errorf("object cannot be nil")
	}
	if obj.ID == "" {
		return false, fmt.Errorf("object id cannot be empty")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	_, existed = o.objects[obj.ID]
	if !existed {
		o.order = append(o.order, obj.ID)
	}
	o.objects[obj.ID] = obj
	return existed, nil
}

// Exists checks if an object exists without returning it.
func (o *Objects) Exists(id string) bool {
	o.mu.RLock()
	_, exists := o.objects[id]
	o.mu.RUnlock()
	return exists
}

// Len returns the number of objects.
func (o *Objects) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.order)
}

// IDs returns all ids in first-insertion order.
func (o *Objects) IDs() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]string(nil), o.order...)
}

// List returns all objects in first-insertion order.
func (o *Objects) List() []*Object {
	o.mu.RLock()
	defer o.mu.RUnlock()

	list := make([]*Object, len(o.order))
	for i, id := range o.order {
		list[i] = o.objects[id]
	}
	return list
}

// ForEach applies fn to each object in order. The function should not modify
// the object. If fn returns false, iteration stops early.
func (o *Objects) ForEach(fn func(id string, obj *Object) bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, id := range o.order {
		if !fn(id, o.objects[id]) {
			break
		}
	}
}
