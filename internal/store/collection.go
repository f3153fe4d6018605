package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/wichananm65/social-graph-backend/internal/domain"
)

// Fielder exposes record attributes by name for predicate matching.
type Fielder interface {
	Field(key string) (any, bool)
}

// Record is implemented by every entity kept in a Collection.
type Record[T any] interface {
	Fielder
	GetID() string
	WithID(id string) T
	Clone() T
}

// Collection is an in-memory, insertion-ordered set of records keyed by id.
// Records are copied on the way in and out, so callers never share memory
// with the stored values.
type Collection[T Record[T]] struct {
	mu    sync.RWMutex
	name  string
	order []string
	items map[string]T
	newID func() string
}

// NewCollection returns an empty collection that mints UUIDs for new records.
// name prefixes the op of every error it returns.
func NewCollection[T Record[T]](name string) *Collection[T] {
	return &Collection[T]{
		name:  name,
		items: make(map[string]T),
		newID: uuid.NewString,
	}
}

// Create stores rec, assigning a fresh id when it has none.
func (c *Collection[T]) Create(rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// callers may hand in ids backed by request buffers
	id := strings.Clone(rec.GetID())
	if id == "" {
		id = c.newID()
	}
	rec = rec.WithID(id)
	if _, ok := c.items[id]; ok {
		var zero T
		return zero, domain.Validation(c.name+".create", "id %s already exists", id)
	}

	c.items[id] = rec.Clone()
	c.order = append(c.order, id)
	return rec.Clone(), nil
}

// Get returns a copy of the record with id.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.items[id]
	if !ok {
		var zero T
		return zero, c.notFound("get", id)
	}
	return rec.Clone(), nil
}

// FindOne returns the first record, in insertion order, matching all preds.
func (c *Collection[T]) FindOne(preds ...Predicate) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		rec := c.items[id]
		if matchAll(rec, preds) {
			return rec.Clone(), nil
		}
	}
	var zero T
	return zero, domain.NotFound(c.name+".findOne", "no record matches %v", preds)
}

// FindMany returns every record matching all preds in insertion order. With
// no predicate it returns the whole collection.
func (c *Collection[T]) FindMany(preds ...Predicate) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		rec := c.items[id]
		if matchAll(rec, preds) {
			out = append(out, rec.Clone())
		}
	}
	return out
}

// Update applies mutate to a copy of the record and stores the result. When
// mutate returns an error the record is left unchanged. The id cannot be
// changed by mutate, and the stored id is kept rather than the id argument,
// whose memory belongs to the caller.
func (c *Collection[T]) Update(id string, mutate func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	cur, ok := c.items[id]
	if !ok {
		return zero, c.notFound("update", id)
	}

	next := cur.Clone()
	if err := mutate(&next); err != nil {
		return zero, err
	}
	key := cur.GetID()
	next = next.WithID(key)

	c.items[key] = next
	return next.Clone(), nil
}

// Delete removes the record with id and returns it.
func (c *Collection[T]) Delete(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.items[id]
	if !ok {
		var zero T
		return zero, c.notFound("delete", id)
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return rec, nil
}

func (c *Collection[T]) notFound(op, id string) *domain.Error {
	return domain.NotFound(c.name+"."+op, "%s %s is not found", c.name, id)
}
