package entitymap

import (
	"iter"
	"maps"
)

// EntityMap is a mapping from one set of entities to another.
//
// The API generally follows the built-in map, but each Entity is returned by
// value. This is typically used to coordinate data transfer between sets of
// entities, such as between a snapshot and the world or over the network. It
// is required because Entity identifiers are opaque; you cannot and do not
// want to reuse identifiers directly in a different world.
//
// The map is pure data: it has no notion of liveness and outlives any single
// mapping session. The zero value is ready to use.
type EntityMap struct {
	m map[Entity]Entity
}

// NewEntityMap creates an empty EntityMap.
func NewEntityMap() *EntityMap {
	return &EntityMap{}
}

// Insert inserts an entity pair into the map and returns the previous value
// for from together with whether one was present. On a duplicate key the
// value is overwritten. No check is made that to is alive anywhere; the map
// is world-agnostic data.
func (m *EntityMap) Insert(from, to Entity) (Entity, bool) {
	if m.m == nil {
		m.m = make(map[Entity]Entity)
	}
	prev, ok := m.m[from]
	m.m[from] = to
	return prev, ok
}

// Remove removes from and returns its mapped value together with whether it
// was present.
func (m *EntityMap) Remove(from Entity) (Entity, bool) {
	to, ok := m.m[from]
	if ok {
		delete(m.m, from)
	}
	return to, ok
}

// Get returns the corresponding mapped entity. It fails with an
// EntityNotFoundError if from is not in the map and never mutates it.
func (m *EntityMap) Get(from Entity) (Entity, error) {
	if to, ok := m.m[from]; ok {
		return to, nil
	}
	return Entity{}, EntityNotFoundError{Entity: from}
}

// Entry is a view into a single mapping, allowing in-place get-or-insert
// manipulation that bypasses the Mapper's placeholder-allocation policy.
type Entry struct {
	m    *EntityMap
	from Entity
}

// Entry returns the entry for from.
func (m *EntityMap) Entry(from Entity) Entry {
	return Entry{m: m, from: from}
}

// OrInsert returns the existing mapping for the entry's key, inserting to and
// returning it if the key is absent.
func (e Entry) OrInsert(to Entity) Entity {
	if existing, ok := e.m.m[e.from]; ok {
		return existing
	}
	e.m.Insert(e.from, to)
	return to
}

// OrInsertWith is like OrInsert but only computes the inserted value when the
// key is absent.
func (e Entry) OrInsertWith(fn func() Entity) Entity {
	if existing, ok := e.m.m[e.from]; ok {
		return existing
	}
	to := fn()
	e.m.Insert(e.from, to)
	return to
}

// Keys returns an iterator over all keys in arbitrary order. The iterator is
// restartable: ranging over it again re-enumerates the map's current state.
func (m *EntityMap) Keys() iter.Seq[Entity] {
	return maps.Keys(m.m)
}

// Values returns an iterator over all values in arbitrary order.
func (m *EntityMap) Values() iter.Seq[Entity] {
	return maps.Values(m.m)
}

// All returns an iterator over all (from, to) pairs in arbitrary order.
func (m *EntityMap) All() iter.Seq2[Entity, Entity] {
	return maps.All(m.m)
}

// Len returns the number of mappings.
func (m *EntityMap) Len() int {
	return len(m.m)
}

// IsEmpty reports whether the map contains no mappings.
func (m *EntityMap) IsEmpty() bool {
	return len(m.m) == 0
}

// WithMapper calls fn with a Mapper created from m and bound to w. This allows
// fn to allocate new entity references in w that will never point at a living
// entity.
//
// The session is finalized against w on every exit path, including panic
// unwinds, so the temporary entity backing placeholder allocation is never
// leaked. While the session is open no other code may create, remove or
// reserve entities in w; the placeholder guarantee depends on the session
// owning its slot exclusively.
func WithMapper[R any](m *EntityMap, w *World, fn func(*World, *Mapper) R) R {
	mapper := newMapper(m, w)
	defer mapper.save(w)
	return fn(w, mapper)
}
