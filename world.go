package entitymap

// World is a minimal generational arena: it tracks which entity slots are
// alive and which version was issued at each slot most recently. A slot never
// re-issues a version lower than or equal to one it has already issued; every
// consumer of placeholder allocation depends on that monotonicity.
//
// The World stores no components. It exists to give mapping sessions a
// concrete collaborator for spawning, despawning and version reservation.
type World struct {
	metas    []entityMeta
	freeIDs  []uint32 // stack of recycled entity IDs
	bus      *EventBus
	capacity int
	count    int
}

// NewWorld creates and initializes a new World with a specified initial
// capacity for entities. It pre-allocates memory for the entity metadata and
// free ID list to optimize performance.
//
// Parameters:
//   - initialCapacity: The number of entities to pre-allocate memory for.
//     Choosing a suitable capacity can prevent re-allocations during runtime.
//
// Returns:
//   - The newly created World.
func NewWorld(initialCapacity int) *World {
	w := &World{
		capacity: initialCapacity,
		metas:    make([]entityMeta, initialCapacity),
		freeIDs:  make([]uint32, initialCapacity),
	}
	for i := range w.freeIDs {
		// fill freeIDs with [cap-1 .. 0] so ID 0 is popped first
		w.freeIDs[i] = uint32(initialCapacity - 1 - i)
	}
	return w
}

// SetEventBus attaches a bus that receives lifecycle notifications for every
// subsequent create, remove and reserve. Passing nil detaches it.
func (w *World) SetEventBus(bus *EventBus) {
	w.bus = bus
}

// expand automatically increases capacity when full.
func (w *World) expand(additional int) {
	oldCap := w.capacity
	newCap := oldCap * 2
	if newCap == 0 {
		newCap = 1
	}
	if newCap < oldCap+additional {
		newCap = oldCap + additional
	}
	delta := newCap - oldCap
	w.metas = append(w.metas, make([]entityMeta, delta)...)
	for i := range delta {
		w.freeIDs = append(w.freeIDs, uint32(newCap-1-i))
	}
	w.capacity = newCap
}

// CreateEntity creates a new live entity with no components. The version
// assigned is strictly greater than any version previously issued at the
// chosen slot.
func (w *World) CreateEntity() Entity {
	if len(w.freeIDs) == 0 {
		w.expand(1)
	}
	// pop an ID
	last := len(w.freeIDs) - 1
	id := w.freeIDs[last]
	w.freeIDs = w.freeIDs[:last]
	meta := &w.metas[id]
	meta.version++
	meta.alive = true
	w.count++
	ent := Entity{ID: id, Version: meta.version}
	if w.bus != nil {
		w.bus.publishCreated(EntityCreated{Entity: ent})
	}
	return ent
}

// CreateEntities creates a batch of entities with no components and returns
// their IDs.
func (w *World) CreateEntities(count int) []Entity {
	if count == 0 {
		return nil
	}
	if len(w.freeIDs) < count {
		w.expand(count - len(w.freeIDs))
	}
	ents := make([]Entity, count)
	for i := range ents {
		last := len(w.freeIDs) - 1
		id := w.freeIDs[last]
		w.freeIDs = w.freeIDs[:last]
		meta := &w.metas[id]
		meta.version++
		meta.alive = true
		ents[i] = Entity{ID: id, Version: meta.version}
		if w.bus != nil {
			w.bus.publishCreated(EntityCreated{Entity: ents[i]})
		}
	}
	w.count += count
	return ents
}

// RemoveEntity despawns e and recycles its ID. It reports whether e was alive
// immediately before the call. The slot keeps its stored version while dead,
// so a later spawn at the same slot still receives a strictly greater version.
func (w *World) RemoveEntity(e Entity) bool {
	if !w.IsValid(e) {
		return false
	}
	meta := &w.metas[e.ID]
	meta.alive = false
	w.freeIDs = append(w.freeIDs, e.ID)
	w.count--
	if w.bus != nil {
		w.bus.publishRemoved(EntityRemoved{Entity: e})
	}
	return true
}

// RemoveEntities removes a batch of entities.
func (w *World) RemoveEntities(ents []Entity) {
	for _, e := range ents {
		w.RemoveEntity(e)
	}
}

// TryReserveVersions advances the stored version at e's slot by count,
// despawning the entity first if it is still alive. The reserved versions are
// burned: no future spawn at the slot can ever be issued one of them.
//
// It reports whether the reservation happened. False means e is not the most
// recently issued identifier at its slot; callers that held exclusive
// ownership of e must treat that as a violated invariant.
func (w *World) TryReserveVersions(e Entity, count uint32) bool {
	if int(e.ID) >= len(w.metas) {
		return false
	}
	meta := &w.metas[e.ID]
	if meta.version != e.Version {
		return false
	}
	if meta.alive {
		meta.alive = false
		w.freeIDs = append(w.freeIDs, e.ID)
		w.count--
	}
	meta.version += count
	if w.bus != nil {
		w.bus.publishReserved(VersionsReserved{Entity: e, Count: count})
	}
	return true
}

// IsValid checks if the entity is currently alive in the world. An entity is
// valid if its ID is within bounds, its slot is alive, and its version matches
// the slot's current version. This prevents "stale" entity references from
// passing for live ones after an entity has been deleted and its ID recycled.
//
// Parameters:
//   - e: The Entity to validate.
//
// Returns:
//   - true if the entity is valid, false otherwise.
func (w *World) IsValid(e Entity) bool {
	if int(e.ID) >= len(w.metas) {
		return false
	}
	meta := w.metas[e.ID]
	return meta.alive && meta.version == e.Version
}

// ClearEntities removes all entities from the world, recycling their IDs.
// Stored versions survive the clear, so handles issued before it can never
// validate again.
func (w *World) ClearEntities() {
	for i := range w.metas {
		w.metas[i].alive = false
	}
	w.freeIDs = w.freeIDs[:0]
	for i := range w.capacity {
		w.freeIDs = append(w.freeIDs, uint32(w.capacity-1-i))
	}
	w.count = 0
}

// Count returns the number of currently alive entities.
func (w *World) Count() int {
	return w.count
}

// Capacity returns the number of entity slots currently allocated.
func (w *World) Capacity() int {
	return w.capacity
}
