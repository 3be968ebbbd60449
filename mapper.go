package entitymap

import "fmt"

// EntityNotFoundError is the failure returned by strict lookups for an entity
// absent from an EntityMap.
type EntityNotFoundError struct {
	// Entity is the foreign identifier that had no mapping.
	Entity Entity
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d:%d does not exist in the map", e.Entity.ID, e.Entity.Version)
}

// EntityMapper is implemented by values that carry Entity references captured
// from a foreign world. Implementors must rewrite every Entity field they own
// through the session: Get for strict lookup (propagate the first
// EntityNotFoundError), GetOrAlloc when a placeholder is acceptable for
// unmapped references. Which policy applies is a per-field decision.
//
// Implementing this correctly is required for properly loading values with
// entity references from snapshots. The contract is not atomic: a value may be
// partially rewritten when MapEntities returns an error, so callers needing
// all-or-nothing behavior must copy the value before remapping.
type EntityMapper interface {
	MapEntities(m *Mapper) error
}

// Mapper wraps an EntityMap, augmenting it with the ability to allocate new
// Entity references in a destination World. These newly allocated references
// are guaranteed to never point to any living entity in that world.
//
// References are allocated by returning increasing versions starting from an
// internally spawned base entity. When the session is finalized, that entity
// is despawned and the requisite number of versions reserved at its slot, so
// no future spawn can be issued any version a placeholder used.
type Mapper struct {
	m         *EntityMap
	deadStart Entity // base entity used to allocate new references
	versions  uint32 // number of versions allocated thus far
	saved     bool
}

// newMapper spawns a temporary base entity in w and opens a session over m.
// The spawn is real on purpose: the world's version bookkeeping for the slot
// is the authority the placeholder guarantee rests on.
func newMapper(m *EntityMap, w *World) *Mapper {
	return &Mapper{m: m, deadStart: w.CreateEntity()}
}

// Get returns the corresponding mapped entity. It never allocates.
func (mp *Mapper) Get(e Entity) (Entity, error) {
	return mp.m.Get(e)
}

// GetOrAlloc returns the corresponding mapped entity, or allocates a new dead
// placeholder if e is absent. Repeated calls with the same entity during one
// session return the same placeholder.
func (mp *Mapper) GetOrAlloc(e Entity) Entity {
	if mp.saved {
		panic("entitymap: mapper used after its session was saved")
	}
	if to, ok := mp.m.m[e]; ok {
		return to
	}
	to := Entity{ID: mp.deadStart.ID, Version: mp.deadStart.Version + mp.versions}
	mp.versions++
	mp.m.Insert(e, to)
	return to
}

// Map returns the underlying EntityMap for inspection or bulk edits that do
// not go through placeholder allocation.
func (mp *Mapper) Map() *EntityMap {
	return mp.m
}

// save finalizes the session against w. With no placeholders allocated the
// temporary base entity is simply despawned and its slot reused normally.
// Otherwise the allocated versions are reserved at the slot, leaving it dead
// at a version past every placeholder handed out.
//
// Both world operations can only fail if some other code touched the base
// entity's slot mid-session, which the session discipline forbids; failure is
// a violated invariant, not a runtime condition, and panics.
func (mp *Mapper) save(w *World) {
	if mp.saved {
		panic("entitymap: mapper session saved twice")
	}
	mp.saved = true
	if mp.versions == 0 {
		if !w.RemoveEntity(mp.deadStart) {
			panic("entitymap: mapper base entity despawned mid-session")
		}
		return
	}
	if !w.TryReserveVersions(mp.deadStart, mp.versions) {
		panic("entitymap: mapper base entity slot reused mid-session")
	}
}
