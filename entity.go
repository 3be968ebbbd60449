// Package entitymap provides a mapping and placeholder-allocation substrate
// for transferring entity references between worlds.
//
// Entity identifiers are slot+version handles into one specific World; copying
// them verbatim into another world makes them collide with unrelated entities
// or dangle. An EntityMap records which foreign identifier corresponds to
// which local one, and a Mapper session mints placeholder identifiers for
// foreign entities that have no local counterpart yet. Minted placeholders are
// guaranteed never to alias an entity that later becomes alive, using only the
// world's own version bookkeeping.
package entitymap

import "fmt"

// Entity represents a unique identifier for an object in a World. It combines
// a 32-bit ID with a 32-bit version to ensure that recycled IDs are not
// confused with new entities.
type Entity struct {
	// ID is the unique, recyclable identifier for the entity.
	ID uint32
	// Version is a generation counter to protect against stale entity
	// references. It is incremented each time an entity ID is reused.
	Version uint32
}

// String renders the entity for debugging.
func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d:%d)", e.ID, e.Version)
}

// entityMeta holds the slot state for one entity ID.
type entityMeta struct {
	version uint32 // most recently issued version at this slot, 0 if never issued
	alive   bool
}
