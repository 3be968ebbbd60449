package entitymap

// EntityCreated is published after a World issues a new live entity.
type EntityCreated struct {
	Entity Entity
}

// EntityRemoved is published after a World despawns an entity.
type EntityRemoved struct {
	Entity Entity
}

// VersionsReserved is published after a World burns versions at an entity's
// slot. Entity is the identifier the reservation was made against and Count is
// the number of versions reserved beyond it.
type VersionsReserved struct {
	Entity Entity
	Count  uint32
}

// EventBus delivers entity lifecycle notifications to subscribed handlers.
// It allows callers to observe spawns, despawns and version reservations —
// including the ones mapping sessions perform internally — without direct
// dependencies on the code performing them.
//
// Publishing is synchronous, in subscription order, and allocation-free,
// making it suitable for performance-critical code paths.
type EventBus struct {
	created  []func(EntityCreated)
	removed  []func(EntityRemoved)
	reserved []func(VersionsReserved)
}

// OnCreated registers a handler for EntityCreated events. Handlers are called
// in the order they were registered.
func (b *EventBus) OnCreated(handler func(EntityCreated)) {
	b.created = append(b.created, handler)
}

// OnRemoved registers a handler for EntityRemoved events.
func (b *EventBus) OnRemoved(handler func(EntityRemoved)) {
	b.removed = append(b.removed, handler)
}

// OnReserved registers a handler for VersionsReserved events.
func (b *EventBus) OnReserved(handler func(VersionsReserved)) {
	b.reserved = append(b.reserved, handler)
}

func (b *EventBus) publishCreated(ev EntityCreated) {
	for _, h := range b.created {
		h(ev)
	}
}

func (b *EventBus) publishRemoved(ev EntityRemoved) {
	for _, h := range b.removed {
		h(ev)
	}
}

func (b *EventBus) publishReserved(ev VersionsReserved) {
	for _, h := range b.reserved {
		h(ev)
	}
}
