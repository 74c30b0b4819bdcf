package ecs

// EntityId identifies an entity within the Entities collection that owns it.
// Ids are assigned on Push, start at 1 and are never reused by a collection.
// The zero value means the entity has not been added anywhere.
type EntityId uint64

// Entity owns a Store of components and a human-readable label.
// Labels are not unique: several entities may share one.
type Entity struct {
	Components *Store

	id    EntityId
	label string
}

// NewEntity creates an entity with an empty component store.
func NewEntity(label string) *Entity {
	return &Entity{
		Components: NewStore(),
		label:      label,
	}
}

// Label returns the entity's label.
func (e *Entity) Label() string {
	return e.label
}

// Id returns the id assigned by the owning collection, or 0.
func (e *Entity) Id() EntityId {
	return e.id
}

// Equal reports whether both entities carry the same label.
// Components are not compared.
func (e *Entity) Equal(other *Entity) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.label == other.label
}

// Insert stores component under its dynamic type, replacing any previous
// component of that type.
func (e *Entity) Insert(component any) {
	e.Components.InsertAny(component)
}

// Has reports whether the entity carries a component of type T.
func Has[T any](e *Entity) bool {
	return Contains[T](e.Components)
}

// ReadComponent returns a pointer to the entity's T component, or nil.
func ReadComponent[T any](e *Entity) *T {
	return GetMut[T](e.Components)
}
