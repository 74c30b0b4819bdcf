package ecs

// EntityBuilder accumulates components before producing an Entity.
// A builder can be built exactly once.
type EntityBuilder struct {
	entity *Entity
}

// Create starts building an entity with the given label.
func Create(label string) *EntityBuilder {
	return &EntityBuilder{entity: NewEntity(label)}
}

// Add inserts component, overwriting a previously added component of the
// same type.
func (b *EntityBuilder) Add(component any) *EntityBuilder {
	if b.entity == nil {
		panic("entity builder used after Build")
	}
	b.entity.Insert(component)
	return b
}

// Build finalizes the entity. Further use of the builder panics.
func (b *EntityBuilder) Build() *Entity {
	if b.entity == nil {
		panic("entity builder used after Build")
	}
	e := b.entity
	b.entity = nil
	return e
}
