package ecs

import (
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

// slot holds one boxed value. ptr is always a *T where T == typ.
type slot struct {
	typ reflect.Type
	ptr any
}

// Store is a type-erased container holding at most one value per type.
// Entities use a Store for their components and the World uses one for
// globals shared by every system.
//
// Values are only reachable by naming the exact static type used on insertion;
// a lookup for any other type reports absence.
type Store struct {
	slots *intmap.Map[int, slot]
	types []reflect.Type
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		slots: intmap.New[int, slot](8),
	}
}

func (s *Store) put(t reflect.Type, ptr any) {
	if s.slots == nil {
		s.slots = intmap.New[int, slot](8)
	}
	id := typeId(t)
	if !s.slots.Has(id) {
		s.types = append(s.types, t)
	}
	s.slots.Put(id, slot{typ: t, ptr: ptr})
}

func (s *Store) lookup(t reflect.Type) (slot, bool) {
	if s == nil || s.slots == nil {
		return slot{}, false
	}
	return s.slots.Get(typeId(t))
}

// Insert stores value under the type T, replacing any previous value of T.
func Insert[T any](s *Store, value T) {
	ptr := new(T)
	*ptr = value
	s.put(reflect.TypeFor[T](), ptr)
}

// InsertAny stores value under its dynamic type, replacing any previous value
// of that type. The stored value is retrievable with Get[T] where T is the
// dynamic type of value.
func (s *Store) InsertAny(value any) {
	if value == nil {
		panic("cannot insert nil component")
	}
	t := reflect.TypeOf(value)
	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.put(t, ptr.Interface())
}

// Get returns a copy of the stored T and true, or the zero value and false.
func Get[T any](s *Store) (T, bool) {
	if ptr := GetMut[T](s); ptr != nil {
		return *ptr, true
	}
	var zero T
	return zero, false
}

// GetMut returns a pointer to the stored T for in-place mutation, or nil.
func GetMut[T any](s *Store) *T {
	entry, ok := s.lookup(reflect.TypeFor[T]())
	if !ok {
		return nil
	}
	ptr, ok := entry.ptr.(*T)
	if !ok {
		return nil
	}
	return ptr
}

// Contains reports whether a value of type T is stored.
func Contains[T any](s *Store) bool {
	return s.ContainsType(reflect.TypeFor[T]())
}

// Remove deletes the stored T and reports whether it was present.
func Remove[T any](s *Store) bool {
	return s.RemoveType(reflect.TypeFor[T]())
}

// ContainsType reports whether a value of the given type is stored.
func (s *Store) ContainsType(t reflect.Type) bool {
	if s == nil || s.slots == nil {
		return false
	}
	return s.slots.Has(typeId(t))
}

// RemoveType deletes the value stored under t.
func (s *Store) RemoveType(t reflect.Type) bool {
	if !s.ContainsType(t) {
		return false
	}
	s.slots.Del(typeId(t))
	s.types = slices.DeleteFunc(s.types, func(other reflect.Type) bool {
		return other == t
	})
	return true
}

// Value returns the boxed pointer stored under t, or nil.
func (s *Store) Value(t reflect.Type) any {
	entry, ok := s.lookup(t)
	if !ok {
		return nil
	}
	return entry.ptr
}

// Len returns the number of stored values.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.types)
}

// Types returns the stored types in first-insertion order.
func (s *Store) Types() []reflect.Type {
	if s == nil {
		return nil
	}
	return slices.Clone(s.types)
}
