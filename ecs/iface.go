package ecs

import (
	"reflect"
	"unsafe"
)

// iface represents the internal memory layout of an interface{}.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typeId returns a process-stable integer identity for t.
// The runtime keeps exactly one descriptor per type, so the descriptor
// address held in the reflect.Type interface uniquely names the type.
func typeId(t reflect.Type) int {
	ptr := (*iface)(unsafe.Pointer(&t)).data
	return int(uintptr(ptr))
}

// typeIdFor is typeId for a static type.
func typeIdFor[T any]() int {
	return typeId(reflect.TypeFor[T]())
}
