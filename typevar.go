package typingargs

import (
	"maps"
	"reflect"
)

// TypeVar is a placeholder standing for one generic parameter slot of a
// class. Variables are compared by pointer identity; the name only appears
// in display output and error context. Create one per slot with NewVar and
// share it between the class declaration and its accessors.
type TypeVar struct {
	// name keeps the struct non-empty so distinct variables get distinct
	// pointers.
	name string
}

// NewVar creates a new type variable with the given display name.
func NewVar(name string) *TypeVar {
	return &TypeVar{name: name}
}

func (v *TypeVar) String() string {
	if v == nil {
		return "<nil var>"
	}
	return v.name
}

// Bindings maps a type variable to the concrete type substituted for it.
// A class's bindings are set when the class is created and never mutated
// afterwards; adding bindings synthesizes a new class instead.
type Bindings map[*TypeVar]reflect.Type

// clone returns a copy, keeping nil maps nil so the "never captured" state
// survives copying.
func (b Bindings) clone() Bindings {
	if b == nil {
		return nil
	}
	return maps.Clone(b)
}

// overlay merges src into b, src entries winning on collision.
func (b Bindings) overlay(src Bindings) {
	for v, t := range src {
		b[v] = t
	}
}

// TypeOf returns the reflect.Type of the type parameter T. It works for
// interface types as well as concrete ones.
func TypeOf[T any]() reflect.Type {
	var zero *T
	return reflect.TypeOf(zero).Elem()
}
