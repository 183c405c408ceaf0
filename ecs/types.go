package ecs

import "reflect"

// TypeID is the stable identifier of a component type within one
// TypeRegistry. Identical types always yield the same TypeID and distinct
// types never collide: identity is assigned from the reflect.Type at first
// encounter, not derived from a structural hash.
type TypeID string

// TypeRegistry assigns component types their TypeID and layout bit position.
// Every World owns exactly one registry, so independent Worlds (and parallel
// tests) share no hidden type state.
//
// Bit positions are append-only: once a type has been assigned a position it
// keeps it for the lifetime of the registry, even if every layout clears the
// bit again. This keeps all layouts bound to the same registry comparable.
type TypeRegistry struct {
	ids   map[reflect.Type]TypeID
	types map[TypeID]reflect.Type
	bits  map[TypeID]int
	byBit []TypeID
}

// NewTypeRegistry creates an empty type registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		ids:   make(map[reflect.Type]TypeID),
		types: make(map[TypeID]reflect.Type),
		bits:  make(map[TypeID]int),
	}
}

// IDOf returns the memoized TypeID for a component type. Pointer types are
// identified by their element type.
func (r *TypeRegistry) IDOf(t reflect.Type) TypeID {
	t = indirectType(t)
	if id, ok := r.ids[t]; ok {
		return id
	}
	id := TypeID(typeName(t))
	r.ids[t] = id
	r.types[id] = t
	return id
}

// TypeFor returns the reflect.Type a TypeID was assigned for.
func (r *TypeRegistry) TypeFor(id TypeID) (reflect.Type, bool) {
	t, ok := r.types[id]
	return t, ok
}

// TypeIDs returns every identifier that has a layout bit position, in
// bit-position (first-encounter) order.
func (r *TypeRegistry) TypeIDs() []TypeID {
	out := make([]TypeID, len(r.byBit))
	copy(out, r.byBit)
	return out
}

// bitFor returns the layout bit position for a TypeID, assigning the next
// free position on first encounter.
func (r *TypeRegistry) bitFor(id TypeID) int {
	if bit, ok := r.bits[id]; ok {
		return bit
	}
	bit := len(r.byBit)
	r.bits[id] = bit
	r.byBit = append(r.byBit, id)
	return bit
}

// lookupBit returns an already-assigned bit position, without assigning one.
func (r *TypeRegistry) lookupBit(id TypeID) (int, bool) {
	bit, ok := r.bits[id]
	return bit, ok
}

func typeName(t reflect.Type) string {
	if pkg := t.PkgPath(); pkg != "" {
		return pkg + "." + t.Name()
	}
	return t.String()
}

// componentType extracts the component type of a value. Pointers identify
// their element type, so &Position{} and Position{} are the same component.
func componentType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t == nil {
		panic("nil is not a component")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	// Components are value types: structs or primitives. Pointers, maps,
	// channels, and functions have aliasing semantics that break per-entity
	// ownership.
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func:
		panic("components cannot be pointers, maps, channels, or functions")
	}

	return t
}

func indirectType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}
