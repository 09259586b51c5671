package core

import "schemaver/internal/types"

// BooleanPrimitive is the primitive downstream consumers treat as a flag
// or tri-state value.
const BooleanPrimitive = "boolean"

// primitives is built once at package init and never mutated, so
// concurrent reads need no synchronization.
var primitives = newPrimitiveTable([]struct {
	name string
	def  any
}{
	{name: BooleanPrimitive, def: false},
	{name: "int", def: int64(0)},
	{name: "uint", def: uint64(0)},
	{name: "float", def: float32(0)},
	{name: "double", def: float64(0)},
	{name: "string", def: ""},
	{name: "bytes", def: nil},
})

func newPrimitiveTable(entries []struct {
	name string
	def  any
}) map[string]*ResolvedType {
	table := make(map[string]*ResolvedType, len(entries))
	for _, entry := range entries {
		table[entry.name] = &ResolvedType{
			fqn:        entry.name,
			name:       entry.name,
			kind:       types.TypeKindPrimitive,
			boolean:    entry.name == BooleanPrimitive,
			def:        entry.def,
			positions:  map[string]int{},
			versions:   types.VersionRange{First: 1, Latest: 1},
			flagsField: -1,
		}
	}
	return table
}

// Primitive returns the process-wide singleton for a primitive name.
func Primitive(name string) (*ResolvedType, bool) {
	t, ok := primitives[name]
	return t, ok
}

// PrimitiveNames lists the primitive catalog in no particular order.
func PrimitiveNames() []string {
	names := make([]string, 0, len(primitives))
	for name := range primitives {
		names = append(names, name)
	}
	return names
}
