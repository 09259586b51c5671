package core

import (
	"slices"

	"schemaver/internal/types"
)

// Field is a resolved struct field.
type Field struct {
	Name     string
	Type     *ResolvedType
	Required bool
	Array    bool
	Version  int
}

// ResolvedType is the canonical resolved form of a type. A SchemaRoot
// holds exactly one per fqn; primitives are process-wide singletons.
// Instances are immutable once construction of their root completes.
type ResolvedType struct {
	fqn       string
	name      string
	namespace string
	kind      types.TypeKind
	compact   bool
	boolean   bool
	def       any

	fields     []Field
	positions  map[string]int
	versions   types.VersionRange
	flagsField int

	descriptors []FieldDescriptor
}

func (t *ResolvedType) FQN() string                  { return t.fqn }
func (t *ResolvedType) Name() string                 { return t.name }
func (t *ResolvedType) Namespace() string            { return t.namespace }
func (t *ResolvedType) Kind() types.TypeKind         { return t.kind }
func (t *ResolvedType) Compact() bool                { return t.compact }
func (t *ResolvedType) IsBoolean() bool              { return t.boolean }
func (t *ResolvedType) Default() any                 { return t.def }
func (t *ResolvedType) Versions() types.VersionRange { return t.versions }

// FlagsField is the position of the optional-field bitmask, or -1 when
// the struct has no optional fields and no explicit position.
func (t *ResolvedType) FlagsField() int { return t.flagsField }

// IsPrimitive reports whether t comes from the primitive catalog.
func (t *ResolvedType) IsPrimitive() bool { return t.kind == types.TypeKindPrimitive }

// Framed reports whether values of t are length-prefixed when nested in
// another struct. Primitives and compact types are written bare.
func (t *ResolvedType) Framed() bool { return !t.IsPrimitive() && !t.compact }

func (t *ResolvedType) Fields() []Field {
	return slices.Clone(t.fields)
}

// Field looks a field up by name.
func (t *ResolvedType) Field(name string) (Field, bool) {
	idx, ok := t.positions[name]
	if !ok {
		return Field{}, false
	}
	return t.fields[idx], true
}

// Position returns the index of the named field.
func (t *ResolvedType) Position(name string) (int, bool) {
	idx, ok := t.positions[name]
	return idx, ok
}

// Descriptors returns the encode descriptors derived at construction.
func (t *ResolvedType) Descriptors() []FieldDescriptor {
	return slices.Clone(t.descriptors)
}
