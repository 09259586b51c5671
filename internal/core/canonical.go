package core

import (
	"slices"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"schemaver/internal/types"
)

// Canonicalize returns a deep copy of schema with every version and
// rename annotation removed. Declaration and field order are preserved.
func Canonicalize(schema []types.TypeDeclaration) []types.TypeDeclaration {
	out := cloneDeclarations(schema)
	for i := range out {
		out[i].Versions = nil
		for j := range out[i].Fields {
			out[i].Fields[j].Version = 0
			out[i].Fields[j].RenamedFrom = ""
		}
	}
	return out
}

// SchemasEqual reports whether two schemas are structurally identical.
// Order matters; nil and empty collections compare equal.
func SchemasEqual(a, b []types.TypeDeclaration) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

// SchemaDiff renders the structural difference between two schemas in
// go-cmp's (-a +b) form.
func SchemaDiff(a, b []types.TypeDeclaration) string {
	return cmp.Diff(a, b, cmpopts.EquateEmpty())
}

func cloneDeclarations(schema []types.TypeDeclaration) []types.TypeDeclaration {
	if schema == nil {
		return nil
	}
	out := make([]types.TypeDeclaration, len(schema))
	for i, decl := range schema {
		out[i] = cloneDeclaration(decl)
	}
	return out
}

func cloneDeclaration(decl types.TypeDeclaration) types.TypeDeclaration {
	decl.Fields = slices.Clone(decl.Fields)
	if decl.FlagsField != nil {
		idx := *decl.FlagsField
		decl.FlagsField = &idx
	}
	if decl.Versions != nil {
		versions := *decl.Versions
		decl.Versions = &versions
	}
	return decl
}
