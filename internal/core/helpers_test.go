package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"schemaver/internal/types"
)

func required(name string, ref string) types.FieldDeclaration {
	return types.FieldDeclaration{Name: name, Type: ref, Required: true}
}

func optional(name string, ref string) types.FieldDeclaration {
	return types.FieldDeclaration{Name: name, Type: ref}
}

// geometryDocument declares @geo/Point, the compact @geo/Vec and
// @geo/Shape referencing both.
func geometryDocument() types.Document {
	builder := NewSchemaBuilder()
	builder.Namespace("geo").
		Register(types.TypeDeclaration{
			Name:   "Point",
			Fields: []types.FieldDeclaration{required("x", "double"), required("y", "double")},
		}).
		Register(types.TypeDeclaration{
			Name:    "Vec",
			Compact: true,
			Fields:  []types.FieldDeclaration{required("dx", "float"), required("dy", "float")},
		}).
		Register(types.TypeDeclaration{
			Name: "Shape",
			Fields: []types.FieldDeclaration{
				required("origin", "@geo/Point"),
				optional("offset", "@geo/Vec"),
				{Name: "corners", Type: "@geo/Point", Array: true},
			},
		})
	return builder.Document()
}

func mustRoot(t *testing.T, doc types.Document, previous *SchemaRoot) *SchemaRoot {
	t.Helper()
	root, err := NewSchemaRoot(t.Context(), doc, previous)
	require.NoError(t, err)
	return root
}

func mustResolve(t *testing.T, root *SchemaRoot, ref string) *ResolvedType {
	t.Helper()
	resolved, err := root.Resolve(ref)
	require.NoError(t, err)
	return resolved
}

// withDeclaration returns a copy of doc with the named declaration
// replaced by mutate's result.
func withDeclaration(doc types.Document, fqn string, mutate func(types.TypeDeclaration) types.TypeDeclaration) types.Document {
	out := types.Document{Version: doc.Version, Schema: cloneDeclarations(doc.Schema)}
	for i, decl := range out.Schema {
		if FQN(decl.Namespace, decl.Name) == fqn {
			out.Schema[i] = mutate(decl)
		}
	}
	return out
}
