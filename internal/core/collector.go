package core

import "schemaver/internal/types"

// SchemaBuilder collects raw declarations in call order. It performs no
// validation and knows nothing about versions.
type SchemaBuilder struct {
	declarations []types.TypeDeclaration
}

func NewSchemaBuilder() *SchemaBuilder {
	return &SchemaBuilder{}
}

// Namespace returns a handle that stamps declarations with name.
func (b *SchemaBuilder) Namespace(name string) NamespaceBuilder {
	return NamespaceBuilder{builder: b, name: name}
}

// Document returns the collected declarations as a version-0 document.
func (b *SchemaBuilder) Document() types.Document {
	return types.Document{
		Version: 0,
		Schema:  cloneDeclarations(b.declarations),
	}
}

type NamespaceBuilder struct {
	builder *SchemaBuilder
	name    string
}

func (n NamespaceBuilder) Register(decl types.TypeDeclaration) NamespaceBuilder {
	decl = cloneDeclaration(decl)
	decl.Namespace = n.name
	n.builder.declarations = append(n.builder.declarations, decl)
	return n
}
