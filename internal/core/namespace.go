package core

import (
	"context"
	"slices"

	assert "github.com/ZanzyTHEbar/assert-lib"

	"schemaver/internal/types"
)

// Namespace maps local type names to resolved types in registration
// order.
type Namespace struct {
	name     string
	order    []string
	types    map[string]*ResolvedType
	resolver TypeResolver
}

func newNamespace(name string, resolver TypeResolver) *Namespace {
	return &Namespace{
		name:     name,
		types:    map[string]*ResolvedType{},
		resolver: resolver,
	}
}

func (n *Namespace) Name() string {
	return n.name
}

// Register resolves decl and stores it under its local name. An alias
// stores the shared target.
func (n *Namespace) Register(ctx context.Context, root *SchemaRoot, fqn string, decl types.TypeDeclaration) (*ResolvedType, error) {
	assert.NotEmpty(ctx, fqn, "fqn must be set")
	if _, exists := n.types[decl.Name]; exists {
		return nil, duplicateTypeError(fqn)
	}
	resolved, err := n.resolver.Resolve(ctx, root, fqn, decl)
	if err != nil {
		return nil, err
	}
	n.types[decl.Name] = resolved
	n.order = append(n.order, decl.Name)
	return resolved, nil
}

func (n *Namespace) Lookup(name string) (*ResolvedType, bool) {
	t, ok := n.types[name]
	return t, ok
}

// Names returns local names in registration order.
func (n *Namespace) Names() []string {
	return slices.Clone(n.order)
}

// IsAlias reports whether the local name redirects to a type declared
// elsewhere.
func (n *Namespace) IsAlias(name string) bool {
	t, ok := n.types[name]
	return ok && t.FQN() != FQN(n.name, name)
}
