package core

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"schemaver/internal/ports"
	"schemaver/internal/types"
)

// FQN builds the fully-qualified name of a declared type.
func FQN(namespace string, name string) string {
	return "@" + namespace + "/" + name
}

// SplitFQN is the inverse of FQN.
func SplitFQN(fqn string) (namespace string, name string, ok bool) {
	rest, found := strings.CutPrefix(fqn, "@")
	if !found {
		return "", "", false
	}
	namespace, name, ok = strings.Cut(rest, "/")
	if !ok || namespace == "" || name == "" {
		return "", "", false
	}
	return namespace, name, true
}

// Entry is one resolved declaration in declaration order.
type Entry struct {
	FQN         string
	Declaration types.TypeDeclaration
	Type        *ResolvedType
}

// SchemaRoot owns every type resolved from one schema revision. It is
// built once and is read-only afterwards.
type SchemaRoot struct {
	version  int
	previous *SchemaRoot
	raw      types.Document

	namespaces     map[string]*Namespace
	namespaceOrder []string
	types          map[string]*ResolvedType
	entries        []Entry
}

// NewSchemaRoot resolves doc, optionally relative to a previous revision.
// Any failing declaration aborts construction.
func NewSchemaRoot(ctx context.Context, doc types.Document, previous *SchemaRoot) (*SchemaRoot, error) {
	root := &SchemaRoot{
		previous:   previous,
		raw:        types.Document{Format: doc.Format, Version: doc.Version, Schema: cloneDeclarations(doc.Schema)},
		namespaces: map[string]*Namespace{},
		types:      map[string]*ResolvedType{},
	}
	root.version = computeVersion(root.raw, previous)

	resolver := NewTypeResolver()
	for idx, decl := range root.raw.Schema {
		if strings.TrimSpace(decl.Name) == "" || strings.TrimSpace(decl.Namespace) == "" {
			return nil, invalidDeclarationError(fmt.Sprintf("declaration %d must have a name and a namespace", idx))
		}
		ns, ok := root.namespaces[decl.Namespace]
		if !ok {
			ns = newNamespace(decl.Namespace, resolver)
			root.namespaces[decl.Namespace] = ns
			root.namespaceOrder = append(root.namespaceOrder, decl.Namespace)
		}
		fqn := FQN(decl.Namespace, decl.Name)
		resolved, err := ns.Register(ctx, root, fqn, decl)
		if err != nil {
			return nil, err
		}
		root.types[fqn] = resolved
		root.entries = append(root.entries, Entry{FQN: fqn, Declaration: decl, Type: resolved})
	}

	log.Ctx(ctx).Debug().
		Int("version", root.version).
		Int("types", len(root.entries)).
		Int("namespaces", len(root.namespaceOrder)).
		Msg("schema root constructed")
	return root, nil
}

// computeVersion compares the version-stripped schemas exactly once. A
// root without a previous revision starts at 1, or at the version a
// replayed snapshot carries.
func computeVersion(current types.Document, previous *SchemaRoot) int {
	if previous == nil {
		return max(1, current.Version)
	}
	if SchemasEqual(Canonicalize(previous.raw.Schema), Canonicalize(current.Schema)) {
		return previous.version
	}
	return previous.version + 1
}

func (r *SchemaRoot) Version() int {
	return r.version
}

func (r *SchemaRoot) Previous() *SchemaRoot {
	return r.previous
}

// Raw returns a copy of the declarations the root was built from.
func (r *SchemaRoot) Raw() []types.TypeDeclaration {
	return cloneDeclarations(r.raw.Schema)
}

// Resolve looks a primitive name or fqn up. Unknown names are an
// UnresolvedReference error.
func (r *SchemaRoot) Resolve(nameOrFQN string) (*ResolvedType, error) {
	if t, ok := Primitive(nameOrFQN); ok {
		return t, nil
	}
	if t, ok := r.types[nameOrFQN]; ok {
		return t, nil
	}
	return nil, unresolvedReferenceError(nameOrFQN)
}

// StructVersions returns the previous revision's range for fqn, or a
// fresh range pinned to the current version.
func (r *SchemaRoot) StructVersions(fqn string) types.VersionRange {
	if baseline := r.baseline(fqn); baseline != nil {
		return baseline.versions
	}
	return types.VersionRange{First: r.version, Latest: r.version}
}

// baseline returns the previous revision's struct declared under fqn.
// Aliases in the previous revision are not baselines.
func (r *SchemaRoot) baseline(fqn string) *ResolvedType {
	if r.previous == nil {
		return nil
	}
	t, ok := r.previous.types[fqn]
	if !ok || t.FQN() != fqn {
		return nil
	}
	return t
}

func (r *SchemaRoot) Namespace(name string) (*Namespace, bool) {
	ns, ok := r.namespaces[name]
	return ns, ok
}

// Namespaces returns namespaces in first-sighting order.
func (r *SchemaRoot) Namespaces() []*Namespace {
	out := make([]*Namespace, 0, len(r.namespaceOrder))
	for _, name := range r.namespaceOrder {
		out = append(out, r.namespaces[name])
	}
	return out
}

// Entries returns resolved declarations in declaration order.
func (r *SchemaRoot) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Snapshot annotates every struct with its resolved field versions and
// version range. Feeding the result back as the previous revision
// preserves history.
func (r *SchemaRoot) Snapshot() types.Document {
	doc := types.Document{
		Format:  r.raw.Format,
		Version: r.version,
		Schema:  make([]types.TypeDeclaration, 0, len(r.entries)),
	}
	for _, entry := range r.entries {
		decl := cloneDeclaration(entry.Declaration)
		if decl.Kind() == types.DeclarationKindStruct {
			for idx := range decl.Fields {
				decl.Fields[idx].Version = entry.Type.fields[idx].Version
			}
			versions := entry.Type.versions
			decl.Versions = &versions
		} else {
			decl.Versions = nil
		}
		doc.Schema = append(doc.Schema, decl)
	}
	return doc
}

// Changes lists structs that are new or whose latest version grew
// relative to the previous revision, in declaration order.
func (r *SchemaRoot) Changes() []types.TypeChange {
	var changes []types.TypeChange
	for _, entry := range r.entries {
		if entry.Type.FQN() != entry.FQN {
			continue
		}
		baseline := r.baseline(entry.FQN)
		if baseline == nil {
			changes = append(changes, types.TypeChange{FQN: entry.FQN, Current: entry.Type.versions})
			continue
		}
		if entry.Type.versions.Latest > baseline.versions.Latest {
			prev := baseline.versions
			changes = append(changes, types.TypeChange{FQN: entry.FQN, Previous: &prev, Current: entry.Type.versions})
		}
	}
	return changes
}

// Graph flattens the root into the form consumed by code generators.
func (r *SchemaRoot) Graph() types.ResolvedGraph {
	graph := types.ResolvedGraph{Version: r.version}
	for _, ns := range r.Namespaces() {
		out := types.ResolvedNamespace{Name: ns.Name()}
		for _, name := range ns.Names() {
			t, _ := ns.Lookup(name)
			info := types.ResolvedTypeInfo{
				Name:       name,
				FQN:        FQN(ns.Name(), name),
				Kind:       t.Kind(),
				Versions:   t.versions,
				FlagsField: t.flagsField,
			}
			if ns.IsAlias(name) {
				info.AliasOf = t.FQN()
				out.Types = append(out.Types, info)
				continue
			}
			info.Compact = t.compact
			for _, d := range t.descriptors {
				info.Fields = append(info.Fields, types.FieldEncoding{
					Name:     d.Name,
					Type:     d.TypeFQN,
					Version:  d.Version,
					Optional: d.Optional,
					Array:    d.Array,
					Framed:   d.Framed,
					Flag:     d.Flag,
					Default:  d.Default,
					Plan:     d.Plan(),
				})
			}
			out.Types = append(out.Types, info)
		}
		graph.Namespaces = append(graph.Namespaces, out)
	}
	return graph
}

// GenerateCode forwards the resolved graph to a code generator.
func (r *SchemaRoot) GenerateCode(ctx context.Context, generator ports.CodeGeneratorPort) error {
	return generator.Generate(ctx, r.Graph())
}
