package types

// ResolvedGraph is the fully resolved schema handed to a code generator.
// Namespaces appear in first-sighting order and types in declaration
// order within their namespace.
type ResolvedGraph struct {
	Version    int                 `yaml:"version"`
	Namespaces []ResolvedNamespace `yaml:"namespaces"`
}

type ResolvedNamespace struct {
	Name  string             `yaml:"name"`
	Types []ResolvedTypeInfo `yaml:"types"`
}

// ResolvedTypeInfo describes one namespace entry. Alias entries only
// carry AliasOf; the target's own entry holds the layout.
type ResolvedTypeInfo struct {
	Name       string          `yaml:"name"`
	FQN        string          `yaml:"fqn"`
	Kind       TypeKind        `yaml:"kind"`
	AliasOf    string          `yaml:"aliasOf,omitempty"`
	Compact    bool            `yaml:"compact,omitempty"`
	Versions   VersionRange    `yaml:"versions"`
	FlagsField int             `yaml:"flagsField"`
	Fields     []FieldEncoding `yaml:"fields,omitempty"`
}

// FieldEncoding is the encode descriptor of a single struct field.
type FieldEncoding struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Version  int    `yaml:"version"`
	Optional bool   `yaml:"optional"`
	Array    bool   `yaml:"array"`
	Framed   bool   `yaml:"framed"`
	Flag     uint32 `yaml:"flag,omitempty"`
	Default  any    `yaml:"default"`
	Plan     string `yaml:"plan"`
}

// TypeChange reports a struct that is new or whose latest version grew
// relative to the previous revision.
type TypeChange struct {
	FQN      string
	Previous *VersionRange
	Current  VersionRange
}
