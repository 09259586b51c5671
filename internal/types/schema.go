package types

// Document is the top-level structure of a schema file. Hand-authored
// documents carry version 0; snapshots carry the resolved overall
// version so they can be replayed as the previous revision.
type Document struct {
	// Format identifies the document layout. Empty means the current
	// format.
	Format string `yaml:"format,omitempty"`

	// Version is the overall schema version. The declaration collector
	// always emits 0; the engine computes the real value relative to a
	// previous snapshot.
	Version int `yaml:"version"`

	// Schema lists type declarations in declaration order. Order is
	// significant: a declaration may only reference types declared
	// before it.
	Schema []TypeDeclaration `yaml:"schema"`
}

// TypeDeclaration is a raw, unresolved type declaration. It is either a
// struct (Fields) or an alias (Alias set to a primitive name or fqn).
type TypeDeclaration struct {
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace"`

	Fields []FieldDeclaration `yaml:"fields,omitempty"`

	// Compact marks a frozen type: its wire layout is locked after
	// first publication.
	Compact bool `yaml:"compact,omitempty"`

	// Alias redirects this name to another type. An alias never gets
	// its own resolved identity.
	Alias string `yaml:"alias,omitempty"`

	// FlagsField pins the position of the optional-field bitmask.
	// When unset the first optional field fixes it.
	FlagsField *int `yaml:"flagsField,omitempty"`

	// Versions is bookkeeping written by snapshots.
	Versions *VersionRange `yaml:"versions,omitempty"`
}

// Kind reports which variant of declaration this is.
func (d TypeDeclaration) Kind() DeclarationKind {
	if d.Alias != "" {
		return DeclarationKindAlias
	}
	return DeclarationKindStruct
}

// FieldDeclaration is a raw struct field. Absence of Required means the
// field is optional.
type FieldDeclaration struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Required bool   `yaml:"required,omitempty"`
	Array    bool   `yaml:"array,omitempty"`

	// Version is bookkeeping written by snapshots.
	Version int `yaml:"version,omitempty"`

	// RenamedFrom announces that the field previously at this position
	// carried a different name.
	RenamedFrom string `yaml:"renamedFrom,omitempty"`
}

// VersionRange records the overall schema version at which a type was
// introduced and the one at which its structure last changed.
type VersionRange struct {
	First  int `yaml:"first"`
	Latest int `yaml:"latest"`
}
