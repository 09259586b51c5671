package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"schemaver/internal/types"
)

// TypeResolver turns one raw declaration into a ResolvedType against the
// types already registered on a root.
type TypeResolver struct{}

func NewTypeResolver() TypeResolver {
	return TypeResolver{}
}

func (r TypeResolver) Resolve(ctx context.Context, root *SchemaRoot, fqn string, decl types.TypeDeclaration) (*ResolvedType, error) {
	if decl.Kind() == types.DeclarationKindAlias {
		return r.resolveAlias(ctx, root, fqn, decl)
	}

	baseline := root.baseline(fqn)
	if baseline != nil && len(decl.Fields) < len(baseline.fields) {
		return nil, fieldOrderError(fqn, fmt.Sprintf("drops fields: had %d, now %d", len(baseline.fields), len(decl.Fields)))
	}
	if baseline != nil && baseline.compact && !decl.Compact {
		return nil, frozenTypeMutationError(fqn, "cannot be unfrozen")
	}
	if baseline != nil && baseline.compact && len(decl.Fields) > len(baseline.fields) {
		return nil, frozenTypeMutationError(fqn, fmt.Sprintf("adds fields: had %d, now %d", len(baseline.fields), len(decl.Fields)))
	}

	fields := make([]Field, 0, len(decl.Fields))
	positions := make(map[string]int, len(decl.Fields))
	for idx, fd := range decl.Fields {
		if fd.Name == "" {
			return nil, invalidDeclarationError(fmt.Sprintf("field %d of %s has no name", idx, fqn))
		}
		if _, dup := positions[fd.Name]; dup {
			return nil, invalidDeclarationError(fmt.Sprintf("field %s of %s is declared more than once", fd.Name, fqn))
		}
		ref, err := root.Resolve(fd.Type)
		if err != nil {
			return nil, err
		}
		field := Field{
			Name:     fd.Name,
			Type:     ref,
			Required: fd.Required,
			Array:    fd.Array,
		}
		field.Version, err = fieldVersion(root, fqn, baseline, idx, fd, field)
		if err != nil {
			return nil, err
		}
		positions[fd.Name] = idx
		fields = append(fields, field)
	}

	versions := seedVersions(root, fqn, baseline, decl)
	for _, field := range fields {
		if field.Version <= versions.Latest {
			continue
		}
		if decl.Compact {
			return nil, frozenTypeMutationError(fqn, fmt.Sprintf("field %s would move the type from version %d to %d", field.Name, versions.Latest, field.Version))
		}
		versions.Latest = field.Version
	}

	resolved := &ResolvedType{
		fqn:       fqn,
		name:      decl.Name,
		namespace: decl.Namespace,
		kind:      types.TypeKindStruct,
		compact:   decl.Compact,
		fields:    fields,
		positions: positions,
		versions:  versions,
	}
	explicit := -1
	if decl.FlagsField != nil {
		explicit = *decl.FlagsField
	}
	descriptors, flagsField, err := deriveDescriptors(fqn, fields, explicit)
	if err != nil {
		return nil, err
	}
	resolved.descriptors = descriptors
	resolved.flagsField = flagsField

	log.Ctx(ctx).Debug().
		Str("fqn", fqn).
		Int("fields", len(fields)).
		Int("first", versions.First).
		Int("latest", versions.Latest).
		Msg("type resolved")
	return resolved, nil
}

func (r TypeResolver) resolveAlias(ctx context.Context, root *SchemaRoot, fqn string, decl types.TypeDeclaration) (*ResolvedType, error) {
	if len(decl.Fields) > 0 {
		return nil, invalidDeclarationError(fmt.Sprintf("alias %s must not declare fields", fqn))
	}
	target, err := root.Resolve(decl.Alias)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().Str("fqn", fqn).Str("target", target.FQN()).Msg("alias resolved")
	return target, nil
}

// fieldVersion attributes a version to the field at idx. History is
// positional: the previous field at the same index supplies the version
// unless the field's shape changed. Fields appended to an existing type
// always take the current version; declared versions only count when the
// type has no baseline.
func fieldVersion(root *SchemaRoot, fqn string, baseline *ResolvedType, idx int, fd types.FieldDeclaration, field Field) (int, error) {
	if baseline != nil && idx < len(baseline.fields) {
		prev := baseline.fields[idx]
		if prev.Name != fd.Name && prev.Name != fd.RenamedFrom {
			return 0, fieldOrderError(fqn, fmt.Sprintf("position %d holds %s, previously %s; declare renamedFrom to rename", idx, fd.Name, prev.Name))
		}
		if prev.Type.FQN() != field.Type.FQN() || prev.Required != field.Required || prev.Array != field.Array {
			return root.Version(), nil
		}
		return prev.Version, nil
	}
	if baseline == nil && fd.Version > 0 {
		return fd.Version, nil
	}
	return root.Version(), nil
}

// seedVersions picks the starting range: the previous revision's, the
// declared one when replaying a snapshot, else one pinned to the root.
func seedVersions(root *SchemaRoot, fqn string, baseline *ResolvedType, decl types.TypeDeclaration) types.VersionRange {
	if baseline != nil {
		return baseline.versions
	}
	if root.Previous() == nil && decl.Versions != nil {
		return *decl.Versions
	}
	return root.StructVersions(fqn)
}
