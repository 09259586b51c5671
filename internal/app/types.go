package app

import "schemaver/internal/types"

// SchemaInput names a schema revision and, optionally, the snapshot of
// the revision before it.
type SchemaInput struct {
	InputPath    string
	PreviousPath string
}

type ValidateRequest struct {
	SchemaInput
}

type ValidateResult struct {
	Version         int
	PreviousVersion int
	Types           int
}

type ResolveRequest struct {
	SchemaInput
	OutputPath   string
	ManifestPath string
}

type ResolveResult struct {
	Version      int
	OutputPath   string
	ManifestPath string
	Changes      []types.TypeChange
}

type GenerateRequest struct {
	SchemaInput
	ManifestPath string
}

type GenerateResult struct {
	Version      int
	ManifestPath string
}

type InspectRequest struct {
	SchemaInput
}

type InspectTypeSummary struct {
	FQN        string
	AliasOf    string
	Compact    bool
	Versions   types.VersionRange
	Fields     int
	Optional   int
	FlagsField int
}

type InspectNamespaceSummary struct {
	Name  string
	Types []InspectTypeSummary
}

type InspectResult struct {
	Version    int
	Namespaces []InspectNamespaceSummary
	Changes    []types.TypeChange
}

type DiffRequest struct {
	SchemaInput
	Color bool
}

type DiffResult struct {
	PreviousVersion int
	Version         int
	Changed         bool
	Text            string
}
