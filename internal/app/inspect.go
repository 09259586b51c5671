package app

import (
	"context"

	"schemaver/internal/core"
)

func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	root, err := s.loadRoot(ctx, req.SchemaInput)
	if err != nil {
		return InspectResult{}, err
	}
	result := InspectResult{
		Version: root.Version(),
		Changes: root.Changes(),
	}
	for _, ns := range root.Namespaces() {
		summary := InspectNamespaceSummary{Name: ns.Name()}
		for _, name := range ns.Names() {
			t, _ := ns.Lookup(name)
			summary.Types = append(summary.Types, summarizeType(ns, name, t))
		}
		result.Namespaces = append(result.Namespaces, summary)
	}
	return result, nil
}

func summarizeType(ns *core.Namespace, name string, t *core.ResolvedType) InspectTypeSummary {
	summary := InspectTypeSummary{
		FQN:        core.FQN(ns.Name(), name),
		Compact:    t.Compact(),
		Versions:   t.Versions(),
		FlagsField: t.FlagsField(),
	}
	if ns.IsAlias(name) {
		summary.AliasOf = t.FQN()
		return summary
	}
	for _, d := range t.Descriptors() {
		summary.Fields++
		if d.Optional {
			summary.Optional++
		}
	}
	return summary
}
