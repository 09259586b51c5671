package adapters

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"schemaver/internal/ports"
	"schemaver/internal/types"
)

// ManifestGeneratorAdapter is a code generator that writes the resolved
// graph, encode descriptors included, as a YAML manifest for external
// generators to consume.
type ManifestGeneratorAdapter struct {
	Path string
}

func NewManifestGeneratorAdapter(path string) ManifestGeneratorAdapter {
	return ManifestGeneratorAdapter{Path: path}
}

func (a ManifestGeneratorAdapter) Generate(ctx context.Context, graph types.ResolvedGraph) error {
	if a.Path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	data, err := yaml.Marshal(manifest{Format: CurrentFormat, Graph: graph})
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode manifest").
			WithCause(err)
	}
	if err := writeFile(a.Path, data); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().Str("path", a.Path).Int("namespaces", len(graph.Namespaces)).Msg("manifest generated")
	return nil
}

type manifest struct {
	Format string              `yaml:"format"`
	Graph  types.ResolvedGraph `yaml:",inline"`
}

var _ ports.CodeGeneratorPort = ManifestGeneratorAdapter{}
