package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// Resolve builds the root, writes its snapshot and, when a manifest path
// is given, forwards the resolved graph to the code generator.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("snapshot output path is required")
	}
	root, err := s.loadRoot(ctx, req.SchemaInput)
	if err != nil {
		return ResolveResult{}, err
	}
	if err := s.SnapshotWriter.WriteSnapshot(outputPath, root.Snapshot()); err != nil {
		return ResolveResult{}, err
	}
	result := ResolveResult{
		Version:    root.Version(),
		OutputPath: outputPath,
		Changes:    root.Changes(),
	}
	if manifestPath := strings.TrimSpace(req.ManifestPath); manifestPath != "" {
		if err := root.GenerateCode(ctx, s.Generator(manifestPath)); err != nil {
			return ResolveResult{}, err
		}
		result.ManifestPath = manifestPath
	}
	log.Ctx(ctx).Info().
		Int("version", result.Version).
		Int("changes", len(result.Changes)).
		Str("snapshot", outputPath).
		Msg("schema resolved")
	return result, nil
}

func (s Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return GenerateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	root, err := s.loadRoot(ctx, req.SchemaInput)
	if err != nil {
		return GenerateResult{}, err
	}
	if err := root.GenerateCode(ctx, s.Generator(manifestPath)); err != nil {
		return GenerateResult{}, err
	}
	return GenerateResult{Version: root.Version(), ManifestPath: manifestPath}, nil
}
