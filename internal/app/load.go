package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schemaver/internal/core"
)

// loadRoot builds the previous root (a replayed snapshot) when one is
// named, then the current root against it.
func (s Service) loadRoot(ctx context.Context, in SchemaInput) (*core.SchemaRoot, error) {
	inputPath := strings.TrimSpace(in.InputPath)
	if inputPath == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema input path is required")
	}
	var previous *core.SchemaRoot
	if previousPath := strings.TrimSpace(in.PreviousPath); previousPath != "" {
		doc, err := s.Source.LoadDocument(previousPath)
		if err != nil {
			return nil, err
		}
		previous, err = core.NewSchemaRoot(ctx, doc, nil)
		if err != nil {
			return nil, err
		}
		log.Ctx(ctx).Debug().Str("path", previousPath).Int("version", previous.Version()).Msg("previous snapshot replayed")
	}
	doc, err := s.Source.LoadDocument(inputPath)
	if err != nil {
		return nil, err
	}
	return core.NewSchemaRoot(ctx, doc, previous)
}
