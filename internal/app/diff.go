package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schemaver/internal/core"
)

// Diff compares a revision against its previous snapshot with version
// bookkeeping stripped, the same comparison that drives version bumps.
func (s Service) Diff(ctx context.Context, req DiffRequest) (DiffResult, error) {
	if strings.TrimSpace(req.PreviousPath) == "" {
		return DiffResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("previous snapshot path is required")
	}
	root, err := s.loadRoot(ctx, req.SchemaInput)
	if err != nil {
		return DiffResult{}, err
	}
	previous := root.Previous()
	from := core.Canonicalize(previous.Raw())
	to := core.Canonicalize(root.Raw())
	result := DiffResult{
		PreviousVersion: previous.Version(),
		Version:         root.Version(),
		Changed:         !core.SchemasEqual(from, to),
	}
	if !result.Changed {
		return result, nil
	}
	if event := log.Ctx(ctx).Debug(); event.Enabled() {
		event.Str("diff", core.SchemaDiff(from, to)).Msg("structural schema diff")
	}
	result.Text, err = s.DiffRenderer(req.Color).Render(from, to)
	if err != nil {
		return DiffResult{}, err
	}
	return result, nil
}
