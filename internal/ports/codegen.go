package ports

import (
	"context"

	"schemaver/internal/types"
)

// CodeGeneratorPort receives the fully resolved graph of a schema root
// and emits encode/decode artifacts for it.
type CodeGeneratorPort interface {
	Generate(ctx context.Context, graph types.ResolvedGraph) error
}
