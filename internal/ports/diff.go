package ports

import "schemaver/internal/types"

// DiffRendererPort renders the difference between two canonical
// schemas for humans.
type DiffRendererPort interface {
	Render(from []types.TypeDeclaration, to []types.TypeDeclaration) (string, error)
}
