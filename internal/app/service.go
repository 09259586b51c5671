package app

import (
	"schemaver/internal/adapters"
	"schemaver/internal/ports"
)

type Service struct {
	Source         ports.SchemaSourcePort
	SnapshotWriter ports.SnapshotWriterPort
	Generator      func(path string) ports.CodeGeneratorPort
	DiffRenderer   func(useColor bool) ports.DiffRendererPort
}

func NewService() Service {
	return Service{
		Source:         adapters.NewSchemaFileAdapter(),
		SnapshotWriter: adapters.NewSnapshotFileAdapter(),
		Generator: func(path string) ports.CodeGeneratorPort {
			return adapters.NewManifestGeneratorAdapter(path)
		},
		DiffRenderer: func(useColor bool) ports.DiffRendererPort {
			return adapters.NewDiffRendererAdapter(useColor)
		},
	}
}
