package ports

import "schemaver/internal/types"

// SchemaSourcePort loads schema documents: hand-authored revisions and
// previously written snapshots share one layout.
type SchemaSourcePort interface {
	// LoadDocument reads and validates a document. Unsupported formats
	// are rejected before any resolution happens.
	LoadDocument(path string) (types.Document, error)
}
