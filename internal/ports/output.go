package ports

import "schemaver/internal/types"

type SnapshotWriterPort interface {
	WriteSnapshot(path string, doc types.Document) error
}
