package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"schemaver/internal/ports"
	"schemaver/internal/types"
)

// SnapshotFileAdapter writes snapshots as YAML documents that
// SchemaFileAdapter can read back.
type SnapshotFileAdapter struct{}

func NewSnapshotFileAdapter() SnapshotFileAdapter {
	return SnapshotFileAdapter{}
}

func (a SnapshotFileAdapter) WriteSnapshot(path string, doc types.Document) error {
	if doc.Format == "" {
		doc.Format = CurrentFormat
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode snapshot").
			WithCause(err)
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	log.Debug().Str("path", path).Int("version", doc.Version).Msg("snapshot written")
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create output directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + path).
			WithCause(err)
	}
	return nil
}

var _ ports.SnapshotWriterPort = SnapshotFileAdapter{}
