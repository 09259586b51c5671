package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"schemaver/internal/ports"
	"schemaver/internal/types"
)

// CurrentFormat is the document format written by this tool.
const CurrentFormat = "1.0"

// supportedFormats is the PEP 440 specifier set of readable formats.
const supportedFormats = ">=1.0,<2.0"

// SchemaFileAdapter loads schema documents from YAML (or JSON) files.
type SchemaFileAdapter struct {
	formats pep440.Specifiers
}

func NewSchemaFileAdapter() SchemaFileAdapter {
	formats, err := pep440.NewSpecifiers(supportedFormats)
	if err != nil {
		panic("invalid supported format specifier: " + err.Error())
	}
	return SchemaFileAdapter{formats: formats}
}

func (a SchemaFileAdapter) LoadDocument(path string) (types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read schema file: " + path).
			WithCause(err)
	}
	doc, err := a.ParseDocument(data)
	if err != nil {
		return types.Document{}, errbuilder.New().
			WithCode(errbuilder.CodeOf(err)).
			WithMsg(errorMessage(err) + ": " + path).
			WithCause(err)
	}
	log.Debug().
		Str("path", path).
		Int("version", doc.Version).
		Int("declarations", len(doc.Schema)).
		Msg("schema document loaded")
	return doc, nil
}

// ParseDocument decodes a document and checks its format.
func (a SchemaFileAdapter) ParseDocument(data []byte) (types.Document, error) {
	var doc types.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return types.Document{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse schema document").
			WithCause(err)
	}
	if err := a.checkFormat(doc.Format); err != nil {
		return types.Document{}, err
	}
	if doc.Version < 0 {
		return types.Document{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema document version must not be negative")
	}
	return doc, nil
}

func (a SchemaFileAdapter) checkFormat(format string) error {
	format = strings.TrimSpace(format)
	if format == "" {
		return nil
	}
	version, err := pep440.Parse(format)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid schema format '" + format + "'").
			WithCause(err)
	}
	if !a.formats.Check(version) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported schema format '" + format + "', want " + supportedFormats)
	}
	return nil
}

var _ ports.SchemaSourcePort = SchemaFileAdapter{}
