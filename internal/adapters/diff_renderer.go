package adapters

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"

	"schemaver/internal/ports"
	"schemaver/internal/types"
)

// DiffRendererAdapter renders a line diff of two schemas in their YAML
// form. Removed lines start with "-", added lines with "+".
type DiffRendererAdapter struct {
	Color bool
}

func NewDiffRendererAdapter(useColor bool) DiffRendererAdapter {
	return DiffRendererAdapter{Color: useColor}
}

func (a DiffRendererAdapter) Render(from []types.TypeDeclaration, to []types.TypeDeclaration) (string, error) {
	fromText, err := marshalSchema(from)
	if err != nil {
		return "", err
	}
	toText, err := marshalSchema(to)
	if err != nil {
		return "", err
	}

	dmp := diffmatchpatch.New()
	fromChars, toChars, lines := dmp.DiffLinesToChars(fromText, toText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lines)

	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	if a.Color {
		added.EnableColor()
		removed.EnableColor()
	} else {
		added.DisableColor()
		removed.DisableColor()
	}

	var out strings.Builder
	for _, diff := range diffs {
		for _, line := range splitLines(diff.Text) {
			switch diff.Type {
			case diffmatchpatch.DiffInsert:
				out.WriteString(added.Sprint("+ " + line))
			case diffmatchpatch.DiffDelete:
				out.WriteString(removed.Sprint("- " + line))
			default:
				out.WriteString("  " + line)
			}
			out.WriteString("\n")
		}
	}
	return out.String(), nil
}

func marshalSchema(schema []types.TypeDeclaration) (string, error) {
	if len(schema) == 0 {
		return "", nil
	}
	data, err := yaml.Marshal(schema)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode schema for diff").
			WithCause(err)
	}
	return string(data), nil
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

var _ ports.DiffRendererPort = DiffRendererAdapter{}
