package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"schemaver/internal/types"
)

func TestManifestGeneratorWritesGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	graph := types.ResolvedGraph{
		Version: 2,
		Namespaces: []types.ResolvedNamespace{{
			Name: "geo",
			Types: []types.ResolvedTypeInfo{
				{
					Name:       "Shape",
					FQN:        "@geo/Shape",
					Kind:       types.TypeKindStruct,
					Versions:   types.VersionRange{First: 1, Latest: 2},
					FlagsField: 1,
					Fields: []types.FieldEncoding{
						{Name: "origin", Type: "@geo/Point", Version: 1, Framed: true, Plan: "frame(@geo/Point)"},
						{Name: "label", Type: "string", Version: 2, Optional: true, Flag: 1, Default: "", Plan: "string"},
					},
				},
				{Name: "Name", FQN: "@geo/Name", Kind: types.TypeKindPrimitive, AliasOf: "string", Versions: types.VersionRange{First: 1, Latest: 1}, FlagsField: -1},
			},
		}},
	}
	require.NoError(t, NewManifestGeneratorAdapter(path).Generate(t.Context(), graph))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got manifest
	require.NoError(t, yaml.Unmarshal(data, &got))
	if diff := cmp.Diff(CurrentFormat, got.Format); diff != "" {
		t.Fatalf("unexpected format (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(graph, got.Graph); diff != "" {
		t.Fatalf("unexpected graph (-want +got):\n%s", diff)
	}
}

func TestManifestGeneratorRequiresPath(t *testing.T) {
	err := NewManifestGeneratorAdapter("").Generate(t.Context(), types.ResolvedGraph{})
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected code (-want +got):\n%s", diff)
	}
}
