package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"schemaver/internal/types"
)

func TestSchemaFileAdapterLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	content := `version: 0
schema:
  - name: Id
    namespace: core
    alias: uint
  - name: User
    namespace: chat
    flagsField: 1
    fields:
      - name: id
        type: "@core/Id"
        required: true
      - name: nick
        type: string
        renamedFrom: name
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := NewSchemaFileAdapter().LoadDocument(path)
	require.NoError(t, err)

	flags := 1
	want := types.Document{
		Schema: []types.TypeDeclaration{
			{Name: "Id", Namespace: "core", Alias: "uint"},
			{
				Name:       "User",
				Namespace:  "chat",
				FlagsField: &flags,
				Fields: []types.FieldDeclaration{
					{Name: "id", Type: "@core/Id", Required: true},
					{Name: "nick", Type: "string", RenamedFrom: "name"},
				},
			},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("unexpected document (-want +got):\n%s", diff)
	}
}

func TestSchemaFileAdapterFormatGate(t *testing.T) {
	adapter := NewSchemaFileAdapter()
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "absent format", content: "version: 0\nschema: []\n"},
		{name: "current format", content: "format: \"1.0\"\nversion: 0\nschema: []\n"},
		{name: "minor format", content: "format: \"1.4\"\nversion: 3\nschema: []\n"},
		{name: "next major format", content: "format: \"2.0\"\nversion: 0\nschema: []\n", wantErr: true},
		{name: "old format", content: "format: \"0.9\"\nversion: 0\nschema: []\n", wantErr: true},
		{name: "negative version", content: "version: -1\nschema: []\n", wantErr: true},
		{name: "malformed yaml", content: "schema: [\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := adapter.ParseDocument([]byte(tt.content))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
				t.Fatalf("unexpected code (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSchemaFileAdapterMissingFile(t *testing.T) {
	_, err := NewSchemaFileAdapter().LoadDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeNotFound, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected code (-want +got):\n%s", diff)
	}
}
