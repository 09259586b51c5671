package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaver/internal/types"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{
		"validate", "resolve", "snapshot", "generate", "inspect", "diff",
	}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestResolveCommandFlags(t *testing.T) {
	for _, cmd := range []*cobra.Command{newResolveCommand(), newSnapshotCommand()} {
		for _, name := range []string{"input", "previous", "output", "manifest"} {
			flag := cmd.Flags().Lookup(name)
			assert.NotNil(t, flag, "%s: missing flag: %s", cmd.Name(), name)
		}
	}
}

func TestSchemaInputCommandFlags(t *testing.T) {
	for _, cmd := range []*cobra.Command{newValidateCommand(), newInspectCommand(), newGenerateCommand(), newDiffCommand()} {
		assert.NotNil(t, cmd.Flags().Lookup("input"), "%s: missing input", cmd.Name())
		assert.NotNil(t, cmd.Flags().Lookup("previous"), "%s: missing previous", cmd.Name())
	}
	assert.NotNil(t, newDiffCommand().Flags().Lookup("color"))
	assert.NotNil(t, newGenerateCommand().Flags().Lookup("manifest"))
}

func TestColorEnabled(t *testing.T) {
	on, err := colorEnabled(types.ColorModeAlways, os.Stdout)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := colorEnabled(types.ColorModeNever, os.Stdout)
	require.NoError(t, err)
	assert.False(t, off)

	_, err = colorEnabled(types.ColorMode("rainbow"), os.Stdout)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestFormatChange(t *testing.T) {
	added := types.TypeChange{FQN: "@x/New", Current: types.VersionRange{First: 3, Latest: 3}}
	assert.Equal(t, "@x/New added at version 3", formatChange(added))

	grown := types.TypeChange{
		FQN:      "@x/Old",
		Previous: &types.VersionRange{First: 1, Latest: 2},
		Current:  types.VersionRange{First: 1, Latest: 3},
	}
	assert.Equal(t, "@x/Old 2 -> 3", formatChange(grown))
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		value    string
		expected string
	}{
		{
			name:     "nil cmd with value returns value",
			cmd:      nil,
			value:    "explicit",
			expected: "explicit",
		},
		{
			name:     "nil cmd empty value returns empty",
			cmd:      nil,
			value:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveString(tt.cmd, tt.value, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFlagChanged(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"), "nil cmd should return false")
	assert.False(t, flagChanged(nil, ""), "nil cmd with empty name")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"), "unchanged flag")
	assert.False(t, flagChanged(cmd, "nonexistent"), "nonexistent flag")
}

func TestFlagChangedAfterSet(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad input"),
			expected: 2,
		},
		{
			name: "already exists",
			err: errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("duplicate type: @x/Foo is declared more than once"),
			expected: 2,
		},
		{
			name: "failed precondition",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("frozen type mutation: @x/Vec cannot be unfrozen"),
			expected: 3,
		},
		{
			name: "not found",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("unresolved reference: @x/Later"),
			expected: 4,
		},
		{
			name: "internal error",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("boom"),
			expected: 5,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exitCodeForError(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name: "errbuilder with msg",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("something broke"),
			expected: "something broke",
		},
		{
			name:     "plain error",
			err:      assert.AnError,
			expected: assert.AnError.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errorMessage(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// ---------- Command execution tests ----------

func TestResolveCommandWritesSnapshot(t *testing.T) {
	fixtures, err := filepath.Abs(filepath.Join("..", "..", "fixtures", "schemas"))
	require.NoError(t, err)
	output := filepath.Join(t.TempDir(), "snapshot.yaml")

	root := newRootCommand()
	root.SetArgs([]string{"resolve", "--input", filepath.Join(fixtures, "v1.yaml"), "--output", output, "--log-level", "error"})
	require.NoError(t, root.ExecuteContext(t.Context()))
	require.FileExists(t, output)

	root = newRootCommand()
	root.SetArgs([]string{"validate", "--input", filepath.Join(fixtures, "v2.yaml"), "--previous", output, "--log-level", "error"})
	require.NoError(t, root.ExecuteContext(t.Context()))
}
