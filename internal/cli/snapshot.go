package cli

import "github.com/spf13/cobra"

type snapshotOptions = resolveOptions

func newSnapshotCommand() *cobra.Command {
	opts := snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Resolve a schema revision and write its snapshot (alias of resolve)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}
	bindResolveFlags(cmd, &opts)
	return cmd
}
