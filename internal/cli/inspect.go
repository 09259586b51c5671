package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"schemaver/internal/app"
	"schemaver/internal/types"
)

type inspectOptions struct {
	schemaInputOptions
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show resolved types, version ranges and changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	bindSchemaInputFlags(cmd, &opts.schemaInputOptions)
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{SchemaInput: opts.resolve(cmd)})
	if err != nil {
		return err
	}

	fmt.Printf("schema version: %d\n", result.Version)
	for _, ns := range result.Namespaces {
		fmt.Printf("namespace %s:\n", ns.Name)
		for _, t := range ns.Types {
			if t.AliasOf != "" {
				fmt.Printf("- %s -> %s\n", t.FQN, t.AliasOf)
				continue
			}
			compact := ""
			if t.Compact {
				compact = " compact"
			}
			fmt.Printf("- %s v%d..%d%s: %d fields, %d optional, flags at %d\n",
				t.FQN, t.Versions.First, t.Versions.Latest, compact, t.Fields, t.Optional, t.FlagsField)
		}
	}
	fmt.Printf("changes: %d\n", len(result.Changes))
	for _, change := range result.Changes {
		fmt.Printf("- %s\n", formatChange(change))
	}
	return nil
}

func formatChange(change types.TypeChange) string {
	if change.Previous == nil {
		return fmt.Sprintf("%s added at version %d", change.FQN, change.Current.First)
	}
	return fmt.Sprintf("%s %d -> %d", change.FQN, change.Previous.Latest, change.Current.Latest)
}
