package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schemaver/internal/app"
)

type resolveOptions struct {
	schemaInputOptions
	Output   string
	Manifest string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a schema revision and write its snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}
	bindResolveFlags(cmd, &opts)
	return cmd
}

func bindResolveFlags(cmd *cobra.Command, opts *resolveOptions) {
	bindSchemaInputFlags(cmd, &opts.schemaInputOptions)
	cmd.Flags().StringVar(&opts.Output, "output", "snapshot.yaml", "Snapshot output path")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Also write the generator manifest to this path")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		SchemaInput:  opts.resolve(cmd),
		OutputPath:   resolveString(cmd, opts.Output, "output", "output"),
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("resolved: version %d -> %s\n", result.Version, result.OutputPath)
	for _, change := range result.Changes {
		fmt.Printf("- %s\n", formatChange(change))
	}
	if result.ManifestPath != "" {
		fmt.Printf("manifest: %s\n", result.ManifestPath)
	}
	return nil
}
