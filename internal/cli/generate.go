package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schemaver/internal/app"
)

type generateOptions struct {
	schemaInputOptions
	Manifest string
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the resolved graph and encode descriptors for code generators",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), cmd, opts)
		},
	}
	bindSchemaInputFlags(cmd, &opts.schemaInputOptions)
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest output path")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions) error {
	service := newAppService()
	result, err := service.Generate(ctx, app.GenerateRequest{
		SchemaInput:  opts.resolve(cmd),
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("generated: version %d -> %s\n", result.Version, result.ManifestPath)
	return nil
}
