package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schemaver/internal/app"
)

type schemaInputOptions struct {
	Input    string
	Previous string
}

func bindSchemaInputFlags(cmd *cobra.Command, opts *schemaInputOptions) {
	cmd.Flags().StringVar(&opts.Input, "input", "", "Schema document path")
	cmd.Flags().StringVar(&opts.Previous, "previous", "", "Snapshot of the previous revision")
	_ = viper.BindPFlag("input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("previous", cmd.Flags().Lookup("previous"))
}

func (o schemaInputOptions) resolve(cmd *cobra.Command) app.SchemaInput {
	return app.SchemaInput{
		InputPath:    resolveString(cmd, o.Input, "input", "input"),
		PreviousPath: resolveString(cmd, o.Previous, "previous", "previous"),
	}
}

type validateOptions struct {
	schemaInputOptions
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Resolve a schema revision and report its version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, opts)
		},
	}
	bindSchemaInputFlags(cmd, &opts.schemaInputOptions)
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{SchemaInput: opts.resolve(cmd)})
	if err != nil {
		return err
	}
	fmt.Printf("validated: version %d (%d types)\n", result.Version, result.Types)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	if configured := viper.GetString(key); configured != "" {
		return configured
	}
	return value
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
