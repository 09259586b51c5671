package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schemaver/internal/app"
	"schemaver/internal/types"
)

type diffOptions struct {
	schemaInputOptions
	Color string
}

func newDiffCommand() *cobra.Command {
	opts := diffOptions{}
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show structural changes against the previous snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiff(cmd.Context(), cmd, opts)
		},
	}
	bindSchemaInputFlags(cmd, &opts.schemaInputOptions)
	cmd.Flags().StringVar(&opts.Color, "color", string(types.ColorModeAuto), "Colorize output: auto, always or never")
	_ = viper.BindPFlag("color", cmd.Flags().Lookup("color"))
	return cmd
}

func runDiff(ctx context.Context, cmd *cobra.Command, opts diffOptions) error {
	useColor, err := colorEnabled(types.ColorMode(resolveString(cmd, opts.Color, "color", "color")), os.Stdout)
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Diff(ctx, app.DiffRequest{
		SchemaInput: opts.resolve(cmd),
		Color:       useColor,
	})
	if err != nil {
		return err
	}
	if !result.Changed {
		fmt.Printf("no structural changes: version stays %d\n", result.Version)
		return nil
	}
	fmt.Print(result.Text)
	fmt.Printf("version %d -> %d\n", result.PreviousVersion, result.Version)
	return nil
}

func colorEnabled(mode types.ColorMode, out *os.File) (bool, error) {
	switch mode {
	case types.ColorModeAlways:
		return true, nil
	case types.ColorModeNever:
		return false, nil
	case types.ColorModeAuto, "":
		return isatty.IsTerminal(out.Fd()), nil
	default:
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid color mode '" + string(mode) + "'")
	}
}
