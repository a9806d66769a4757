package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schema-inherit/internal/app"
)

type inspectOptions struct {
	Input string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show class hierarchy and the schemas the pass would process",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Input, "input", "", "Analysis file or directory path")
	_ = viper.BindPFlag("input", cmd.Flags().Lookup("input"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		InputPath: resolveString(cmd, opts.Input, "input", "input"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, class := range result.Classes {
		fmt.Fprintf(out, "- %s", class.Name)
		if len(class.Ancestors) > 0 {
			fmt.Fprintf(out, " extends %s", strings.Join(class.Ancestors, " < "))
		}
		fmt.Fprintln(out)
		switch {
		case class.Collected && class.Schema != "":
			fmt.Fprintf(out, "  schema: %s\n", class.Schema)
		case class.Collected:
			fmt.Fprintln(out, "  schema: (unnamed)")
		}
		if len(class.Properties) > 0 {
			fmt.Fprintf(out, "  properties: %s\n", strings.Join(class.Properties, ", "))
		}
	}
	return nil
}
