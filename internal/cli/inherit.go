package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schema-inherit/internal/app"
	"schema-inherit/internal/types"
)

type inheritOptions struct {
	Input  string
	Output string
	Format string
	Report string
}

func newInheritCommand() *cobra.Command {
	opts := inheritOptions{}
	cmd := &cobra.Command{
		Use:   "inherit",
		Short: "Apply superclass inheritance to class schemas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInherit(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Input, "input", "", "Analysis file or directory path")
	cmd.Flags().StringVar(&opts.Output, "output", "-", "Output document path (- for stdout)")
	cmd.Flags().StringVar(&opts.Format, "format", "yaml", "Output format (yaml|json)")
	cmd.Flags().StringVar(&opts.Report, "report", "", "Inheritance report path")
	_ = viper.BindPFlag("input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	return cmd
}

func runInherit(ctx context.Context, cmd *cobra.Command, opts inheritOptions) error {
	service := newAppService()
	output := resolveString(cmd, opts.Output, "output", "output")
	result, err := service.Inherit(ctx, app.InheritRequest{
		InputPath:  resolveString(cmd, opts.Input, "input", "input"),
		OutputPath: output,
		Format:     types.OutputFormat(resolveString(cmd, opts.Format, "format", "format")),
		ReportPath: resolveString(cmd, opts.Report, "report", "report"),
	})
	if err != nil {
		return err
	}
	if strings.TrimSpace(output) == "-" {
		return nil
	}

	out := cmd.OutOrStdout()
	for _, record := range result.Records {
		fmt.Fprintf(out, "%s %s", stateLabel(record.State), record.Class)
		switch {
		case record.State == types.InheritanceStateComposed && record.ReferencePresent:
			fmt.Fprintf(out, " (%s already referenced)", record.Reference)
		case record.State == types.InheritanceStateComposed:
			fmt.Fprintf(out, " -> %s", record.Reference)
		case len(record.InheritedProperties) > 0:
			fmt.Fprintf(out, " +%s", strings.Join(record.InheritedProperties, ", +"))
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "written: %s\n", result.OutputPath)
	if result.ReportPath != "" {
		fmt.Fprintf(out, "report: %s\n", result.ReportPath)
	}
	return nil
}

func stateLabel(state types.InheritanceState) string {
	switch state {
	case types.InheritanceStateComposed:
		return color.GreenString("composed")
	case types.InheritanceStatePropertiesMerged:
		return color.CyanString("merged")
	default:
		return color.New(color.Faint).Sprint("unchanged")
	}
}
