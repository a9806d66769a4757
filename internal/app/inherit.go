package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schema-inherit/internal/core"
	"schema-inherit/internal/types"
)

// Inherit loads an analysis, runs the inheritance pass over it and
// writes the resulting class schemas and, optionally, a report.
func (s Service) Inherit(ctx context.Context, req InheritRequest) (InheritResult, error) {
	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return InheritResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("analysis input path is required")
	}
	format, err := parseFormat(req.Format)
	if err != nil {
		return InheritResult{}, err
	}

	graph, err := s.Analysis.LoadAnalysis(inputPath)
	if err != nil {
		return InheritResult{}, err
	}
	if _, err := core.NewHierarchyChecker(graph).Check(ctx); err != nil {
		return InheritResult{}, err
	}

	// The work list is taken before the pass mutates anything.
	classSchemas := core.NewSchemaCollector().Collect(graph.AllSchemaAnnotations())
	records, err := core.NewInheritProperties(graph).Process(ctx)
	if err != nil {
		return InheritResult{}, err
	}

	result := InheritResult{
		Records: records,
		States:  countStates(records),
	}
	if outputPath := strings.TrimSpace(req.OutputPath); outputPath != "" {
		if err := s.Schemas.WriteSchemas(outputPath, format, classSchemas); err != nil {
			return InheritResult{}, err
		}
		result.OutputPath = outputPath
	}
	if reportPath := strings.TrimSpace(req.ReportPath); reportPath != "" {
		if err := s.Reports.WriteReport(reportPath, records); err != nil {
			return InheritResult{}, err
		}
		result.ReportPath = reportPath
	}

	log.Ctx(ctx).Info().
		Int("schemas", len(records)).
		Int("composed", result.States[types.InheritanceStateComposed]).
		Int("merged", result.States[types.InheritanceStatePropertiesMerged]).
		Msg("inheritance applied")
	return result, nil
}

func parseFormat(format types.OutputFormat) (types.OutputFormat, error) {
	switch types.OutputFormat(strings.ToLower(strings.TrimSpace(string(format)))) {
	case "", types.OutputFormatYAML, "yml":
		return types.OutputFormatYAML, nil
	case types.OutputFormatJSON:
		return types.OutputFormatJSON, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported output format: " + string(format))
	}
}

func countStates(records []types.InheritanceRecord) map[types.InheritanceState]int {
	states := map[types.InheritanceState]int{}
	for _, record := range records {
		states[record.State]++
	}
	return states
}
