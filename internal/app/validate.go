package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"schema-inherit/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("analysis input path is required")
	}
	graph, err := s.Analysis.LoadAnalysis(inputPath)
	if err != nil {
		return ValidateResult{}, err
	}
	report, err := core.NewHierarchyChecker(graph).Check(ctx)
	if err != nil {
		return ValidateResult{}, err
	}
	schemas := graph.AllSchemaAnnotations()
	return ValidateResult{
		Classes:        len(graph.ClassNames()),
		Schemas:        len(schemas),
		ClassSchemas:   len(core.NewSchemaCollector().Collect(schemas)),
		UnknownParents: report.UnknownParents,
	}, nil
}
