package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schema-inherit/internal/core"
	"schema-inherit/internal/types"
)

// Inspect summarises the class hierarchy of an analysis without running
// the pass.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("analysis input path is required")
	}
	graph, err := s.Analysis.LoadAnalysis(inputPath)
	if err != nil {
		return InspectResult{}, err
	}

	collected := map[types.ContextID]*types.Schema{}
	for _, schema := range core.NewSchemaCollector().Collect(graph.AllSchemaAnnotations()) {
		collected[schema.Context.ID] = schema
	}

	var summaries []InspectClassSummary
	for _, name := range graph.ClassNames() {
		record, ok := graph.Class(name)
		if !ok {
			continue
		}
		summary := InspectClassSummary{Name: name}
		for _, ancestor := range graph.SuperclassChain(name) {
			summary.Ancestors = append(summary.Ancestors, ancestor.Context.FullyQualifiedName(ancestor.Context.Class))
		}
		if schema, ok := collected[record.Context.ID]; ok {
			summary.Collected = true
			summary.Schema = schema.Schema
		}
		summary.Properties = declaredPropertyNames(record)
		summaries = append(summaries, summary)
	}
	log.Ctx(ctx).Debug().Int("classes", len(summaries)).Msg("analysis inspected")
	return InspectResult{Classes: summaries}, nil
}

func declaredPropertyNames(record types.ClassRecord) []string {
	var names []string
	for _, declared := range record.Properties {
		for _, annotation := range declared.Annotations {
			if property, ok := annotation.(*types.Property); ok && property.Property != "" {
				names = append(names, property.Property)
			}
		}
	}
	return names
}
