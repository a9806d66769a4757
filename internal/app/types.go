package app

import "schema-inherit/internal/types"

type InheritRequest struct {
	InputPath  string
	OutputPath string
	Format     types.OutputFormat
	ReportPath string
}

type InheritResult struct {
	Records    []types.InheritanceRecord
	States     map[types.InheritanceState]int
	OutputPath string
	ReportPath string
}

type ValidateRequest struct {
	InputPath string
}

type ValidateResult struct {
	Classes        int
	Schemas        int
	ClassSchemas   int
	UnknownParents []string
}

type InspectRequest struct {
	InputPath string
}

type InspectClassSummary struct {
	Name       string
	Ancestors  []string
	Schema     string
	Properties []string
	Collected  bool
}

type InspectResult struct {
	Classes []InspectClassSummary
}
