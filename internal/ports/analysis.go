package ports

import "schema-inherit/internal/types"

// AnalysisGraphPort is the materialised result of static analysis.
type AnalysisGraphPort interface {
	// AllSchemaAnnotations returns every schema annotation known to the
	// analysis, in discovery order.
	AllSchemaAnnotations() []*types.Schema

	// SuperclassChain returns the ancestors of a fully qualified class,
	// nearest first. It is empty when no ancestor resolves.
	SuperclassChain(fqcn string) []types.ClassRecord

	// ClassNames returns the fully qualified names of all classes in
	// discovery order.
	ClassNames() []string

	// Parent returns the declared parent of a class, which may itself be
	// missing from the graph. The boolean is false when fqcn is unknown.
	Parent(fqcn string) (string, bool)

	// Class returns the record of a class declared in the graph.
	Class(fqcn string) (types.ClassRecord, bool)
}

// AnalysisSourcePort loads an analysis graph from a file.
type AnalysisSourcePort interface {
	LoadAnalysis(path string) (AnalysisGraphPort, error)
}
