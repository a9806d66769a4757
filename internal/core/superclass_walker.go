package core

import (
	"github.com/ZanzyTHEbar/errbuilder-go"

	"schema-inherit/internal/ports"
	"schema-inherit/internal/types"
)

type SuperclassWalker struct {
	Graph ports.AnalysisGraphPort
}

func NewSuperclassWalker(graph ports.AnalysisGraphPort) SuperclassWalker {
	return SuperclassWalker{Graph: graph}
}

// Ancestors returns the superclass chain of the class a schema is
// attached to, nearest ancestor first.
func (w SuperclassWalker) Ancestors(schema *types.Schema) (string, []types.ClassRecord, error) {
	if schema == nil || schema.Context == nil {
		return "", nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("schema has no declaration context")
	}
	fqcn := schema.Context.FullyQualifiedName(schema.Context.Class)
	if fqcn == "" {
		return "", nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("schema context does not resolve to a class name")
	}
	return fqcn, w.Graph.SuperclassChain(fqcn), nil
}
