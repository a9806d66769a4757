package adapters

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schema-inherit/internal/ports"
	"schema-inherit/internal/shared"
	"schema-inherit/internal/types"
)

// ClassDeclaration is a class as the analysis sees it: its context, the
// fully qualified name of its direct parent, its declared properties and
// the annotations attached to the class itself.
type ClassDeclaration struct {
	Context     *types.Context
	Extends     string
	Properties  []types.DeclaredProperty
	Annotations []types.Annotation
}

func (d ClassDeclaration) record() types.ClassRecord {
	return types.ClassRecord{
		Context:     d.Context,
		Properties:  d.Properties,
		Annotations: d.Annotations,
	}
}

// AnalysisGraph is an in-memory analysis result.
type AnalysisGraph struct {
	classes map[string]ClassDeclaration
	order   []string
	schemas []*types.Schema
}

func NewAnalysisGraph() *AnalysisGraph {
	return &AnalysisGraph{
		classes: make(map[string]ClassDeclaration),
	}
}

// AddClass registers a class and every schema annotation attached to it.
func (g *AnalysisGraph) AddClass(decl ClassDeclaration) error {
	if decl.Context == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("class declaration has no context")
	}
	fqcn := decl.Context.FullyQualifiedName(decl.Context.Class)
	if fqcn == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("class declaration has no name")
	}
	if _, exists := g.classes[fqcn]; exists {
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg("duplicate class declaration: " + fqcn)
	}
	decl.Extends = shared.NormalizeClassName(decl.Extends)
	g.classes[fqcn] = decl
	g.order = append(g.order, fqcn)
	for _, annotation := range decl.Annotations {
		if schema, ok := annotation.(*types.Schema); ok {
			g.schemas = append(g.schemas, schema)
		}
	}
	return nil
}

// AddSchema registers a schema annotation that is not attached to a
// class, such as an inline method schema.
func (g *AnalysisGraph) AddSchema(schema *types.Schema) {
	if schema == nil {
		return
	}
	g.schemas = append(g.schemas, schema)
}

func (g *AnalysisGraph) Class(fqcn string) (types.ClassRecord, bool) {
	decl, ok := g.classes[shared.NormalizeClassName(fqcn)]
	if !ok {
		return types.ClassRecord{}, false
	}
	return decl.record(), true
}

func (g *AnalysisGraph) AllSchemaAnnotations() []*types.Schema {
	return append([]*types.Schema(nil), g.schemas...)
}

func (g *AnalysisGraph) ClassNames() []string {
	return append([]string(nil), g.order...)
}

func (g *AnalysisGraph) Parent(fqcn string) (string, bool) {
	decl, ok := g.classes[shared.NormalizeClassName(fqcn)]
	if !ok {
		return "", false
	}
	return decl.Extends, true
}

// SuperclassChain follows Extends from fqcn, nearest ancestor first. The
// walk stops at the first parent that is not declared in the graph and
// at the first class seen twice.
func (g *AnalysisGraph) SuperclassChain(fqcn string) []types.ClassRecord {
	name := shared.NormalizeClassName(fqcn)
	current, ok := g.classes[name]
	if !ok {
		return nil
	}
	visited := map[string]struct{}{name: {}}
	var chain []types.ClassRecord
	for current.Extends != "" {
		parentName := current.Extends
		if _, seen := visited[parentName]; seen {
			log.Warn().
				Str("class", name).
				Str("parent", parentName).
				Msg("superclass cycle detected")
			break
		}
		visited[parentName] = struct{}{}
		parent, ok := g.classes[parentName]
		if !ok {
			log.Debug().
				Str("class", name).
				Str("parent", parentName).
				Msg("parent class not in analysis")
			break
		}
		chain = append(chain, parent.record())
		current = parent
	}
	return chain
}

var _ ports.AnalysisGraphPort = (*AnalysisGraph)(nil)
