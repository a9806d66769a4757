package adapters

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-inherit/internal/types"
)

func declare(t *testing.T, graph *AnalysisGraph, name string, extends string, annotations ...types.Annotation) *types.Context {
	t.Helper()
	ctx := types.NewContext(types.ContextKindClass, "Zoo", name)
	require.NoError(t, graph.AddClass(ClassDeclaration{
		Context:     ctx,
		Extends:     extends,
		Annotations: annotations,
	}))
	return ctx
}

func TestAnalysisGraphSuperclassChainNearestFirst(t *testing.T) {
	graph := NewAnalysisGraph()
	a := declare(t, graph, "A", "")
	b := declare(t, graph, "B", `Zoo\A`)
	declare(t, graph, "C", `\Zoo\B`)

	chain := graph.SuperclassChain(`Zoo\C`)
	require.Len(t, chain, 2)
	assert.Same(t, b, chain[0].Context)
	assert.Same(t, a, chain[1].Context)

	assert.Len(t, graph.SuperclassChain(`\Zoo\C`), 2)
	assert.Empty(t, graph.SuperclassChain(`Zoo\A`))
	assert.Empty(t, graph.SuperclassChain(`Zoo\Missing`))
}

func TestAnalysisGraphSuperclassChainStopsAtUnknownParent(t *testing.T) {
	graph := NewAnalysisGraph()
	declare(t, graph, "A", `Vendor\Base`)
	declare(t, graph, "B", `Zoo\A`)

	chain := graph.SuperclassChain(`Zoo\B`)
	require.Len(t, chain, 1)
	assert.Equal(t, "A", chain[0].Context.Class)
}

func TestAnalysisGraphSuperclassChainStopsOnCycle(t *testing.T) {
	graph := NewAnalysisGraph()
	declare(t, graph, "A", `Zoo\B`)
	declare(t, graph, "B", `Zoo\A`)

	chain := graph.SuperclassChain(`Zoo\A`)
	require.Len(t, chain, 1)
	assert.Equal(t, "B", chain[0].Context.Class)
}

func TestAnalysisGraphRegistersClassSchemas(t *testing.T) {
	graph := NewAnalysisGraph()
	schema := &types.Schema{Schema: "A"}
	property := &types.Property{Property: "id"}
	ctx := declare(t, graph, "A", "", schema, property)
	schema.Context = ctx

	inline := &types.Schema{Context: types.NewContext(types.ContextKindMethod, "Zoo", "A")}
	graph.AddSchema(inline)
	graph.AddSchema(nil)

	schemas := graph.AllSchemaAnnotations()
	require.Len(t, schemas, 2)
	assert.Same(t, schema, schemas[0])
	assert.Same(t, inline, schemas[1])

	// The returned slice is a copy.
	schemas[0] = nil
	assert.Same(t, schema, graph.AllSchemaAnnotations()[0])

	record, ok := graph.Class(`\Zoo\A`)
	require.True(t, ok)
	assert.Same(t, ctx, record.Context)
	assert.Len(t, record.Annotations, 2)
}

func TestAnalysisGraphRejectsDuplicateClass(t *testing.T) {
	graph := NewAnalysisGraph()
	declare(t, graph, "A", "")
	err := graph.AddClass(ClassDeclaration{Context: types.NewContext(types.ContextKindClass, "Zoo", "A")})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
}

func TestAnalysisGraphRejectsMissingContext(t *testing.T) {
	graph := NewAnalysisGraph()
	err := graph.AddClass(ClassDeclaration{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	err = graph.AddClass(ClassDeclaration{Context: &types.Context{Kind: types.ContextKindClass}})
	require.Error(t, err)
}

func TestAnalysisGraphParentAndClassNames(t *testing.T) {
	graph := NewAnalysisGraph()
	declare(t, graph, "A", `\Vendor\Base`)
	declare(t, graph, "B", `Zoo\A`)

	assert.Equal(t, []string{`Zoo\A`, `Zoo\B`}, graph.ClassNames())
	parent, ok := graph.Parent(`Zoo\A`)
	require.True(t, ok)
	assert.Equal(t, `Vendor\Base`, parent)
	_, ok = graph.Parent(`Vendor\Base`)
	assert.False(t, ok)
}
