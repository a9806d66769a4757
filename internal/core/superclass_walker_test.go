package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-inherit/internal/adapters"
	"schema-inherit/internal/types"
)

func TestSuperclassWalkerNearestFirst(t *testing.T) {
	graph := adapters.NewAnalysisGraph()
	addClass(t, graph, classSpec{name: "Animal", properties: []*types.Property{stringProperty("name")}})
	addClass(t, graph, classSpec{name: "Pet", extends: "Animal"})
	cat := &types.Schema{}
	addClass(t, graph, classSpec{name: "Cat", extends: "Pet", schemas: []*types.Schema{cat}})

	fqcn, ancestors, err := NewSuperclassWalker(graph).Ancestors(cat)
	require.NoError(t, err)
	assert.Equal(t, `App\Models\Cat`, fqcn)
	require.Len(t, ancestors, 2)
	assert.Equal(t, "Pet", ancestors[0].Context.Class)
	assert.Equal(t, "Animal", ancestors[1].Context.Class)
	require.Len(t, ancestors[1].Properties, 1)
}

func TestSuperclassWalkerNoAncestors(t *testing.T) {
	graph := adapters.NewAnalysisGraph()
	root := &types.Schema{}
	addClass(t, graph, classSpec{name: "Root", schemas: []*types.Schema{root}})

	_, ancestors, err := NewSuperclassWalker(graph).Ancestors(root)
	require.NoError(t, err)
	assert.Empty(t, ancestors)
}

func TestSuperclassWalkerRejectsContextlessSchema(t *testing.T) {
	walker := NewSuperclassWalker(adapters.NewAnalysisGraph())

	_, _, err := walker.Ancestors(&types.Schema{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))

	_, _, err = walker.Ancestors(&types.Schema{Context: types.NewContext(types.ContextKindClass, "App", "")})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}
