package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"schema-inherit/internal/adapters"
	"schema-inherit/internal/types"
)

const testNamespace = `App\Models`

type classSpec struct {
	name       string
	extends    string
	schemas    []*types.Schema
	properties []*types.Property
}

// addClass registers a class whose schemas share one class context and
// whose properties each get a property context.
func addClass(t *testing.T, graph *adapters.AnalysisGraph, spec classSpec) *types.Context {
	t.Helper()
	classCtx := types.NewContext(types.ContextKindClass, testNamespace, spec.name)
	decl := adapters.ClassDeclaration{
		Context: classCtx,
		Extends: classCtx.FullyQualifiedName(spec.extends),
	}
	for _, schema := range spec.schemas {
		schema.Context = classCtx
		decl.Annotations = append(decl.Annotations, schema)
	}
	for _, property := range spec.properties {
		propertyCtx := types.NewContext(types.ContextKindProperty, testNamespace, spec.name)
		propertyCtx.Property = property.Property
		propertyCtx.Parent = classCtx
		property.Context = propertyCtx
		decl.Properties = append(decl.Properties, types.DeclaredProperty{
			Context:     propertyCtx,
			Annotations: []types.Annotation{property},
		})
	}
	require.NoError(t, graph.AddClass(decl))
	return classCtx
}

func stringProperty(name string) *types.Property {
	return &types.Property{Property: name, Fields: types.Fields{Type: "string"}}
}

func propertyNames(properties []*types.Property) []string {
	var names []string
	for _, property := range properties {
		names = append(names, property.Property)
	}
	return names
}
