package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullyQualifiedName(t *testing.T) {
	ctx := NewContext(ContextKindClass, `App\Models`, "Cat")
	tests := []struct {
		name     string
		ctx      *Context
		class    string
		expected string
	}{
		{name: "relative", ctx: ctx, class: "Animal", expected: `App\Models\Animal`},
		{name: "qualified", ctx: ctx, class: `\Vendor\Base`, expected: `Vendor\Base`},
		{name: "blank", ctx: ctx, class: "  ", expected: ""},
		{name: "global namespace", ctx: NewContext(ContextKindClass, "", "Cat"), class: "Cat", expected: "Cat"},
		{name: "namespace with separators", ctx: NewContext(ContextKindClass, `\App\`, "Cat"), class: "Cat", expected: `App\Cat`},
		{name: "nil context", ctx: nil, class: "Cat", expected: "Cat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ctx.FullyQualifiedName(tt.class))
		})
	}
}

func TestContextIsClassLevel(t *testing.T) {
	assert.True(t, NewContext(ContextKindClass, "App", "Cat").IsClassLevel())
	assert.False(t, NewContext(ContextKindClass, "App", "").IsClassLevel())
	assert.False(t, NewContext(ContextKindMethod, "App", "Cat").IsClassLevel())
	assert.False(t, NewContext(ContextKindInterface, "App", "Cat").IsClassLevel())

	var missing *Context
	assert.False(t, missing.IsClassLevel())
}

func TestNewGeneratedContext(t *testing.T) {
	parent := NewContext(ContextKindClass, "App", "Cat")
	parent.Filename = "src/Cat.php"
	parent.Line = 12

	child := NewGeneratedContext(parent)
	assert.True(t, child.Generated)
	assert.Same(t, parent, child.Parent)
	assert.Equal(t, "src/Cat.php", child.Filename)
	assert.Equal(t, 12, child.Line)
	assert.Equal(t, "Cat", child.Class)
	assert.False(t, child.IsClassLevel())
	assert.False(t, child.Same(parent))
	assert.True(t, child.Same(child))

	orphan := NewGeneratedContext(nil)
	assert.True(t, orphan.Generated)
	assert.NotEmpty(t, orphan.ID)
}

func TestFieldsIsZero(t *testing.T) {
	assert.True(t, Fields{}.IsZero())
	assert.False(t, Fields{Type: "object"}.IsZero())
	assert.False(t, Fields{Nullable: true}.IsZero())
	assert.False(t, Fields{Properties: []*Property{{Property: "id"}}}.IsZero())

	zero := 0
	assert.False(t, Fields{MinLength: &zero}.IsZero())
	assert.True(t, Fields{Required: []string{}}.IsZero())
}

func TestClassRecordNamedSchema(t *testing.T) {
	ctx := NewContext(ContextKindClass, "App", "Cat")
	unnamed := &Schema{Context: ctx}
	named := &Schema{Context: ctx, Schema: "Cat"}

	record := ClassRecord{Context: ctx, Annotations: []Annotation{unnamed, &Property{Property: "id"}, named}}
	got, ok := record.NamedSchema()
	require.True(t, ok)
	assert.Same(t, named, got)

	_, ok = ClassRecord{Context: ctx, Annotations: []Annotation{unnamed}}.NamedSchema()
	assert.False(t, ok)
}
