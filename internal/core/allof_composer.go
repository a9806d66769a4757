package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"schema-inherit/internal/types"
)

type AllOfComposer struct{}

func NewAllOfComposer() AllOfComposer {
	return AllOfComposer{}
}

// Composition describes the outcome of composing a schema with a parent.
type Composition struct {
	Reference        string
	ReferencePresent bool
	Extracted        bool
}

// Compose rewrites to as an allOf composition referencing from. On the
// first composition the local declarations of to move into one
// generated inline entry. The reference is prepended unless an entry
// with the same reference already exists.
func (c AllOfComposer) Compose(ctx context.Context, to *types.Schema, from *types.Schema) (Composition, error) {
	ref, err := EncodeSchemaRef(from.Schema)
	if err != nil {
		return Composition{}, err
	}
	assert.NotEmpty(ctx, ref, "encoded schema reference must be set")

	result := Composition{Reference: ref}
	if to.AllOf == nil {
		result.Extracted = extractLocalFields(to)
	}

	for _, entry := range to.AllOf {
		if entry != nil && entry.Ref == ref {
			log.Ctx(ctx).Debug().Str("schema", to.Schema).Str("ref", ref).Msg("reference already present")
			result.ReferencePresent = true
			return result, nil
		}
	}

	entry := &types.Schema{
		Context: types.NewGeneratedContext(from.Context),
		Fields:  types.Fields{Ref: ref},
	}
	to.AllOf = append([]*types.Schema{entry}, to.AllOf...)
	log.Ctx(ctx).Debug().Str("schema", to.Schema).Str("ref", ref).Msg("reference composed")
	return result, nil
}

// extractLocalFields moves the resettable fields of schema into a
// generated clone and leaves schema with an empty allOf. The clone is
// only kept when it carries declarations. Name, title and description
// stay on the outer schema.
func extractLocalFields(schema *types.Schema) bool {
	clone := &types.Schema{
		Context: types.NewGeneratedContext(schema.Context),
		Fields:  schema.Fields,
	}
	hasContent := !schema.Fields.IsZero()

	schema.Fields = types.Fields{}
	schema.AllOf = []*types.Schema{}
	if hasContent {
		schema.AllOf = append(schema.AllOf, clone)
	}
	return hasContent
}
