package core

import "schema-inherit/internal/types"

type SchemaCollector struct{}

func NewSchemaCollector() SchemaCollector {
	return SchemaCollector{}
}

// Collect returns the schemas attached to class-level contexts, keeping
// only the first schema seen for each context. The result is an owned
// slice so callers may mutate schemas while iterating it.
func (c SchemaCollector) Collect(schemas []*types.Schema) []*types.Schema {
	seen := map[types.ContextID]struct{}{}
	var collected []*types.Schema
	for _, schema := range schemas {
		if schema == nil || !schema.Context.IsClassLevel() {
			continue
		}
		if _, ok := seen[schema.Context.ID]; ok {
			continue
		}
		seen[schema.Context.ID] = struct{}{}
		collected = append(collected, schema)
	}
	return collected
}
