package core

import "schema-inherit/internal/types"

type PropertyMerger struct{}

func NewPropertyMerger() PropertyMerger {
	return PropertyMerger{}
}

// Seed returns the property names a schema already accounts for: its own
// properties plus those of inline allOf entries left by an earlier
// composition.
func (m PropertyMerger) Seed(schema *types.Schema) map[string]struct{} {
	existing := map[string]struct{}{}
	for _, name := range schema.PropertyNames() {
		existing[name] = struct{}{}
	}
	for _, entry := range schema.AllOf {
		if entry == nil || entry.Ref != "" {
			continue
		}
		for _, name := range entry.PropertyNames() {
			existing[name] = struct{}{}
		}
	}
	return existing
}

// Merge appends the property annotations declared on ancestor whose name
// is not yet in existing, in declaration order, and records the names.
// Appended properties are copies; the ancestor's annotations are not
// touched.
func (m PropertyMerger) Merge(schema *types.Schema, existing map[string]struct{}, ancestor types.ClassRecord) []*types.Property {
	var appended []*types.Property
	for _, declared := range ancestor.Properties {
		for _, annotation := range declared.Annotations {
			property, ok := annotation.(*types.Property)
			if !ok || property == nil {
				continue
			}
			if _, found := existing[property.Property]; found {
				continue
			}
			existing[property.Property] = struct{}{}
			inherited := *property
			schema.Properties = append(schema.Properties, &inherited)
			appended = append(appended, &inherited)
		}
	}
	return appended
}
