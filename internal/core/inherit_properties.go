package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"schema-inherit/internal/ports"
	"schema-inherit/internal/types"
)

// InheritProperties rewrites class schemas so they reflect what they
// inherit from their superclasses.
type InheritProperties struct {
	Graph     ports.AnalysisGraphPort
	Collector SchemaCollector
	Walker    SuperclassWalker
	Merger    PropertyMerger
	Composer  AllOfComposer
}

func NewInheritProperties(graph ports.AnalysisGraphPort) InheritProperties {
	return InheritProperties{
		Graph:     graph,
		Collector: NewSchemaCollector(),
		Walker:    NewSuperclassWalker(graph),
		Merger:    NewPropertyMerger(),
		Composer:  NewAllOfComposer(),
	}
}

// Process runs the pass over every class schema of the graph and returns
// one record per processed schema. The work list is collected before
// any schema is mutated.
func (p InheritProperties) Process(ctx context.Context) ([]types.InheritanceRecord, error) {
	work := p.Collector.Collect(p.Graph.AllSchemaAnnotations())
	log.Ctx(ctx).Debug().Int("schemas", len(work)).Msg("class schemas collected")

	records := make([]types.InheritanceRecord, 0, len(work))
	for _, schema := range work {
		record, err := p.inherit(ctx, schema)
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (p InheritProperties) inherit(ctx context.Context, schema *types.Schema) (types.InheritanceRecord, error) {
	fqcn, ancestors, err := p.Walker.Ancestors(schema)
	if err != nil {
		return types.InheritanceRecord{}, err
	}
	record := types.InheritanceRecord{
		Class:  fqcn,
		Schema: schema.Schema,
		State:  types.InheritanceStateCollected,
	}

	existing := p.Merger.Seed(schema)
	for _, ancestor := range ancestors {
		record.Ancestors = append(record.Ancestors, ancestorName(ancestor))

		// Only the nearest named ancestor is composed; it already
		// carries everything further up the chain.
		if parent, ok := ancestor.NamedSchema(); ok {
			composition, err := p.Composer.Compose(ctx, schema, parent)
			if err != nil {
				return record, err
			}
			record.State = types.InheritanceStateComposed
			record.Reference = composition.Reference
			record.ReferencePresent = composition.ReferencePresent
			record.Extracted = composition.Extracted
			return record, nil
		}

		for _, property := range p.Merger.Merge(schema, existing, ancestor) {
			record.State = types.InheritanceStatePropertiesMerged
			if property.Property != "" {
				record.InheritedProperties = append(record.InheritedProperties, property.Property)
			}
			log.Ctx(ctx).Debug().
				Str("class", fqcn).
				Str("property", property.Property).
				Msg("property inherited")
		}
	}

	if record.State == types.InheritanceStateCollected {
		record.State = types.InheritanceStateNoAncestorAction
	}
	return record, nil
}

func ancestorName(ancestor types.ClassRecord) string {
	if ancestor.Context == nil {
		return ""
	}
	return ancestor.Context.FullyQualifiedName(ancestor.Context.Class)
}
