package ports

import "schema-inherit/internal/types"

type SchemaWriterPort interface {
	WriteSchemas(path string, format types.OutputFormat, schemas []*types.Schema) error
}

type ReportWriterPort interface {
	WriteReport(path string, records []types.InheritanceRecord) error
}
