package app

import (
	"schema-inherit/internal/adapters"
	"schema-inherit/internal/ports"
)

type Service struct {
	Analysis ports.AnalysisSourcePort
	Schemas  ports.SchemaWriterPort
	Reports  ports.ReportWriterPort
}

func NewService() Service {
	return Service{
		Analysis: adapters.NewAnalysisFileAdapter(),
		Schemas:  adapters.NewSchemaFileAdapter(),
		Reports:  adapters.NewReportFileAdapter(),
	}
}
