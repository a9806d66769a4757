package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"schema-inherit/internal/ports"
	"schema-inherit/internal/types"
)

const reportVersion = "v1"

type ReportFileAdapter struct{}

func NewReportFileAdapter() ReportFileAdapter {
	return ReportFileAdapter{}
}

func (a ReportFileAdapter) WriteReport(path string, records []types.InheritanceRecord) error {
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report path is empty")
	}
	data, err := yaml.Marshal(types.InheritanceReport{
		ReportVersion: reportVersion,
		Records:       records,
	})
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode inheritance report").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create report directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write inheritance report").
			WithCause(err)
	}
	return nil
}

// ReadReport reads a report written by WriteReport.
func (a ReportFileAdapter) ReadReport(path string) (types.InheritanceReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.InheritanceReport{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read inheritance report: " + path).
			WithCause(err)
	}
	var report types.InheritanceReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return types.InheritanceReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse inheritance report").
			WithCause(err)
	}
	return report, nil
}

var _ ports.ReportWriterPort = ReportFileAdapter{}
