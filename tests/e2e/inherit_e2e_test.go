package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/require"

	"schema-inherit/tests/testutil"
)

func TestInheritCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	outDir := t.TempDir()
	outputPath := filepath.Join(outDir, "openapi.json")
	reportPath := filepath.Join(outDir, "inherit-report.yaml")

	cmd := exec.Command("go", "run", "./cmd/schema-inherit", "inherit",
		"--input", "fixtures/analysis-sample.yaml",
		"--output", outputPath,
		"--format", "json",
		"--report", reportPath,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.FileExists(t, outputPath)
	require.FileExists(t, reportPath)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	var doc struct {
		Components struct {
			Schemas map[string]any `json:"schemas"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Contains(t, doc.Components.Schemas, "Cat")
}

func TestValidateCommandE2EFailsOnCycle(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/schema-inherit", "validate",
		"--input", "fixtures/analysis-cycle.yaml",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.Error(t, err, string(out))
}
