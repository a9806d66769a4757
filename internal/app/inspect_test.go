package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestInspectApp(t *testing.T) {
	service := NewService()
	result, err := service.Inspect(t.Context(), InspectRequest{
		InputPath: fixturePath(t, "analysis-sample.yaml"),
	})
	require.NoError(t, err)

	want := []InspectClassSummary{
		{Name: `App\Models\Animal`, Schema: "Animal", Properties: []string{"name", "age"}, Collected: true},
		{Name: `App\Models\Pet`, Ancestors: []string{`App\Models\Animal`}, Properties: []string{"owner"}},
		{Name: `App\Models\Cat`, Ancestors: []string{`App\Models\Pet`, `App\Models\Animal`}, Properties: []string{"color"}, Collected: true},
		{Name: `App\Models\Dog`, Ancestors: []string{`App\Models\Animal`}, Schema: "Dog", Properties: []string{"breed"}, Collected: true},
		{Name: `App\Support\AuditLog`, Schema: "AuditLog", Collected: true},
	}
	if diff := cmp.Diff(want, result.Classes); diff != "" {
		t.Fatalf("unexpected inspect summary (-want +got):\n%s", diff)
	}
}

func TestInspectAppDoesNotMutate(t *testing.T) {
	service := NewService()
	first, err := service.Inspect(t.Context(), InspectRequest{InputPath: fixturePath(t, "analysis-sample.yaml")})
	require.NoError(t, err)
	second, err := service.Inspect(t.Context(), InspectRequest{InputPath: fixturePath(t, "analysis-sample.yaml")})
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("inspect is not stable (-want +got):\n%s", diff)
	}
}
