package app

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateApp(t *testing.T) {
	service := NewService()
	result, err := service.Validate(t.Context(), ValidateRequest{
		InputPath: fixturePath(t, "analysis-sample.yaml"),
	})
	require.NoError(t, err)
	want := ValidateResult{
		Classes:        5,
		Schemas:        5,
		ClassSchemas:   4,
		UnknownParents: []string{`App\Support\AuditLog -> Vendor\Orm\Model`},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("unexpected validation result (-want +got):\n%s", diff)
	}
}

func TestValidateAppRejectsCycle(t *testing.T) {
	service := NewService()
	_, err := service.Validate(t.Context(), ValidateRequest{
		InputPath: fixturePath(t, "analysis-cycle.yaml"),
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	var builder *errbuilder.ErrBuilder
	require.True(t, errors.As(err, &builder))
	assert.Contains(t, builder.Msg, "superclass cycle")
}

func TestValidateAppRequiresInput(t *testing.T) {
	_, err := NewService().Validate(t.Context(), ValidateRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
