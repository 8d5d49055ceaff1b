package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kode4food/brig/pkg/api"
)

func TestDecodeParamsIgnoresUnknownFields(t *testing.T) {
	p, err := api.DecodeParams[api.DeleteWorkflowParams](api.Params{
		"workflow_id": "wf-1",
		"unexpected":  true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "wf-1", p.WorkflowID)
}

func TestDecodeParamsNilBag(t *testing.T) {
	p, err := api.DecodeParams[api.ListWorkflowsParams](nil)

	assert.NoError(t, err)
	assert.Nil(t, p.Limit)
	assert.Nil(t, p.Offset)
}

func TestDecodeParamsTypeMismatch(t *testing.T) {
	_, err := api.DecodeParams[api.ListWorkflowsParams](api.Params{
		"limit": "five",
	})

	assert.Error(t, err)
}

func TestListWorkflowsValidation(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		expected error
		params   api.ListWorkflowsParams
		name     string
	}{
		{
			name:   "empty_is_valid",
			params: api.ListWorkflowsParams{},
		},
		{
			name: "positive_limit_and_offset",
			params: api.ListWorkflowsParams{
				Limit:  intPtr(10),
				Offset: intPtr(0),
			},
		},
		{
			name: "zero_limit",
			params: api.ListWorkflowsParams{
				Limit: intPtr(0),
			},
			expected: api.ErrInvalidLimit,
		},
		{
			name: "negative_offset",
			params: api.ListWorkflowsParams{
				Offset: intPtr(-1),
			},
			expected: api.ErrInvalidOffset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestCreateWorkflowValidation(t *testing.T) {
	valid := api.CreateWorkflowParams{
		Workflow: map[string]any{
			"name":        "My Flow",
			"nodes":       []any{},
			"connections": map[string]any{},
		},
	}
	assert.NoError(t, valid.Validate())

	missingNodes := api.CreateWorkflowParams{
		Workflow: map[string]any{
			"connections": map[string]any{},
		},
	}
	assert.ErrorIs(t, missingNodes.Validate(), api.ErrWorkflowNodes)

	missingConnections := api.CreateWorkflowParams{
		Workflow: map[string]any{
			"nodes": []any{},
		},
	}
	assert.ErrorIs(
		t, missingConnections.Validate(), api.ErrWorkflowConnections,
	)
}

func TestWorkflowIDRequired(t *testing.T) {
	update := api.UpdateWorkflowParams{
		Workflow: map[string]any{"name": "renamed"},
	}
	assert.ErrorIs(t, update.Validate(), api.ErrMissingWorkflowID)

	del := api.DeleteWorkflowParams{}
	assert.ErrorIs(t, del.Validate(), api.ErrMissingWorkflowID)
}

func TestRunWorkflowAlwaysValid(t *testing.T) {
	assert.NoError(t, (&api.RunWorkflowParams{}).Validate())
	assert.NoError(t, (&api.RunWorkflowParams{
		WorkflowID: "wf-1",
		Payload:    map[string]any{"runData": true},
	}).Validate())
}

func TestExecutionIDRequired(t *testing.T) {
	params := api.GetExecutionStatusParams{}
	assert.ErrorIs(t, params.Validate(), api.ErrMissingExecutionID)

	params.ExecutionID = "exec-1"
	assert.NoError(t, params.Validate())
}

func TestMethodsList(t *testing.T) {
	methods := api.Methods()

	assert.Len(t, methods, 6)
	assert.Equal(t, []string{
		api.MethodListWorkflows,
		api.MethodCreateWorkflow,
		api.MethodUpdateWorkflow,
		api.MethodDeleteWorkflow,
		api.MethodRunWorkflow,
		api.MethodGetExecutionStatus,
	}, methods)
}
