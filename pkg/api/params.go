package api

import (
	"encoding/json"
	"errors"
)

type (
	// ListWorkflowsParams selects a page of workflows
	ListWorkflowsParams struct {
		Limit  *int `json:"limit"`
		Offset *int `json:"offset"`
	}

	// CreateWorkflowParams carries the workflow definition to create.
	// The definition is opaque to the bridge apart from the required
	// nodes and connections fields
	CreateWorkflowParams struct {
		Workflow map[string]any `json:"workflow"`
	}

	// UpdateWorkflowParams merges fields onto an existing workflow
	UpdateWorkflowParams struct {
		Workflow   map[string]any `json:"workflow"`
		WorkflowID string         `json:"workflow_id"`
	}

	// DeleteWorkflowParams identifies the workflow to remove
	DeleteWorkflowParams struct {
		WorkflowID string `json:"workflow_id"`
	}

	// RunWorkflowParams triggers an execution. The workflow ID is
	// optional when the payload already carries workflow data
	RunWorkflowParams struct {
		Payload    map[string]any `json:"payload"`
		WorkflowID string         `json:"workflow_id"`
	}

	// GetExecutionStatusParams identifies the execution to fetch
	GetExecutionStatusParams struct {
		ExecutionID string `json:"execution_id"`
	}
)

var (
	ErrInvalidLimit        = errors.New("limit must be at least 1")
	ErrInvalidOffset       = errors.New("offset cannot be negative")
	ErrMissingWorkflowID   = errors.New("workflow_id is required")
	ErrMissingExecutionID  = errors.New("execution_id is required")
	ErrWorkflowNodes       = errors.New("workflow must include nodes")
	ErrWorkflowConnections = errors.New(
		"workflow must include connections",
	)
)

// DecodeParams coerces an untyped parameter bag into a typed record.
// Unknown fields in the bag are ignored
func DecodeParams[T any](p Params) (*T, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	res := new(T)
	if err := json.Unmarshal(data, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *ListWorkflowsParams) Validate() error {
	if p.Limit != nil && *p.Limit < 1 {
		return ErrInvalidLimit
	}
	if p.Offset != nil && *p.Offset < 0 {
		return ErrInvalidOffset
	}
	return nil
}

func (p *CreateWorkflowParams) Validate() error {
	if _, ok := p.Workflow["nodes"]; !ok {
		return ErrWorkflowNodes
	}
	if _, ok := p.Workflow["connections"]; !ok {
		return ErrWorkflowConnections
	}
	return nil
}

func (p *UpdateWorkflowParams) Validate() error {
	if p.WorkflowID == "" {
		return ErrMissingWorkflowID
	}
	return nil
}

func (p *DeleteWorkflowParams) Validate() error {
	if p.WorkflowID == "" {
		return ErrMissingWorkflowID
	}
	return nil
}

func (p *RunWorkflowParams) Validate() error {
	return nil
}

func (p *GetExecutionStatusParams) Validate() error {
	if p.ExecutionID == "" {
		return ErrMissingExecutionID
	}
	return nil
}
