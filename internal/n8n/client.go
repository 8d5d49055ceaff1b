package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/kode4food/brig/pkg/api"
	"github.com/kode4food/brig/pkg/log"
)

type (
	// Client wraps the n8n REST API. A single Client is created at
	// process start and shared by all requests; the pooled transport
	// is safe for concurrent use
	Client struct {
		httpClient *http.Client
		baseURL    string
		apiKey     string
	}

	// StatusError is returned when n8n responds outside the 2xx range
	StatusError struct {
		Body       []byte
		StatusCode int
	}
)

const (
	apiKeyHeader    = "X-N8N-API-KEY"
	contentTypeJSON = "application/json"

	defaultWorkflowName = "New Workflow"
)

var (
	ErrRequestFailed = errors.New("n8n request failed")
	ErrDecodeBody    = errors.New("failed to decode n8n response")
)

func (e *StatusError) Error() string {
	return fmt.Sprintf("n8n returned HTTP %d", e.StatusCode)
}

// Response returns the parsed upstream body, or nil when the body is
// empty or not valid JSON
func (e *StatusError) Response() any {
	if len(bytes.TrimSpace(e.Body)) == 0 || !gjson.ValidBytes(e.Body) {
		return nil
	}
	return gjson.ParseBytes(e.Body).Value()
}

// New creates a client for the n8n API at baseURL. The API key may be
// empty, in which case no credential header is sent
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Close releases the pooled upstream connections. It is called exactly
// once at process stop
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// ListWorkflows fetches workflows, forwarding limit and offset as
// query parameters when present
func (c *Client) ListWorkflows(
	ctx context.Context, p *api.ListWorkflowsParams,
) (any, error) {
	query := url.Values{}
	if p.Limit != nil {
		query.Set("limit", strconv.Itoa(*p.Limit))
	}
	if p.Offset != nil {
		query.Set("offset", strconv.Itoa(*p.Offset))
	}

	path := "/workflows"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeBody(body)
}

// CreateWorkflow creates a workflow from the normalized payload. Only
// name, active, nodes, and connections are forwarded; name defaults
// when absent and active defaults to false
func (c *Client) CreateWorkflow(
	ctx context.Context, p *api.CreateWorkflowParams,
) (any, error) {
	payload := map[string]any{
		"name":        defaultWorkflowName,
		"active":      false,
		"nodes":       p.Workflow["nodes"],
		"connections": p.Workflow["connections"],
	}
	if name, ok := p.Workflow["name"]; ok {
		payload["name"] = name
	}
	if active, ok := p.Workflow["active"]; ok {
		payload["active"] = active
	}

	body, err := c.do(ctx, http.MethodPost, "/workflows", payload)
	if err != nil {
		return nil, err
	}
	return decodeBody(body)
}

// UpdateWorkflow merges the provided fields onto an existing workflow
func (c *Client) UpdateWorkflow(
	ctx context.Context, p *api.UpdateWorkflowParams,
) (any, error) {
	slog.Debug("Updating workflow", log.WorkflowID(p.WorkflowID))

	body, err := c.do(
		ctx, http.MethodPatch, "/workflows/"+p.WorkflowID, p.Workflow,
	)
	if err != nil {
		return nil, err
	}
	return decodeBody(body)
}

// DeleteWorkflow removes a workflow. n8n answers deletions with an
// empty body, which is reported as a deleted status
func (c *Client) DeleteWorkflow(
	ctx context.Context, p *api.DeleteWorkflowParams,
) (any, error) {
	slog.Debug("Deleting workflow", log.WorkflowID(p.WorkflowID))

	body, err := c.do(
		ctx, http.MethodDelete, "/workflows/"+p.WorkflowID, nil,
	)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{"status": "deleted"}, nil
	}
	return decodeBody(body)
}

// RunWorkflow triggers an execution. When a workflow ID is provided it
// is merged into the payload under workflowId without overwriting a
// value the caller already set
func (c *Client) RunWorkflow(
	ctx context.Context, p *api.RunWorkflowParams,
) (any, error) {
	payload := map[string]any{}
	for k, v := range p.Payload {
		payload[k] = v
	}
	if p.WorkflowID != "" {
		if _, ok := payload["workflowId"]; !ok {
			payload["workflowId"] = p.WorkflowID
		}
	}

	body, err := c.do(ctx, http.MethodPost, "/workflows/run", payload)
	if err != nil {
		return nil, err
	}
	return decodeBody(body)
}

// GetExecutionStatus fetches the run record for an execution
func (c *Client) GetExecutionStatus(
	ctx context.Context, p *api.GetExecutionStatusParams,
) (any, error) {
	slog.Debug("Fetching execution status",
		log.ExecutionID(p.ExecutionID))

	body, err := c.do(
		ctx, http.MethodGet, "/executions/"+p.ExecutionID, nil,
	)
	if err != nil {
		return nil, err
	}
	return decodeBody(body)
}

// do performs one upstream call and returns the raw response body.
// Non-2xx statuses become a *StatusError; transport failures are
// wrapped in ErrRequestFailed
func (c *Client) do(
	ctx context.Context, method, path string, payload any,
) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(
		ctx, method, c.baseURL+path, reqBody,
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", contentTypeJSON)
	if payload != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	dur := time.Since(start)

	if err != nil {
		slog.Error("n8n request failed",
			slog.String("http_method", method),
			slog.String("path", path),
			slog.Duration("duration", dur),
			log.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("Failed to read n8n response",
			slog.String("http_method", method),
			slog.String("path", path),
			log.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	if resp.StatusCode < http.StatusOK ||
		resp.StatusCode >= http.StatusMultipleChoices {
		slog.Error("n8n returned an error",
			slog.String("http_method", method),
			slog.String("path", path),
			log.StatusCode(resp.StatusCode),
			slog.String("response_body", string(respBody)))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       respBody,
		}
	}

	slog.Debug("n8n request completed",
		slog.String("http_method", method),
		slog.String("path", path),
		log.StatusCode(resp.StatusCode),
		slog.Duration("duration", dur))
	return respBody, nil
}

func decodeBody(body []byte) (any, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrDecodeBody)
	}
	return gjson.ParseBytes(body).Value(), nil
}
