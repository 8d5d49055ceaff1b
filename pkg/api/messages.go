package api

type (
	// Params is the untyped parameter bag attached to a request
	Params map[string]any

	// Request is the RPC envelope accepted on /mcp/request. The ID is
	// opaque and echoed verbatim in the response
	Request struct {
		ID     string `json:"id" binding:"required"`
		Method string `json:"method" binding:"required"`
		Params Params `json:"params"`
	}

	// Response is the envelope carried by every terminal event.
	// Exactly one of Result or Error is set
	Response struct {
		Result *Result `json:"result,omitempty"`
		Error  *Error  `json:"error,omitempty"`
		ID     string  `json:"id"`
	}

	// Result wraps a successful upstream payload
	Result struct {
		Data any    `json:"data"`
		Type string `json:"type"`
	}

	// Error describes a failed request
	Error struct {
		Details map[string]any `json:"details,omitempty"`
		Code    string         `json:"code"`
		Message string         `json:"message"`
	}

	// Discovery is the capability document served by /mcp/discover
	Discovery struct {
		Name         string       `json:"name"`
		Version      string       `json:"version"`
		Capabilities Capabilities `json:"capabilities"`
	}

	// Capabilities lists the supported transport and method names
	Capabilities struct {
		Methods []string `json:"methods"`
		SSE     bool     `json:"sse"`
	}

	// HealthResponse provides service health information
	HealthResponse struct {
		Status string `json:"status"`
	}

	// ErrorResponse contains error details for failed requests
	ErrorResponse struct {
		Error  string `json:"error"`
		Status int    `json:"status,omitempty"`
	}
)

const (
	// ResultTypeJSONSchema tags the payload wrapper of a result event
	ResultTypeJSONSchema = "json_schema"

	// EventResult and EventError name the two terminal event types
	EventResult = "result"
	EventError  = "error"

	// CodeHTTPError classifies transport-level upstream failures
	CodeHTTPError = "http_error"

	// CodeInvalidParams classifies parameter validation failures
	CodeInvalidParams = "invalid_params"

	// CodeInternalError classifies unanticipated failures
	CodeInternalError = "internal_error"
)
