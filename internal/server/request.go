package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kode4food/brig/internal/bridge"
	"github.com/kode4food/brig/internal/n8n"
	"github.com/kode4food/brig/pkg/api"
	"github.com/kode4food/brig/pkg/log"
)

var ErrInvalidJSON = errors.New("invalid request body")

// handleRequest translates one envelope into one n8n call and emits a
// single terminal SSE event. Malformed envelopes and unsupported
// methods are rejected with a plain 400 before the stream starts
func (s *Server) handleRequest(c *gin.Context) {
	var req api.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error:  fmt.Sprintf("%s: %v", ErrInvalidJSON, err),
			Status: http.StatusBadRequest,
		})
		return
	}

	if !s.dispatcher.Supports(req.Method) {
		slog.Error("Unsupported method",
			log.RequestID(req.ID),
			log.Method(req.Method))
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error: fmt.Sprintf("%s: %s",
				bridge.ErrUnsupportedMethod, req.Method),
			Status: http.StatusBadRequest,
		})
		return
	}

	corrID := uuid.NewString()
	slog.Info("Dispatching request",
		log.RequestID(req.ID),
		log.Method(req.Method),
		log.CorrelationID(corrID))

	res, err := s.dispatcher.Dispatch(
		c.Request.Context(), req.Method, req.Params,
	)
	if err != nil {
		slog.Error("Request failed",
			log.RequestID(req.ID),
			log.Method(req.Method),
			log.CorrelationID(corrID),
			log.Error(err))
		writeEvent(c, api.EventError, &api.Response{
			ID:    req.ID,
			Error: classifyError(err),
		})
		return
	}

	slog.Info("Request succeeded",
		log.RequestID(req.ID),
		log.Method(req.Method),
		log.CorrelationID(corrID))
	writeEvent(c, api.EventResult, &api.Response{
		ID: req.ID,
		Result: &api.Result{
			Type: api.ResultTypeJSONSchema,
			Data: res,
		},
	})
}

// classifyError maps dispatch failures onto the wire error taxonomy
func classifyError(err error) *api.Error {
	var statusErr *n8n.StatusError
	if errors.As(err, &statusErr) {
		res := &api.Error{
			Code:    strconv.Itoa(statusErr.StatusCode),
			Message: "n8n API returned an error",
		}
		if body := statusErr.Response(); body != nil {
			res.Details = map[string]any{"response": body}
		}
		return res
	}

	if errors.Is(err, bridge.ErrInvalidParams) {
		return &api.Error{
			Code:    api.CodeInvalidParams,
			Message: err.Error(),
		}
	}

	if errors.Is(err, n8n.ErrRequestFailed) {
		return &api.Error{
			Code:    api.CodeHTTPError,
			Message: err.Error(),
		}
	}

	return &api.Error{
		Code:    api.CodeInternalError,
		Message: err.Error(),
	}
}

// writeEvent emits the single terminal event for a request
func writeEvent(c *gin.Context, event string, res *api.Response) {
	c.Header("Cache-Control", "no-cache")
	c.SSEvent(event, res)
	c.Writer.Flush()
}
