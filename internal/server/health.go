package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kode4food/brig/pkg/api"
)

// handleHealth reports static liveness. It must succeed even when the
// upstream n8n API is unreachable
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{
		Status: "ok",
	})
}
