package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/kode4food/brig"
	"github.com/kode4food/brig/pkg/api"
)

// handleDiscover returns the static capability document. The method
// list is fixed regardless of configuration
func (s *Server) handleDiscover(c *gin.Context) {
	slog.Info("Discovery requested")

	c.JSON(http.StatusOK, api.Discovery{
		Name:    app.Name,
		Version: app.Version,
		Capabilities: api.Capabilities{
			SSE:     true,
			Methods: s.dispatcher.Methods(),
		},
	})
}
