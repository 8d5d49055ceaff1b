package server

import (
	"log/slog"
	"net/http"

	glog "github.com/gin-contrib/slog"
	"github.com/gin-gonic/gin"

	"github.com/kode4food/brig/internal/bridge"
)

// Server implements the HTTP surface of the bridge
type Server struct {
	dispatcher *bridge.Dispatcher
}

// NewServer creates a new HTTP API server around the dispatcher
func NewServer(d *bridge.Dispatcher) *Server {
	return &Server{
		dispatcher: d,
	}
}

// SetupRoutes configures and returns the HTTP router with all
// endpoints
func (s *Server) SetupRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(glog.SetLogger(
		glog.WithLogger(func(c *gin.Context, l *slog.Logger) *slog.Logger {
			return slog.Default()
		}),
	))

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set(
			"Access-Control-Allow-Methods",
			"GET, POST, OPTIONS",
		)
		c.Writer.Header().Set(
			"Access-Control-Allow-Headers",
			"Content-Type, Authorization",
		)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/healthz", s.handleHealth)

	// Bridge endpoints
	mcp := router.Group("/mcp")
	{
		mcp.GET("/discover", s.handleDiscover)
		mcp.POST("/request", s.handleRequest)
	}

	return router
}
