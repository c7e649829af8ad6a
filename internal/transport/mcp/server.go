package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	projectsvc "github.com/alanyang/projecthub/internal/service/project"
)

// Server wraps the mark3labs/mcp-go MCPServer and its StreamableHTTPServer so
// LLM agents can drive the project board through the same use-case service the
// REST handlers use. Tools are registered in tools.go.
type Server struct {
	httpSrv *mcpserver.StreamableHTTPServer
}

func New(projectSvc *projectsvc.Service) *Server {
	mcpSrv := mcpserver.NewMCPServer(
		"projecthub",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	RegisterTools(mcpSrv, projectSvc)

	return &Server{httpSrv: mcpserver.NewStreamableHTTPServer(mcpSrv)}
}

// Handler returns an http.Handler that serves the MCP endpoint.
func (s *Server) Handler() http.Handler {
	return s.httpSrv
}
