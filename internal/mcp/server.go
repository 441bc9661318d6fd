package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// Version is set via ldflags at build time.
var Version = "dev"

// ServerName is the name the billing server reports during initialization.
const ServerName = "deepdive-billing"

// Server wraps an MCP server exposing the billing tools the tutorial's
// interaction panel pretends to talk to. Every tool returns a canned result.
type Server struct {
	mcp *server.MCPServer
}

// NewServer creates a new MCP server with the demo tools and resources.
func NewServer() *Server {
	s := &Server{}

	s.mcp = server.NewMCPServer(
		ServerName,
		Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.registerTools()
	s.mcp.AddResourceTemplate(customerResource, s.handleReadCustomer)

	return s
}

// registerTools adds a tool for every catalog entry, in catalog order.
func (s *Server) registerTools() {
	for _, t := range catalogTools() {
		s.mcp.AddTool(t.tool, s.toolHandler(t.spec))
	}
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
