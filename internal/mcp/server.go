package mcp

import (
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/ats-adapter/internal/handlers"
)

const (
	serverName    = "ats-adapter"
	serverVersion = "0.1.0"
)

// NewServer builds an MCP server exposing the job-board tools
func NewServer(h *handlers.Handlers) *sdkmcp.Server {
	impl := &sdkmcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}

	s := sdkmcp.NewServer(impl, nil)
	registerTools(s, h)
	return s
}

// NewHTTPHandler serves the MCP server over the streamable HTTP transport
func NewHTTPHandler(s *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return s
	}, nil)
}
