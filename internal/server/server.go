// Package server exposes the reporter as Model Context Protocol tools.
package server

import (
	"fmt"
	"log/slog"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/a11y-reporter/internal/logging"
	"github.com/mj1618/a11y-reporter/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
	MaxDepth  int
}

// Server wraps the MCP server with the recording cache.
type Server struct {
	cfg    Config
	cache  *RecordingCache
	logger *slog.Logger
	mcp    *mcpserver.MCPServer
}

// New creates and configures an MCP server with all reporter tools.
func New(cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{
		cfg:    cfg,
		cache:  NewRecordingCache(cfg.CacheTTL),
		logger: logger,
	}
	s.mcp = mcpserver.NewMCPServer(
		"a11y-reporter",
		version.Version,
		mcpserver.WithToolCapabilities(false),
	)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve() error {
	switch s.cfg.Transport {
	case "stdio":
		s.logger.Info("serving MCP", "transport", "stdio")
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		addr := fmt.Sprintf(":%d", s.cfg.Port)
		s.logger.Info("serving MCP", "transport", "streamable-http", "addr", addr)
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.cfg.Transport)
	}
}
