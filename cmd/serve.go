package cmd

import (
	"time"

	"github.com/mj1618/a11y-reporter/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the reporter as tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes event classification,
formatting, service configuration, session replay and tree inspection as tools.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  a11y-reporter serve
  a11y-reporter serve --transport streamable-http --port 8080
  a11y-reporter serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 5000, "Recording cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
		MaxDepth:  cfg.Reporter.MaxDepth,
	}, logger)

	return srv.Serve()
}
