package service

import (
	"context"
	"errors"
	"fmt"

	platformgrpc "github.com/Vojb/busted-dart/internal/platform/grpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// healthServiceName is the health status key for the MCP runtime.
const healthServiceName = "mcp.runtime"

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	if err := cfg.Transport.validate(); err != nil {
		return err
	}

	if cfg.HealthPort > 0 {
		stop, err := platformgrpc.ListenAndServeHealth(cfg.HealthPort, healthServiceName)
		if err != nil {
			return err
		}
		defer stop()
	}

	server := New()
	switch cfg.Transport.normalized() {
	case TransportHTTP:
		return NewHTTPTransport(cfg.HTTPAddr, server.mcpServer, cfg.AllowedHosts).Start(ctx)
	default:
		return server.serveWithTransport(ctx, &mcp.StdioTransport{})
	}
}

// serveWithTransport runs the MCP server on transport. Context cancellation
// is a clean stop.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
