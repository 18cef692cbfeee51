package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/Vojb/busted-dart/internal/platform/timeouts"
	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/net/netutil"
)

const (
	defaultHTTPAddr = "localhost:8081"
	// maxHTTPConnections caps concurrent client connections; streamable
	// sessions hold one open while a GET stream is active.
	maxHTTPConnections = 64
)

var listenTCP = net.Listen

// HTTPTransport serves one MCP server over streamable HTTP. Every request
// passes the host guard before reaching the SDK handler.
type HTTPTransport struct {
	addr         string
	allowedHosts map[string]struct{}
	server       *mcp.Server
	metrics      *httpMetrics
}

// NewHTTPTransport builds a transport for server. An empty addr binds to
// localhost:8081.
func NewHTTPTransport(addr string, server *mcp.Server, allowedHosts []string) *HTTPTransport {
	if addr == "" {
		addr = defaultHTTPAddr
	}
	return &HTTPTransport{
		addr:         addr,
		allowedHosts: parseAllowedHosts(allowedHosts),
		server:       server,
		metrics:      newHTTPMetrics(),
	}
}

// Handler returns the HTTP routes: /mcp for the protocol, /mcp/health for
// liveness and /metrics for Prometheus scrapes.
func (t *HTTPTransport) Handler() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return t.server
	}, nil)

	router := mux.NewRouter()
	router.Handle("/mcp", t.metrics.instrument("/mcp", t.guard(streamable)))
	router.Handle("/mcp/health", t.metrics.instrument("/mcp/health", t.guard(http.HandlerFunc(t.handleHealth)))).Methods(http.MethodGet)
	router.Handle("/metrics", t.guard(t.metrics.handler())).Methods(http.MethodGet)
	return router
}

// Start listens on the configured address and serves until ctx ends.
func (t *HTTPTransport) Start(ctx context.Context) error {
	if t.server == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	listener, err := listenTCP("tcp", t.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", t.addr, err)
	}
	return t.serve(ctx, netutil.LimitListener(listener, maxHTTPConnections))
}

func (t *HTTPTransport) serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           t.Handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	log.Printf("Starting MCP HTTP server on %s", listener.Addr())

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err, ok := <-errChan:
		if !ok {
			return nil
		}
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

func (t *HTTPTransport) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := t.validateLocalRequest(r); err != nil {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth handles GET /mcp/health.
func (t *HTTPTransport) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Printf("Failed to write health response: %v", err)
	}
}
