package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vojb/busted-dart/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "busted-dart MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	// HTTPAddr defaults to localhost:8081 for HTTP transport.
	HTTPAddr string
	// AllowedHosts extends the loopback hosts accepted by the HTTP transport.
	AllowedHosts []string
	// HealthPort serves gRPC health checks; zero disables it.
	HealthPort int
}

type registrationKind int

const (
	registrationKindTools registrationKind = iota
	registrationKindResources
)

type registrationModule struct {
	name     string
	kind     registrationKind
	register func(*mcp.Server)
}

func registrationModules() []registrationModule {
	return []registrationModule{
		{
			name: "throw-tools",
			kind: registrationKindTools,
			register: func(server *mcp.Server) {
				mcp.AddTool(server, domain.SimulateThrowTool(), domain.SimulateThrowHandler())
			},
		},
		{
			name: "checkout-tools",
			kind: registrationKindTools,
			register: func(server *mcp.Server) {
				mcp.AddTool(server, domain.CheckoutRoutesTool(), domain.CheckoutRoutesHandler())
				mcp.AddTool(server, domain.ValidateRouteTool(), domain.ValidateRouteHandler())
				mcp.AddTool(server, domain.IsFinishableTool(), domain.IsFinishableHandler())
			},
		},
		{
			name: "practice-tools",
			kind: registrationKindTools,
			register: func(server *mcp.Server) {
				mcp.AddTool(server, domain.RandomCheckoutTool(), domain.RandomCheckoutHandler())
				mcp.AddTool(server, domain.BoardTargetsTool(), domain.BoardTargetsHandler())
			},
		},
		{
			name: "checkout-resources",
			kind: registrationKindResources,
			register: func(server *mcp.Server) {
				server.AddResource(domain.CheckoutTableResource(), domain.CheckoutTableResourceHandler())
				server.AddResourceTemplate(domain.CheckoutScoreResourceTemplate(), domain.CheckoutScoreResourceHandler())
			},
		},
	}
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates an MCP server with every darts tool and resource registered.
func New() *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler: completionHandler,
	})
	for _, module := range registrationModules() {
		module.register(mcpServer)
	}
	return &Server{mcpServer: mcpServer}
}

// completionHandler completes the score argument of the checkout routes
// template and returns nothing for anything else.
func completionHandler(_ context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	values := []string{}
	if req != nil && req.Params != nil && req.Params.Argument.Name == "score" {
		values = domain.CompleteScores(req.Params.Argument.Value)
	}
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: values,
			Total:  len(values),
		},
	}, nil
}

func (k TransportKind) normalized() TransportKind {
	return TransportKind(strings.ToLower(strings.TrimSpace(string(k))))
}

func (k TransportKind) validate() error {
	switch k.normalized() {
	case TransportStdio, TransportHTTP:
		return nil
	default:
		return fmt.Errorf("transport %q is not supported", string(k))
	}
}
