// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"strings"

	entrypoint "github.com/Vojb/busted-dart/internal/platform/cmd"
	mcpservice "github.com/Vojb/busted-dart/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	HTTPAddr     string   `env:"BUSTED_DART_MCP_HTTP_ADDR"     envDefault:"localhost:8081"`
	Transport    string   `env:"BUSTED_DART_MCP_TRANSPORT"     envDefault:"stdio"`
	HealthPort   int      `env:"BUSTED_DART_MCP_HEALTH_PORT"`
	AllowedHosts []string `env:"BUSTED_DART_MCP_ALLOWED_HOSTS" envSeparator:","`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	allowedHosts := strings.Join(cfg.AllowedHosts, ",")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.IntVar(&cfg.HealthPort, "health-port", cfg.HealthPort, "gRPC health port; 0 disables it")
	fs.StringVar(&allowedHosts, "allowed-hosts", allowedHosts, "Comma-separated hosts accepted besides loopback")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.AllowedHosts = splitHosts(allowedHosts)
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return mcpservice.Run(ctx, mcpservice.Config{
			Transport:    mcpservice.TransportKind(cfg.Transport),
			HTTPAddr:     cfg.HTTPAddr,
			AllowedHosts: cfg.AllowedHosts,
			HealthPort:   cfg.HealthPort,
		})
	})
}

func splitHosts(value string) []string {
	var hosts []string
	for _, host := range strings.Split(value, ",") {
		if host = strings.TrimSpace(host); host != "" {
			hosts = append(hosts, host)
		}
	}
	return hosts
}
