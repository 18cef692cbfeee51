// Package grpc hosts the gRPC health endpoints the practice and MCP
// binaries expose for orchestration checks.
package grpc

import (
	"fmt"
	"log"
	"net"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// ServeHealth serves the gRPC health protocol on listener, reporting the
// overall server and service as SERVING. The returned func marks both
// NOT_SERVING, drains in-flight checks and closes the listener.
func ServeHealth(listener net.Listener, service string) func() {
	grpcServer := gogrpc.NewServer(gogrpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	if service != "" {
		healthServer.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- grpcServer.Serve(listener)
	}()
	log.Printf("%s health server listening at %v", serviceLabel(service), listener.Addr())

	return func() {
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		if err := <-serveErr; err != nil {
			log.Printf("%s health server: %v", serviceLabel(service), err)
		}
	}
}

// ListenAndServeHealth listens on port and serves health checks for service.
func ListenAndServeHealth(port int, service string) (func(), error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("listen on %s health port %d: %w", serviceLabel(service), port, err)
	}
	return ServeHealth(listener, service), nil
}

func serviceLabel(service string) string {
	if service == "" {
		return "grpc"
	}
	return service
}
