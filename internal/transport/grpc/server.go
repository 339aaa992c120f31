// Package grpc serves the gRPC admin surface: health checking and reflection.
package grpc

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// ServiceName is the health-checked service name.
const ServiceName = "procat.CatalogService"

// NewServer creates a gRPC server with the health service registered. The
// overall and ServiceName statuses start as NOT_SERVING until a probe passes.
func NewServer(log logrus.FieldLogger) (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(logUnary(log)))

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	// Enable reflection (for grpcurl and debugging)
	reflection.Register(srv)

	return srv, hs
}

// WatchHealth runs check every interval until ctx is done and mirrors the
// result into hs.
func WatchHealth(ctx context.Context, hs *health.Server, check func(context.Context) error, interval time.Duration, log logrus.FieldLogger) {
	probe := func() {
		checkCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()

		next := healthpb.HealthCheckResponse_SERVING
		if err := check(checkCtx); err != nil {
			next = healthpb.HealthCheckResponse_NOT_SERVING
			log.WithError(err).Warn("health probe failed")
		}
		hs.SetServingStatus("", next)
		hs.SetServingStatus(ServiceName, next)
	}

	probe()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe()
		}
	}
}

func logUnary(log logrus.FieldLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.WithFields(logrus.Fields{
			"method":   info.FullMethod,
			"code":     status.Code(err).String(),
			"duration": time.Since(start).String(),
		}).Debug("grpc request served")
		return resp, err
	}
}
