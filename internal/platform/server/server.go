package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"

	dashboardv1 "github.com/ogurasousui/codex-employee-dashboard/internal/adapters/grpc/gen/dashboard/v1"
	"github.com/ogurasousui/codex-employee-dashboard/internal/adapters/grpc/handler"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/auth"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/employee"
)

const metricsShutdownTimeout = 5 * time.Second

// Server は gRPC サーバーとメトリクス用 HTTP サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr  string
	metricsAddr string
	grpcServer  *grpc.Server
	metrics     *Metrics
	registry    *prometheus.Registry
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。metricsAddr が空ならメトリクスを公開しません。
func New(listenAddr, metricsAddr string, employees employee.UseCase, authUC auth.UseCase, opts ...grpc.ServerOption) *Server {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	interceptors := grpc.ChainUnaryInterceptor(
		metrics.UnaryInterceptor(),
		LoggingInterceptor(log.Default()),
		handler.AuthInterceptor(authUC),
	)
	srv := grpc.NewServer(append([]grpc.ServerOption{interceptors}, opts...)...)
	dashboardv1.RegisterDashboardServiceServer(srv, handler.NewDashboardGrpcHandler(employees, authUC))

	return &Server{
		listenAddr:  listenAddr,
		metricsAddr: metricsAddr,
		grpcServer:  srv,
		metrics:     metrics,
		registry:    registry,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は lis で待ち受けます。テストでは bufconn のリスナーを渡せます。
// gRPC サーバーがどの経路で終了してもメトリクス用サーバーは停止されます。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	if s.metricsAddr != "" {
		metricsLis, err := net.Listen("tcp", s.metricsAddr)
		if err != nil {
			_ = lis.Close()
			return fmt.Errorf("listen metrics on %s: %w", s.metricsAddr, err)
		}
		metricsSrv := &http.Server{
			Handler:           MetricsHandler(s.registry),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Printf("metrics listening on %s", metricsLis.Addr())
			if err := metricsSrv.Serve(metricsLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("metrics server stopped with error: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
			defer cancel()
			_ = metricsSrv.Shutdown(shutdownCtx)
			_ = metricsLis.Close()
		}()
	}

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			s.grpcServer.GracefulStop()
		case <-stopped:
		}
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}
