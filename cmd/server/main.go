package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"metargb/dateformat-service/internal/config"
	"metargb/dateformat-service/internal/handler"
	"metargb/dateformat-service/internal/middleware"
	"metargb/dateformat-service/internal/service"
	"metargb/dateformat-service/pkg/logger"
	"metargb/dateformat-service/pkg/metrics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.Load()
	appLogger := logger.NewLogger(cfg.ServiceName, cfg.LogLevel)

	location, err := cfg.Location()
	if err != nil {
		appLogger.Entry().WithError(err).Fatal("Failed to resolve default timezone")
	}

	appMetrics := metrics.NewMetrics(strings.ReplaceAll(cfg.ServiceName, "-", "_"))

	formatService := service.NewFormatService(service.Settings{
		Location:       location,
		RangeSeparator: cfg.RangeSeparator,
		DefaultLocale:  cfg.DefaultLocale,
	}, service.DefaultTranslator(), appMetrics)

	mux := http.NewServeMux()
	handler.NewDateHandler(formatService, appLogger).Register(mux)
	mux.HandleFunc("/health", handler.NewHealthHandler(cfg.ServiceName).Health)
	mux.Handle("/metrics", promhttp.Handler())

	httpServer := &http.Server{
		Addr: ":" + cfg.HTTPPort,
		Handler: middleware.Chain(mux,
			middleware.RequestIDMiddleware,
			logger.HTTPMiddleware(appLogger),
			metrics.HTTPMiddleware(appMetrics),
			middleware.CORSMiddleware,
		),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logger.UnaryServerInterceptor(appLogger),
			metrics.UnaryServerInterceptor(appMetrics),
		),
		grpc.ChainStreamInterceptor(metrics.StreamServerInterceptor(appMetrics)),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(cfg.ServiceName, healthpb.HealthCheckResponse_SERVING)

	listener, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		appLogger.Entry().WithError(err).Fatalf("Failed to listen on port %s", cfg.GRPCPort)
	}

	go func() {
		appLogger.Entry().WithField("port", cfg.GRPCPort).Info("gRPC health server listening")
		if err := grpcServer.Serve(listener); err != nil {
			appLogger.Entry().WithError(err).Fatal("Failed to serve gRPC")
		}
	}()

	go func() {
		appLogger.Entry().WithField("port", cfg.HTTPPort).Info("Date format service listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Entry().WithError(err).Fatal("Failed to serve HTTP")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Entry().Info("Shutting down server...")
	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		appLogger.Entry().WithError(err).Error("HTTP shutdown failed")
	}
	grpcServer.GracefulStop()
	appLogger.Entry().Info("Server stopped")
}
