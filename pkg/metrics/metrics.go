package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const namespace = "metargb"

// Metrics holds Prometheus metrics for a service
type Metrics struct {
	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight *prometheus.GaugeVec
	FormatCounter    *prometheus.CounterVec
}

// NewMetrics creates a new metrics instance registered with the default registry
func NewMetrics(serviceName string) *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer, serviceName)
}

// NewMetricsWith creates a metrics instance registered with reg
func NewMetricsWith(reg prometheus.Registerer, serviceName string) *Metrics {
	m := &Metrics{
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: serviceName,
				Name:      "requests_total",
				Help:      "Total number of requests",
			},
			[]string{"method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: serviceName,
				Name:      "request_duration_seconds",
				Help:      "Request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		RequestsInFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: serviceName,
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
			[]string{"method"},
		),
		FormatCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: serviceName,
				Name:      "formats_total",
				Help:      "Dates formatted, by operation and calendar system",
			},
			[]string{"operation", "calendar"}, // calendar: gregorian, persian, invalid
		),
	}

	reg.MustRegister(m.RequestCounter, m.RequestDuration, m.RequestsInFlight, m.FormatCounter)
	return m
}

// RecordFormat counts one formatting operation
func (m *Metrics) RecordFormat(operation, calendar string) {
	if m == nil {
		return
	}
	m.FormatCounter.WithLabelValues(operation, calendar).Inc()
}

func (m *Metrics) track(method string) func(code string) {
	m.RequestsInFlight.WithLabelValues(method).Inc()
	start := time.Now()

	return func(code string) {
		m.RequestsInFlight.WithLabelValues(method).Dec()
		m.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
		m.RequestCounter.WithLabelValues(method, code).Inc()
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// HTTPMiddleware records request metrics labelled by the matched route
// pattern, so unknown paths share one "unmatched" series.
func HTTPMiddleware(metrics *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			metrics.RequestsInFlight.WithLabelValues("http").Inc()
			start := time.Now()

			next.ServeHTTP(sw, r)

			metrics.RequestsInFlight.WithLabelValues("http").Dec()
			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			method := r.Method + " " + route
			metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
			metrics.RequestCounter.WithLabelValues(method, strconv.Itoa(sw.status)).Inc()
		})
	}
}

// UnaryServerInterceptor returns a new unary server interceptor for metrics
func UnaryServerInterceptor(metrics *Metrics) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		done := metrics.track(info.FullMethod)

		resp, err := handler(ctx, req)

		done(grpcCode(err))
		return resp, err
	}
}

// StreamServerInterceptor returns a new stream server interceptor for metrics
func StreamServerInterceptor(metrics *Metrics) grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		stream grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		done := metrics.track(info.FullMethod)

		err := handler(srv, stream)

		done(grpcCode(err))
		return err
	}
}

func grpcCode(err error) string {
	if err == nil {
		return "ok"
	}
	st, _ := status.FromError(err)
	return st.Code().String()
}
