package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	return NewMetricsWith(prometheus.NewRegistry(), "dateformat")
}

func TestHTTPMiddleware(t *testing.T) {
	m := newTestMetrics(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/date/format", func(w http.ResponseWriter, r *http.Request) {})
	handler := HTTPMiddleware(m)(mux)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/date/format", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/date/format", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestCounter.WithLabelValues("POST /api/date/format", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCounter.WithLabelValues("GET unmatched", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RequestsInFlight.WithLabelValues("http")))
}

func TestUnaryServerInterceptor(t *testing.T) {
	m := newTestMetrics(t)
	interceptor := UnaryServerInterceptor(m)
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "ok", nil
	})
	require.NoError(t, err)

	_, err = interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.NotFound, "unknown service")
	})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCounter.WithLabelValues(info.FullMethod, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCounter.WithLabelValues(info.FullMethod, "NotFound")))
}

func TestRecordFormat(t *testing.T) {
	m := newTestMetrics(t)
	m.RecordFormat("format", "persian")
	m.RecordFormat("format", "persian")
	m.RecordFormat("range", "gregorian")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FormatCounter.WithLabelValues("format", "persian")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FormatCounter.WithLabelValues("range", "gregorian")))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.RecordFormat("format", "persian") })
}
