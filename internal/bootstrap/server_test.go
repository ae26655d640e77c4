package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/infygo/config"
	"github.com/Domenick1991/infygo/internal/idgen"
	"github.com/Domenick1991/infygo/internal/logger"
	"github.com/Domenick1991/infygo/internal/observability"
	"github.com/Domenick1991/infygo/internal/repository"
	"github.com/Domenick1991/infygo/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	svc := flights.NewFlightService(
		repository.NewMemoryFlightRepository(),
		flights.WithObserver(observability.NewMetricsObserver(metrics)),
	)
	return NewRouter(config.Default(), Deps{
		Flights:  svc,
		IDs:      idgen.NewSequence("FLT", 1000),
		Metrics:  metrics,
		Gatherer: reg,
		Log:      logger.Nop{},
	})
}

func TestRouter_AddThenSearch(t *testing.T) {
	r := newTestRouter(t)

	payload := `{"airline":"Air India","source":"Delhi","destination":"Mumbai","fare":5000,"journey_date":"2025-12-25","seat_count":120}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/flights", bytes.NewBufferString(payload)))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/flights/search?source=DELHI&destination=mumbai&date=2025-12-25", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var found []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	require.Len(t, found, 1)
	assert.Equal(t, "FLT1001", found[0]["flight_id"])
	assert.InDelta(t, 6000.0, found[0]["display_fare"], 1e-9)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/flights/FLT1001", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "flight_inventory_http_requests_total")
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.HTTP.Address = "127.0.0.1:0"
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, cfg, Deps{
			Flights: flights.NewFlightService(repository.NewMemoryFlightRepository()),
			Log:     logger.Nop{},
		})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
