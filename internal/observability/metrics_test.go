package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/infygo/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsObserver_Add(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	o := NewMetricsObserver(m)
	ctx := context.Background()

	o.AfterAdd(ctx, &domain.Flight{ID: "FLT1001"}, nil)
	o.AfterAdd(ctx, &domain.Flight{ID: "FLT1002"}, nil)
	o.AfterAdd(ctx, nil, domain.NewValidationError("Flight cannot be null"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FlightsAdded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FlightsRejected))
}

func TestMetricsObserver_Search(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	o := NewMetricsObserver(m)
	ctx := context.Background()
	date := domain.NewDate(2025, 12, 25)

	o.AfterSearch(ctx, "Delhi", "Mumbai", date, 2, nil)
	o.AfterSearch(ctx, "Paris", "Tokyo", date, 0, nil)
	o.AfterSearch(ctx, "", "Tokyo", date, 0, errors.New("invalid argument"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues("empty")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues("error")))
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics(prometheus.NewRegistry())
	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/flights/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/flights/FLT1", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/flights/:id", "404")))
}
