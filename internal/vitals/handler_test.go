package vitals

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/2beens/hearthero/internal/profile"
	"github.com/2beens/hearthero/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedResolver struct {
	clientID string
}

func (r *fixedResolver) Resolve(_ context.Context, _ http.ResponseWriter, _ *http.Request) (string, error) {
	return r.clientID, nil
}

type stubRateLimiter struct {
	allowed int
}

func (l *stubRateLimiter) Allow(_ context.Context, _ string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	return &redis_rate.Result{Allowed: l.allowed, RetryAfter: time.Minute}, nil
}

func newTestHandlerRouter() (*mux.Router, *Service) {
	service := NewService(NewInMemRepo(), profile.NewInMemRepo())
	handler := NewHandler(service, &fixedResolver{clientID: "ip_1.2.3.4"}, metrics.NewTestManager())
	router := mux.NewRouter()
	handler.SetupRoutes(router, &stubRateLimiter{allowed: 1}, 60)
	return router, service
}

func TestHandler_UpdateSteps(t *testing.T) {
	router, _ := newTestHandlerRouter()

	req := httptest.NewRequest("POST", "/health-metrics/steps", strings.NewReader(`{"steps": 8000}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var m Metric
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m))
	assert.Equal(t, 8000, m.Steps)
	assert.Equal(t, DefaultHeartRate, m.HeartRate)
	assert.Equal(t, DefaultSystolicBP, m.SystolicBP)
	assert.Equal(t, DefaultDiastolicBP, m.DiastolicBP)
}

func TestHandler_UpdateSteps_invalid(t *testing.T) {
	router, _ := newTestHandlerRouter()

	for _, body := range []string{
		`{"steps": -5}`,
		`{}`,
		`not json`,
	} {
		req := httptest.NewRequest("POST", "/health-metrics/steps", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body: %s", body)
		assert.Contains(t, rr.Body.String(), "invalid steps value")
	}
}

func TestHandler_UpdateHeartRate(t *testing.T) {
	router, _ := newTestHandlerRouter()

	req := httptest.NewRequest("POST", "/health-metrics/heart-rate", strings.NewReader(`{"heartRate": 95}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var m Metric
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m))
	assert.Equal(t, 95, m.HeartRate)
}

func TestHandler_UpdateHeartRate_outOfRange(t *testing.T) {
	router, _ := newTestHandlerRouter()

	req := httptest.NewRequest("POST", "/health-metrics/heart-rate", strings.NewReader(`{"heartRate": 10}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid heart rate value")
}

func TestHandler_UpdateBloodPressure(t *testing.T) {
	router, _ := newTestHandlerRouter()

	req := httptest.NewRequest(
		"POST", "/health-metrics/blood-pressure",
		strings.NewReader(`{"systolic": 130, "diastolic": 85}`),
	)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var m Metric
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m))
	assert.Equal(t, 130, m.SystolicBP)
	assert.Equal(t, 85, m.DiastolicBP)
}

func TestHandler_UpdateBloodPressure_invalid(t *testing.T) {
	router, _ := newTestHandlerRouter()

	for _, body := range []string{
		`{"systolic": 120, "diastolic": 125}`,
		`{"systolic": 120}`,
		`{"diastolic": 80}`,
	} {
		req := httptest.NewRequest("POST", "/health-metrics/blood-pressure", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body: %s", body)
		assert.Contains(t, rr.Body.String(), "invalid blood pressure values")
	}
}

func TestHandler_Today(t *testing.T) {
	router, service := newTestHandlerRouter()

	_, err := service.UpdateSteps(context.Background(), "ip_1.2.3.4", 4200)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/health-metrics/today", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var m Metric
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m))
	assert.Equal(t, 4200, m.Steps)
}

func TestHandler_Updates_rateLimited(t *testing.T) {
	service := NewService(NewInMemRepo(), profile.NewInMemRepo())
	handler := NewHandler(service, &fixedResolver{clientID: "ip_1.2.3.4"}, metrics.NewTestManager())
	router := mux.NewRouter()
	handler.SetupRoutes(router, &stubRateLimiter{allowed: 0}, 60)

	req := httptest.NewRequest("POST", "/health-metrics/steps", strings.NewReader(`{"steps": 8000}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	// reads stay unlimited
	req = httptest.NewRequest("GET", "/health-metrics/today", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandler_Today_unknownClient(t *testing.T) {
	router, _ := newTestHandlerRouter()

	req := httptest.NewRequest("GET", "/health-metrics/today", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var m Metric
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m))
	assert.Equal(t, DefaultSteps, m.Steps)
	assert.Equal(t, DefaultHeartRate, m.HeartRate)
}
