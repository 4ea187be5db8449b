package vitals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/hearthero/internal/middleware"
	"github.com/2beens/hearthero/internal/telemetry/metrics"
	"github.com/2beens/hearthero/internal/telemetry/tracing"
	"github.com/2beens/hearthero/pkg"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

type clientResolver interface {
	Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, error)
}

type StepsRequest struct {
	Steps *int `json:"steps"`
}

type HeartRateRequest struct {
	HeartRate *int `json:"heartRate"`
}

type BloodPressureRequest struct {
	Systolic  *int `json:"systolic"`
	Diastolic *int `json:"diastolic"`
}

type Handler struct {
	service  *Service
	resolver clientResolver
	metrics  *metrics.Manager
}

func NewHandler(
	service *Service,
	resolver clientResolver,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		service:  service,
		resolver: resolver,
		metrics:  metrics,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	updatesAllowedPerMin int,
) {
	mainRouter.HandleFunc("/health-metrics/today", handler.HandleToday).Methods("GET", "OPTIONS").Name("metrics-today")

	updatesRouter := mainRouter.PathPrefix("/health-metrics").Subrouter()
	updatesRouter.HandleFunc("/steps", handler.HandleUpdateSteps).Methods("POST", "OPTIONS").Name("update-steps")
	updatesRouter.HandleFunc("/heart-rate", handler.HandleUpdateHeartRate).Methods("POST", "OPTIONS").Name("update-heart-rate")
	updatesRouter.HandleFunc("/blood-pressure", handler.HandleUpdateBloodPressure).Methods("POST", "OPTIONS").Name("update-blood-pressure")

	// metric updates get abused easily, keep them rate limited
	updatesRouter.Use(middleware.RateLimit(rateLimiter, "health-metrics", updatesAllowedPerMin, handler.metrics))
}

func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.vitals.today")
	defer span.End()

	clientID, err := handler.resolver.Resolve(ctx, w, r)
	if err != nil {
		log.Errorf("metrics today, resolve client id: %s", err)
		http.Error(w, "failed to fetch health metrics", http.StatusInternalServerError)
		return
	}

	m, err := handler.service.Today(ctx, clientID)
	if err != nil {
		log.Errorf("metrics today for %s: %s", clientID, err)
		http.Error(w, "failed to fetch health metrics", http.StatusInternalServerError)
		return
	}

	handler.writeMetric(w, m)
}

func (handler *Handler) HandleUpdateSteps(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.vitals.updateSteps")
	defer span.End()

	var req StepsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Steps == nil {
		http.Error(w, "invalid steps value", http.StatusBadRequest)
		return
	}

	clientID, err := handler.resolver.Resolve(ctx, w, r)
	if err != nil {
		log.Errorf("update steps, resolve client id: %s", err)
		http.Error(w, "failed to update steps", http.StatusInternalServerError)
		return
	}

	m, err := handler.service.UpdateSteps(ctx, clientID, *req.Steps)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, "invalid steps value", http.StatusBadRequest)
			return
		}
		log.Errorf("update steps for %s: %s", clientID, err)
		http.Error(w, "failed to update steps", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterVitalsUpdates.With(prometheus.Labels{"field": "steps"}).Inc()
	handler.writeMetric(w, m)
}

func (handler *Handler) HandleUpdateHeartRate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.vitals.updateHeartRate")
	defer span.End()

	var req HeartRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.HeartRate == nil {
		http.Error(w, "invalid heart rate value", http.StatusBadRequest)
		return
	}

	clientID, err := handler.resolver.Resolve(ctx, w, r)
	if err != nil {
		log.Errorf("update heart rate, resolve client id: %s", err)
		http.Error(w, "failed to update heart rate", http.StatusInternalServerError)
		return
	}

	m, err := handler.service.UpdateHeartRate(ctx, clientID, *req.HeartRate)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, "invalid heart rate value", http.StatusBadRequest)
			return
		}
		log.Errorf("update heart rate for %s: %s", clientID, err)
		http.Error(w, "failed to update heart rate", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterVitalsUpdates.With(prometheus.Labels{"field": "heart_rate"}).Inc()
	handler.writeMetric(w, m)
}

func (handler *Handler) HandleUpdateBloodPressure(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.vitals.updateBloodPressure")
	defer span.End()

	var req BloodPressureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Systolic == nil || req.Diastolic == nil {
		http.Error(w, "invalid blood pressure values", http.StatusBadRequest)
		return
	}

	clientID, err := handler.resolver.Resolve(ctx, w, r)
	if err != nil {
		log.Errorf("update blood pressure, resolve client id: %s", err)
		http.Error(w, "failed to update blood pressure", http.StatusInternalServerError)
		return
	}

	m, err := handler.service.UpdateBloodPressure(ctx, clientID, *req.Systolic, *req.Diastolic)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			http.Error(w, "invalid blood pressure values", http.StatusBadRequest)
			return
		}
		log.Errorf("update blood pressure for %s: %s", clientID, err)
		http.Error(w, "failed to update blood pressure", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterVitalsUpdates.With(prometheus.Labels{"field": "blood_pressure"}).Inc()
	handler.writeMetric(w, m)
}

func (handler *Handler) writeMetric(w http.ResponseWriter, m *Metric) {
	metricJson, err := json.Marshal(m)
	if err != nil {
		log.Errorf("marshal health metric: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, metricJson)
}
