package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/hearthero/internal/bmi"
	"github.com/2beens/hearthero/internal/telemetry/metrics"
	"github.com/2beens/hearthero/internal/telemetry/tracing"
	"github.com/2beens/hearthero/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type repo interface {
	Get(ctx context.Context, clientID string) (*Profile, error)
	Upsert(ctx context.Context, p Profile) (*Profile, error)
}

type clientResolver interface {
	Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, error)
}

type Handler struct {
	repo     repo
	resolver clientResolver
	metrics  *metrics.Manager
}

func NewHandler(
	repo repo,
	resolver clientResolver,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		repo:     repo,
		resolver: resolver,
		metrics:  metrics,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/profile", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	router.HandleFunc("/profile", handler.HandleUpdate).Methods("POST", "OPTIONS").Name("update-profile")
	router.HandleFunc("/bmi", handler.HandleBMI).Methods("GET", "OPTIONS").Name("bmi")
	router.HandleFunc("/walking-recommendation", handler.HandleWalkingRecommendation).Methods("GET", "OPTIONS").Name("walking-recommendation")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	clientID, err := handler.resolver.Resolve(ctx, w, r)
	if err != nil {
		log.Errorf("get profile, resolve client id: %s", err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	p, err := handler.repo.Get(ctx, clientID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get profile for %s: %s", clientID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(p)
	if err != nil {
		log.Errorf("marshal profile: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, profileJson)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.update")
	defer span.End()

	clientID, err := handler.resolver.Resolve(ctx, w, r)
	if err != nil {
		log.Errorf("update profile, resolve client id: %s", err)
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	var params UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("update profile, unmarshal json params: %s", err)
		http.Error(w, "invalid profile data", http.StatusBadRequest)
		return
	}

	base := Default(clientID)
	if existing, err := handler.repo.Get(ctx, clientID); err == nil {
		base = *existing
	} else if !errors.Is(err, ErrProfileNotFound) {
		log.Errorf("update profile, get existing for %s: %s", clientID, err)
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	merged := params.MergeOver(base)
	if err := merged.Validate(); err != nil {
		log.Tracef("update profile, invalid data for %s: %s", clientID, err)
		http.Error(w, "invalid profile data", http.StatusBadRequest)
		return
	}

	updated, err := handler.repo.Upsert(ctx, merged)
	if err != nil {
		log.Errorf("failed to upsert profile for %s: %s", clientID, err)
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterProfileUpdates.Inc()

	updatedJson, err := json.Marshal(updated)
	if err != nil {
		log.Errorf("marshal updated profile: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("profile updated for client %s", clientID)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, updatedJson)
}

func (handler *Handler) HandleBMI(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.bmi")
	defer span.End()

	clientID, err := handler.resolver.Resolve(ctx, w, r)
	if err != nil {
		log.Errorf("get bmi, resolve client id: %s", err)
		http.Error(w, "failed to calculate BMI", http.StatusInternalServerError)
		return
	}

	p, err := handler.repo.Get(ctx, clientID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get bmi, get profile for %s: %s", clientID, err)
		http.Error(w, "failed to calculate BMI", http.StatusInternalServerError)
		return
	}

	result := bmi.Calculate(p.Height, p.Weight)
	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("marshal bmi result: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resultJson)
}

func (handler *Handler) HandleWalkingRecommendation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.walkingRecommendation")
	defer span.End()

	clientID, err := handler.resolver.Resolve(ctx, w, r)
	if err != nil {
		log.Errorf("walking recommendation, resolve client id: %s", err)
		http.Error(w, "failed to generate walking recommendation", http.StatusInternalServerError)
		return
	}

	recommendation := bmi.DefaultWalkingPlan()
	p, err := handler.repo.Get(ctx, clientID)
	switch {
	case err == nil:
		recommendation = bmi.WalkingPlan(bmi.Calculate(p.Height, p.Weight).Category)
	case errors.Is(err, ErrProfileNotFound):
		// no profile yet, the default plan applies
	default:
		log.Errorf("walking recommendation, get profile for %s: %s", clientID, err)
		http.Error(w, "failed to generate walking recommendation", http.StatusInternalServerError)
		return
	}

	recommendationJson, err := json.Marshal(recommendation)
	if err != nil {
		log.Errorf("marshal walking recommendation: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, recommendationJson)
}
