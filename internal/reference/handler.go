package reference

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/hearthero/internal/telemetry/tracing"
	"github.com/2beens/hearthero/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const catalogCacheExpire = 0 // static data, entries never expire

type catalog interface {
	Exercises() []Exercise
	Foods() []Food
	HeartTips() []HeartPatientTip
	HeartRateReferences() []HeartRateReference
}

// Handler serves the reference catalogs. Responses are marshaled once and
// kept in an in-process cache, the data behind them is static.
type Handler struct {
	catalog catalog
	cache   *freecache.Cache
}

func NewHandler(catalog catalog) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		catalog: catalog,
		cache:   freecache.NewCache(1 * megabyte),
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/exercises", handler.HandleExercises).Methods("GET", "OPTIONS").Name("exercises")
	router.HandleFunc("/foods", handler.HandleFoods).Methods("GET", "OPTIONS").Name("foods")
	router.HandleFunc("/heart-tips", handler.HandleHeartTips).Methods("GET", "OPTIONS").Name("heart-tips")
	router.HandleFunc("/heart-rate-references", handler.HandleHeartRateReferences).Methods("GET", "OPTIONS").Name("heart-rate-references")
}

func (handler *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.reference.exercises")
	defer span.End()
	handler.serveCatalog(w, "exercises", func() any { return handler.catalog.Exercises() })
}

func (handler *Handler) HandleFoods(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.reference.foods")
	defer span.End()
	handler.serveCatalog(w, "foods", func() any { return handler.catalog.Foods() })
}

func (handler *Handler) HandleHeartTips(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.reference.heartTips")
	defer span.End()
	handler.serveCatalog(w, "heart-tips", func() any { return handler.catalog.HeartTips() })
}

func (handler *Handler) HandleHeartRateReferences(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.reference.heartRateReferences")
	defer span.End()
	handler.serveCatalog(w, "heart-rate-references", func() any { return handler.catalog.HeartRateReferences() })
}

func (handler *Handler) serveCatalog(w http.ResponseWriter, cacheKey string, get func() any) {
	if cached, err := handler.cache.Get([]byte(cacheKey)); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	dataJson, err := json.Marshal(get())
	if err != nil {
		log.Errorf("marshal %s catalog: %s", cacheKey, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set([]byte(cacheKey), dataJson, catalogCacheExpire); err != nil {
		log.Warnf("cache %s catalog: %s", cacheKey, err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, dataJson)
}
