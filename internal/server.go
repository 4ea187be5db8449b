package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/hearthero/internal/clientid"
	"github.com/2beens/hearthero/internal/config"
	"github.com/2beens/hearthero/internal/db"
	"github.com/2beens/hearthero/internal/middleware"
	"github.com/2beens/hearthero/internal/misc"
	"github.com/2beens/hearthero/internal/profile"
	"github.com/2beens/hearthero/internal/reference"
	"github.com/2beens/hearthero/internal/telemetry/metrics"
	"github.com/2beens/hearthero/internal/telemetry/tracing"
	"github.com/2beens/hearthero/internal/vitals"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type profileRepo interface {
	Get(ctx context.Context, clientID string) (*profile.Profile, error)
	Upsert(ctx context.Context, p profile.Profile) (*profile.Profile, error)
	Ensure(ctx context.Context, clientID string) (*profile.Profile, error)
}

type vitalsRepo interface {
	Latest(ctx context.Context, clientID string) (*vitals.Metric, error)
	Insert(ctx context.Context, m vitals.Metric) (*vitals.Metric, error)
	Update(ctx context.Context, m *vitals.Metric) error
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool // nil for the in-memory backend
	profileRepo profileRepo
	vitalsRepo  vitalsRepo

	redisClient *redis.Client
	resolver    *clientid.Resolver

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	var additionalCollectors []prometheus.Collector
	var dbPool *pgxpool.Pool
	var profRepo profileRepo
	var vitRepo vitalsRepo

	switch params.Config.StorageBackend {
	case config.StorageBackendPostgres:
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         params.Config.PostgresHost,
			DBPort:         params.Config.PostgresPort,
			DBName:         params.Config.PostgresDBName,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		dbPool = pool
		profRepo = profile.NewRepo(pool)
		vitRepo = vitals.NewRepo(pool)
		additionalCollectors = append(additionalCollectors, pgxpoolprometheus.NewCollector(
			pool,
			map[string]string{"db_name": params.Config.PostgresDBName},
		))
	case config.StorageBackendMemory:
		log.Warnln("using in-memory storage, all data is lost on restart")
		profRepo = profile.NewInMemRepo()
		vitRepo = vitals.NewInMemRepo()
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", params.Config.StorageBackend)
	}

	promRegistry := metrics.SetupPrometheus(additionalCollectors...)
	metricsManager := metrics.NewManager("hearthero", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "hearthero-backend")
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		versionInfo: params.VersionInfo,
		dbPool:      dbPool,
		profileRepo: profRepo,
		vitalsRepo:  vitRepo,

		redisClient: rdb,
		resolver:    clientid.NewResolver(rdb, clientid.DefaultTTL),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	miscHandler := misc.NewHandler(s.versionInfo)
	miscHandler.SetupRoutes(r)

	profileHandler := profile.NewHandler(s.profileRepo, s.resolver, s.metricsManager)
	profileHandler.SetupRoutes(r)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	vitalsHandler := vitals.NewHandler(
		vitals.NewService(s.vitalsRepo, s.profileRepo),
		s.resolver,
		s.metricsManager,
	)
	vitalsHandler.SetupRoutes(r, reqRateLimiter, s.config.VitalsRateLimitAllowedPerMin)

	referenceHandler := reference.NewHandler(reference.NewCatalog())
	referenceHandler.SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
