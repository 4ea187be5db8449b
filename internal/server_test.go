package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/hearthero/internal/clientid"
	"github.com/2beens/hearthero/internal/config"
	"github.com/2beens/hearthero/internal/profile"
	"github.com/2beens/hearthero/internal/telemetry/metrics"
	"github.com/2beens/hearthero/internal/vitals"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServerSetup(t *testing.T) *Server {
	t.Helper()

	// never dialed, public client addresses skip the session store
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	t.Cleanup(func() {
		require.NoError(t, rdb.Close())
	})

	return &Server{
		config: &config.Config{
			Environment:                  "test",
			StorageBackend:               config.StorageBackendMemory,
			VitalsRateLimitAllowedPerMin: 60,
		},
		versionInfo:    "test-version",
		profileRepo:    profile.NewInMemRepo(),
		vitalsRepo:     vitals.NewInMemRepo(),
		redisClient:    rdb,
		resolver:       clientid.NewResolver(rdb, clientid.DefaultTTL),
		metricsManager: metrics.NewTestManager(),
	}
}

func TestServer_routerSetup(t *testing.T) {
	server := testServerSetup(t)
	router := server.routerSetup()

	type routeCase struct {
		method       string
		path         string
		wantStatus   int
		wantContains string
	}
	for _, c := range []routeCase{
		{method: "GET", path: "/", wantStatus: http.StatusOK, wantContains: "I'm OK, thanks ;)"},
		{method: "GET", path: "/version", wantStatus: http.StatusOK, wantContains: "test-version"},
		{method: "GET", path: "/profile", wantStatus: http.StatusNotFound, wantContains: "profile not found"},
		{method: "GET", path: "/bmi", wantStatus: http.StatusNotFound, wantContains: "profile not found"},
		{method: "GET", path: "/walking-recommendation", wantStatus: http.StatusOK, wantContains: "dailySteps"},
		{method: "GET", path: "/health-metrics/today", wantStatus: http.StatusOK, wantContains: "heartRate"},
		{method: "GET", path: "/exercises", wantStatus: http.StatusOK, wantContains: "Brisk Walking"},
		{method: "GET", path: "/foods", wantStatus: http.StatusOK, wantContains: "Salmon"},
		{method: "GET", path: "/heart-tips", wantStatus: http.StatusOK, wantContains: "Start Walking Gradually"},
		{method: "GET", path: "/heart-rate-references", wantStatus: http.StatusOK, wantContains: "ageGroup"},
		{method: "GET", path: "/no-such-route", wantStatus: http.StatusNotFound},
	} {
		req := httptest.NewRequest(c.method, c.path, nil)
		req.Header.Set("X-Real-Ip", "89.125.3.14")
		req.Header.Set("User-Agent", "test-agent")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, c.wantStatus, rr.Code, "%s %s", c.method, c.path)
		if c.wantContains != "" {
			assert.Contains(t, rr.Body.String(), c.wantContains, "%s %s", c.method, c.path)
		}
	}
}

func TestServer_routerSetup_corsForbidden(t *testing.T) {
	server := testServerSetup(t)
	router := server.routerSetup()

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("X-Real-Ip", "89.125.3.14")
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("User-Agent", "Mozilla/5.0")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
