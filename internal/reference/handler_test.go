package reference

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRouter() *mux.Router {
	router := mux.NewRouter()
	NewHandler(NewCatalog()).SetupRoutes(router)
	return router
}

func getJson(t *testing.T, router *mux.Router, path string, target any) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), target))
}

func TestHandler_Exercises(t *testing.T) {
	router := newTestRouter()

	var got []Exercise
	getJson(t, router, "/exercises", &got)
	require.Len(t, got, 9)
	assert.Equal(t, "Brisk Walking", got[0].Name)
	assert.Equal(t, 5, got[0].HeartHealthRating)
	assert.Equal(t, "Elliptical Training", got[8].Name)

	// second request is served from cache and identical
	var again []Exercise
	getJson(t, router, "/exercises", &again)
	assert.Equal(t, got, again)
}

func TestHandler_Foods(t *testing.T) {
	router := newTestRouter()

	var got []Food
	getJson(t, router, "/foods", &got)
	require.Len(t, got, 10)
	assert.Equal(t, "Salmon", got[0].Name)
	assert.Equal(t, "22g", got[0].Nutrients.Protein)
	for _, f := range got {
		assert.True(t, f.HeartHealthy, f.Name)
	}
}

func TestHandler_HeartTips(t *testing.T) {
	router := newTestRouter()

	var got []HeartPatientTip
	getJson(t, router, "/heart-tips", &got)
	require.Len(t, got, 18)
	assert.Equal(t, "Start Walking Gradually", got[0].Title)

	importances := map[string]bool{}
	for _, tip := range got {
		importances[tip.Importance] = true
	}
	assert.Equal(t, map[string]bool{"critical": true, "important": true, "helpful": true}, importances)
}

func TestHandler_HeartRateReferences(t *testing.T) {
	router := newTestRouter()

	var got []HeartRateReference
	getJson(t, router, "/heart-rate-references", &got)
	require.Len(t, got, 13)
	assert.Equal(t, "Newborns (0-1 month)", got[0].AgeGroup)
	assert.Equal(t, "Seniors (65+ years)", got[12].AgeGroup)

	for _, ref := range got {
		assert.Less(t, ref.RestingMin, ref.RestingMax, ref.AgeGroup)
		assert.Less(t, ref.ModerateMin, ref.ModerateMax, ref.AgeGroup)
		assert.LessOrEqual(t, ref.ModerateMax, ref.MaxHeartRate, ref.AgeGroup)
	}
}
