package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bguard/internal/controllers"
	"bguard/internal/models"
	"bguard/internal/store"
	"bguard/internal/structures"
	"bguard/internal/testutil"
)

// --- minimal mocks for routes test ---

type routeTestGuard struct{}

func (m *routeTestGuard) Mount() models.MountResult     { return models.MountResult{} }
func (m *routeTestGuard) State() models.UIState         { return models.StateIdle }
func (m *routeTestGuard) LastDecision() models.Decision { return models.DecisionNone }
func (m *routeTestGuard) StartFresh() error             { return nil }
func (m *routeTestGuard) RestoreBackup() error          { return nil }
func (m *routeTestGuard) DismissReminder() error        { return nil }
func (m *routeTestGuard) BackupNow() error              { return nil }

type routeTestFingerprint struct{}

func (m *routeTestFingerprint) Signals() (models.Signals, bool)      { return models.Signals{}, false }
func (m *routeTestFingerprint) Generate() (models.Fingerprint, bool) { return models.Fingerprint{}, false }
func (m *routeTestFingerprint) Save() error                          { return nil }

func newRoutesTestController() *controllers.ApiController {
	return controllers.NewApiController(
		&testutil.MockLogger{},
		&routeTestGuard{},
		&routeTestFingerprint{},
		store.NewMemoryStore(),
		testutil.NewMockCache(),
	)
}

func TestInitRoutes_RegistersAllRoutes(t *testing.T) {
	router := InitRoutes(newRoutesTestController(), &structures.Config{})
	routes := router.GetRoutes()

	require.Len(t, routes, 11)

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}

	assert.Contains(t, urls, "/check")
	assert.Contains(t, urls, "/state")
	assert.Contains(t, urls, "/fingerprint")
	assert.Contains(t, urls, "/fingerprint/save")
	assert.Contains(t, urls, "/loss/start-fresh")
	assert.Contains(t, urls, "/loss/restore")
	assert.Contains(t, urls, "/reminder/dismiss")
	assert.Contains(t, urls, "/reminder/backup")
	assert.Contains(t, urls, "/store")
	assert.Contains(t, urls, "/store/set")
	assert.Contains(t, urls, "/store/delete")
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	router := InitRoutes(newRoutesTestController(), &structures.Config{})

	mux := http.NewServeMux()
	for _, r := range router.GetRoutes() {
		mux.Handle(r.Url, r.Handler)
	}

	// POST /check with GET should fail
	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// GET /state with POST should fail
	req = httptest.NewRequest(http.MethodPost, "/state", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// PUT /store/set with POST should fail
	req = httptest.NewRequest(http.MethodPost, "/store/set", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
