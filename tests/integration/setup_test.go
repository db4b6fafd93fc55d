package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bookkeeper/internal/auth"
	"bookkeeper/internal/config"
	"bookkeeper/internal/database"
	"bookkeeper/internal/logger"
	"bookkeeper/internal/server"
)

const testAdminToken = "integration-admin-token"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

// setupApp creates the full application stack over a migrated sqlite file in
// a per-test temp directory.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	dbConfig := &database.Config{Driver: database.DriverSQLite, Path: filepath.Join(t.TempDir(), "data.db")}
	manager, err := database.NewManager(dbConfig)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = manager.Close() })

	if err := manager.RunMigrations(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router := server.NewRouter(server.Deps{
		DB:     manager.DB(),
		Driver: dbConfig.Driver,
		Config: &config.Config{
			Env:              "test",
			JWTSecret:        "integration-secret",
			JWTExpirationDur: time.Hour,
			AdminToken:       testAdminToken,
		},
		Hasher: &auth.BcryptHasher{Cost: bcrypt.MinCost},
	})

	return &testApp{DB: manager.DB(), Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// admin makes a GET request carrying the given admin token.
func (app *testApp) admin(path, adminToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	if adminToken != "" {
		req.Header.Set("X-Admin-Token", adminToken)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseJSONArray parses the response body into a slice of maps.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var result []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// expectStatus fails the test unless rec carries the wanted status.
func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

// expectErrorCode fails the test unless the body's error code matches.
func expectErrorCode(t *testing.T, rec *httptest.ResponseRecorder, code string) {
	t.Helper()
	if got := parseJSON(t, rec)["error"]; got != code {
		t.Errorf("expected error %s, got %v (body %s)", code, got, rec.Body.String())
	}
}

// registerUser registers a new user and returns the bearer token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"company_name":"Acme"}`, email, password)
	rec := app.request(http.MethodPost, "/auth/register", body, "")
	expectStatus(t, rec, http.StatusCreated)
	result := parseJSON(t, rec)
	user := result["user"].(map[string]any)
	return result["token"].(string), user["id"].(string)
}

// loginUser logs in and returns the bearer token.
func (app *testApp) loginUser(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request(http.MethodPost, "/auth/login", body, "")
	expectStatus(t, rec, http.StatusOK)
	return parseJSON(t, rec)["token"].(string)
}

// createTransaction posts a transaction and returns its decoded body.
func (app *testApp) createTransaction(t *testing.T, token, body string) map[string]any {
	t.Helper()
	rec := app.request(http.MethodPost, "/transactions", body, token)
	expectStatus(t, rec, http.StatusCreated)
	return parseJSON(t, rec)
}

// createDebt posts a debt entry and returns its decoded body.
func (app *testApp) createDebt(t *testing.T, token, body string) map[string]any {
	t.Helper()
	rec := app.request(http.MethodPost, "/debts", body, token)
	expectStatus(t, rec, http.StatusCreated)
	return parseJSON(t, rec)
}
