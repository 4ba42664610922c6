package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/camden-git/fleetsysbackend/auth"
	"github.com/camden-git/fleetsysbackend/database"
	"github.com/camden-git/fleetsysbackend/repository"
)

// newTestApp builds the full router over a seeded in-memory database.
func newTestApp(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.InitDB(dsn, log)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	if err := database.Reset(db); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}

	router := NewRouter(App{
		Log:               log,
		Sessions:          auth.NewMemoryStore(),
		Codec:             auth.NewCookieCodec("test-secret"),
		Users:             repository.NewGormUserRepository(db),
		Trucks:            repository.NewGormTruckRepository(db),
		Drivers:           repository.NewGormDriverRepository(db),
		Alerts:            repository.NewGormAlertRepository(db),
		Recordings:        repository.NewGormVideoRecordingRepository(db),
		DB:                sqlDB,
		CORSAllowedOrigin: "http://localhost:5173",
	})
	return router, db
}

// doRequest runs one request through the router. A nil form means no body;
// a nil cookie means an unauthenticated request.
func doRequest(router http.Handler, method, target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// loginAs authenticates a seeded user and returns the session cookie.
func loginAs(t *testing.T, router http.Handler, username string) *http.Cookie {
	t.Helper()

	form := url.Values{"username": {username}, "password": {"password123"}}
	rec := doRequest(router, http.MethodPost, "/login", form, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login as %s returned status %d: %s", username, rec.Code, rec.Body.String())
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	t.Fatalf("login response carries no %s cookie", auth.SessionCookieName)
	return nil
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

func firstErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp APIErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	if len(resp.Errors) == 0 {
		t.Fatalf("error response carries no errors: %s", rec.Body.String())
	}
	return resp.Errors[0].Code
}
