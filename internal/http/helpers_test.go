package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"strconv"
	"testing"

	"portfolio-backend-go/internal/config"
	"portfolio-backend-go/internal/db"
	"portfolio-backend-go/internal/migrations"
	"portfolio-backend-go/internal/services"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "correct horse battery"
)

type testEnv struct {
	t       *testing.T
	server  *Server
	handler http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database, err := db.Open("sqlite://" + filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := migrations.Apply(database); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cfg := config.Config{
		JWTSecret:        "test-secret",
		JWTIssuer:        "portfolio-test",
		AccessTTLSeconds: 3600,
		MediaStoragePath: t.TempDir(),
		MediaURL:         "/media/",
		MetricsDiskPath:  "/",
		BlogPageSize:     2,
	}
	server := NewServer(database, cfg)
	return &testEnv{t: t, server: server, handler: server.Router()}
}

func (e *testEnv) ctx() context.Context {
	return context.Background()
}

func (e *testEnv) do(method, target string, body interface{}, token string) *httptest.ResponseRecorder {
	e.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			e.t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) adminToken() string {
	e.t.Helper()
	if _, err := services.EnsureDefaultAdmin(e.ctx(), e.server.DB, e.server.Tokens, testAdminUser, "admin@example.com", testAdminPassword); err != nil {
		e.t.Fatalf("seed admin: %v", err)
	}
	rec := e.do(http.MethodPost, "/api/admin/auth/login", map[string]string{"username": testAdminUser, "password": testAdminPassword}, "")
	if rec.Code != http.StatusOK {
		e.t.Fatalf("login status = %d body = %s", rec.Code, rec.Body.String())
	}
	var body TokenResponse
	decodeBody(e.t, rec, &body)
	return body.AccessToken
}

// decodeBody resets dest first; json.Unmarshal merges into maps it finds in a reused slice.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	target := reflect.ValueOf(dest).Elem()
	target.Set(reflect.Zero(target.Type()))
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d, body = %s", rec.Code, want, rec.Body.String())
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
