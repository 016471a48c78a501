package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"safety-forms-api/internal/formbuilder"
)

type mockCatalogService struct {
	getCatalogIfModifiedFn func(scope formbuilder.TenantScope, clientLastModified *time.Time) (*GetCatalogResult, error)
}

func (m *mockCatalogService) GetCatalogIfModified(scope formbuilder.TenantScope, clientLastModified *time.Time) (*GetCatalogResult, error) {
	if m.getCatalogIfModifiedFn == nil {
		return nil, nil
	}
	return m.getCatalogIfModifiedFn(scope, clientLastModified)
}

func setupControllerRouter(svc CatalogServiceAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cc := &CatalogController{CatalogService: svc}
	r.GET("/api/forms/catalog", cc.GetCatalog)
	return r
}

func TestParseOptionalTime(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got, err := parseOptionalTime("   ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("rfc3339nano", func(t *testing.T) {
		in := "2026-02-25T10:20:30.123456789Z"
		got, err := parseOptionalTime(in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got == nil {
			t.Fatal("expected time, got nil")
		}
		if got.UTC().Format(time.RFC3339Nano) != in {
			t.Fatalf("got %s want %s", got.UTC().Format(time.RFC3339Nano), in)
		}
	})

	t.Run("unix ms", func(t *testing.T) {
		in := "1708451234567"
		got, err := parseOptionalTime(in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got == nil {
			t.Fatal("expected time, got nil")
		}
		want := time.Unix(0, 1708451234567*int64(time.Millisecond))
		if !got.Equal(want) {
			t.Fatalf("got %v want %v", got, want)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		got, err := parseOptionalTime("bad-time")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if got != nil {
			t.Fatalf("expected nil time, got %v", got)
		}
	})
}

func TestGetCatalog(t *testing.T) {
	t.Run("invalid last_modified", func(t *testing.T) {
		r := setupControllerRouter(&mockCatalogService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/forms/catalog?last_modified=bad", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("service error", func(t *testing.T) {
		svc := &mockCatalogService{
			getCatalogIfModifiedFn: func(formbuilder.TenantScope, *time.Time) (*GetCatalogResult, error) {
				return nil, errors.New("db down")
			},
		}
		r := setupControllerRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/forms/catalog", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("scope from query", func(t *testing.T) {
		var gotScope formbuilder.TenantScope
		svc := &mockCatalogService{
			getCatalogIfModifiedFn: func(scope formbuilder.TenantScope, _ *time.Time) (*GetCatalogResult, error) {
				gotScope = scope
				return &GetCatalogResult{}, nil
			},
		}
		r := setupControllerRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/forms/catalog?company_id=acme", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if gotScope.IsGlobal() {
			t.Fatal("expected company scope")
		}
	})

	t.Run("full catalog", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Second)
		svc := &mockCatalogService{
			getCatalogIfModifiedFn: func(_ formbuilder.TenantScope, lm *time.Time) (*GetCatalogResult, error) {
				if lm != nil {
					t.Fatalf("expected nil client timestamp, got %v", lm)
				}
				return &GetCatalogResult{
					LastModified: now,
					Templates:    []formbuilder.FormTemplate{{FormCode: "daily-01"}},
				}, nil
			},
		}
		r := setupControllerRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/forms/catalog", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if lm := w.Header().Get("Last-Modified"); lm == "" {
			t.Fatal("expected Last-Modified header")
		}

		var resp struct {
			NotModified bool                       `json:"not_modified"`
			Count       int                        `json:"count"`
			Templates   []formbuilder.FormTemplate `json:"templates"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.NotModified || resp.Count != 1 || len(resp.Templates) != 1 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("not modified", func(t *testing.T) {
		now := time.Now().UTC()
		svc := &mockCatalogService{
			getCatalogIfModifiedFn: func(_ formbuilder.TenantScope, lm *time.Time) (*GetCatalogResult, error) {
				if lm == nil {
					t.Fatal("expected a client timestamp")
				}
				return &GetCatalogResult{NotModified: true, LastModified: now}, nil
			},
		}
		r := setupControllerRouter(svc)

		w := httptest.NewRecorder()
		url := "/api/forms/catalog?last_modified=" + now.Format(time.RFC3339)
		req := httptest.NewRequest(http.MethodGet, url, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		var resp struct {
			NotModified bool `json:"not_modified"`
			Templates   []formbuilder.FormTemplate
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !resp.NotModified || len(resp.Templates) != 0 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}
