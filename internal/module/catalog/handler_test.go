package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupCatalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewModule(NewHandler()).RegisterRoutes(api)
	return r
}

func TestCatalog_ListEveryModule(t *testing.T) {
	r := setupCatalogRouter(t)

	for _, name := range Names {
		for _, path := range []string{"/api/v1/" + name, "/api/v1/" + name + "/"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("%s: expected status 200, got %d", path, w.Code)
				continue
			}

			var resp ListResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Errorf("%s: failed to unmarshal response: %v", path, err)
				continue
			}
			if !resp.Success {
				t.Errorf("%s: expected success to be true", path)
			}
			if resp.Module != name {
				t.Errorf("%s: expected module %q, got %q", path, name, resp.Module)
			}
			if resp.Total != 0 {
				t.Errorf("%s: expected total 0, got %d", path, resp.Total)
			}
			if resp.Data == nil || len(resp.Data) != 0 {
				t.Errorf("%s: expected empty data array, got %v", path, resp.Data)
			}
		}
	}
}

func TestCatalog_ListSerializesEmptyArray(t *testing.T) {
	r := setupCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/siem", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// data must serialize as [] rather than null.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if string(raw["data"]) != "[]" {
		t.Errorf("expected data to serialize as [], got %s", raw["data"])
	}
}

func TestCatalog_HealthEveryModule(t *testing.T) {
	r := setupCatalogRouter(t)

	for _, name := range Names {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/"+name+"/health", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", name, w.Code)
			continue
		}

		var resp HealthResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Errorf("%s: failed to unmarshal response: %v", name, err)
			continue
		}
		if resp.Module != name {
			t.Errorf("expected module %q, got %q", name, resp.Module)
		}
		if resp.Status != "operational" {
			t.Errorf("%s: expected status operational, got %q", name, resp.Status)
		}
		if resp.Version != "1.0.0" {
			t.Errorf("%s: expected version 1.0.0, got %q", name, resp.Version)
		}
	}
}

func TestCatalog_UnknownModuleIs404(t *testing.T) {
	r := setupCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown-module", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestCatalog_NamesFixedSize(t *testing.T) {
	if len(Names) != 15 {
		t.Fatalf("catalog must serve exactly 15 modules, got %d", len(Names))
	}
	seen := make(map[string]bool, len(Names))
	for _, name := range Names {
		if seen[name] {
			t.Errorf("duplicate module name %q", name)
		}
		seen[name] = true
	}
}

func TestCatalog_NewModuleNilHandlerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil handler")
		}
	}()
	NewModule(nil)
}
