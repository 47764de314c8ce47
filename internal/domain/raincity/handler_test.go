package raincity

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/juliangorge/fmriel-api/internal/platform/store"
)

func newRainCityEcho(t *testing.T, status int, response string) (*echo.Echo, *[]byte) {
	t.Helper()
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	base, err := store.New(store.Config{URL: srv.URL, APIKey: "anon"})
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}

	e := echo.New()
	NewHandler(NewService(NewRepository(base))).RegisterRoutes(e.Group("/api"))
	return e, &body
}

func TestCreateDefaultsIsActiveTrue(t *testing.T) {
	e, sent := newRainCityEcho(t, http.StatusCreated, `[{"id":1,"name":"San Jose","is_active":true}]`)

	req := httptest.NewRequest(http.MethodPost, "/api/rainCities", strings.NewReader(`{"name":"San Jose"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Name     string `json:"name"`
		IsActive *bool  `json:"is_active"`
	}
	if err := json.Unmarshal(*sent, &payload); err != nil {
		t.Fatalf("unmarshal sent body %q: %v", *sent, err)
	}
	if payload.IsActive == nil || !*payload.IsActive {
		t.Errorf("is_active = %v, want true", payload.IsActive)
	}
}

func TestCreateKeepsExplicitIsActive(t *testing.T) {
	e, sent := newRainCityEcho(t, http.StatusCreated, `[{"id":1,"name":"x","is_active":false}]`)

	req := httptest.NewRequest(http.MethodPost, "/api/rainCities", strings.NewReader(`{"name":"x","is_active":false}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}

	var payload struct {
		IsActive *bool `json:"is_active"`
	}
	if err := json.Unmarshal(*sent, &payload); err != nil {
		t.Fatalf("unmarshal sent body: %v", err)
	}
	if payload.IsActive == nil || *payload.IsActive {
		t.Errorf("is_active = %v, want false", payload.IsActive)
	}
}

func TestCreateRequiresName(t *testing.T) {
	e, _ := newRainCityEcho(t, http.StatusCreated, `[{"id":1}]`)

	req := httptest.NewRequest(http.MethodPost, "/api/rainCities", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "name should not be empty") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRoutesMountedUnderRainCities(t *testing.T) {
	e, _ := newRainCityEcho(t, http.StatusOK, `[{"id":1,"name":"x","is_active":true}]`)

	req := httptest.NewRequest(http.MethodGet, "/api/rainCities", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"name":"x"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}
