package deathreport

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/juliangorge/fmriel-api/internal/platform/store"
)

func newReportEcho(t *testing.T, status int, response string) (*echo.Echo, *url.Values) {
	t.Helper()
	var query url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
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
	return e, &query
}

func TestSearchMatchesNameOrSurname(t *testing.T) {
	e, query := newReportEcho(t, http.StatusOK, `[{"id":1,"name":"Maria","surname":"Perez","age":75,"date_of_death":"2024-12-01"}]`)

	req := httptest.NewRequest(http.MethodGet, "/api/death_reports/search?query=per", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := query.Get("or"); got != "(name.ilike.*per*,surname.ilike.*per*)" {
		t.Errorf("or filter = %q", got)
	}
	if !strings.Contains(rec.Body.String(), `"Perez"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestSearchEmptyResultIsEmptyArray(t *testing.T) {
	e, _ := newReportEcho(t, http.StatusOK, `[]`)

	req := httptest.NewRequest(http.MethodGet, "/api/death_reports/search?query=zzz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestSearchSanitizesFilterDelimiters(t *testing.T) {
	e, query := newReportEcho(t, http.StatusOK, `[]`)

	req := httptest.NewRequest(http.MethodGet, "/api/death_reports/search?query="+url.QueryEscape("a,b)x"), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	got := query.Get("or")
	if strings.Contains(got[1:len(got)-1], "(") || strings.Contains(got[1:len(got)-1], ")") {
		t.Errorf("unsanitized parens in filter: %q", got)
	}
	if strings.Count(got, ",") != 1 {
		t.Errorf("unsanitized comma in filter: %q", got)
	}
}

func TestCreateRequiresCoreFields(t *testing.T) {
	e, _ := newReportEcho(t, http.StatusCreated, `[{"id":1}]`)

	req := httptest.NewRequest(http.MethodPost, "/api/death_reports", strings.NewReader(`{"name":"Maria"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"surname should not be empty", "age should not be empty", "date_of_death should not be empty"} {
		if !strings.Contains(body, want) {
			t.Errorf("missing %q in %q", want, body)
		}
	}
}

func TestCreateRejectsBadPhotoURL(t *testing.T) {
	e, _ := newReportEcho(t, http.StatusCreated, `[{"id":1}]`)

	payload := `{"name":"Maria","surname":"Perez","age":75,"date_of_death":"2024-12-01","photo_url":"not-a-url"}`
	req := httptest.NewRequest(http.MethodPost, "/api/death_reports", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "photo_url must be a URL address") {
		t.Errorf("body = %q", rec.Body.String())
	}
}
