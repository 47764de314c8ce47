package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return FromContext(e.NewContext(req, rec))
}

func TestDefaults(t *testing.T) {
	p := paramsFor(t, "")
	if p.Page != 1 || p.Limit != 10 || p.SortBy != "id" || !p.Ascending {
		t.Errorf("unexpected defaults: %+v", p)
	}
	if p.Offset() != 0 {
		t.Errorf("offset = %d, want 0", p.Offset())
	}
}

func TestOffsetMath(t *testing.T) {
	p := paramsFor(t, "page=2&limit=5")
	if p.Offset() != 5 {
		t.Errorf("offset = %d, want 5", p.Offset())
	}
	p = paramsFor(t, "page=4&limit=25")
	if p.Offset() != 75 {
		t.Errorf("offset = %d, want 75", p.Offset())
	}
}

func TestSortInversion(t *testing.T) {
	if p := paramsFor(t, "desc=true"); p.Ascending {
		t.Error("desc=true should yield descending order")
	}
	if p := paramsFor(t, "desc=false"); !p.Ascending {
		t.Error("desc=false should yield ascending order")
	}
	if p := paramsFor(t, ""); !p.Ascending {
		t.Error("omitted desc should yield ascending order")
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	p := paramsFor(t, "page=-3&limit=abc&desc=banana")
	if p.Page != 1 || p.Limit != 10 || !p.Ascending {
		t.Errorf("unexpected fallback: %+v", p)
	}
}

func TestLimitCap(t *testing.T) {
	p := paramsFor(t, "limit=5000")
	if p.Limit != MaxLimit {
		t.Errorf("limit = %d, want %d", p.Limit, MaxLimit)
	}
}
