package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func testBaseClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(Config{URL: "http://store.local", APIKey: "anon-key"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func invokeWithHeader(t *testing.T, base *Client, authorization string) *Client {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var scoped *Client
	handler := Middleware(base)(func(c echo.Context) error {
		scoped = FromContext(c.Request().Context())
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if scoped == nil {
		t.Fatal("no client injected into request context")
	}
	return scoped
}

func TestMiddlewareBindsBearerToken(t *testing.T) {
	base := testBaseClient(t)
	scoped := invokeWithHeader(t, base, "Bearer user-jwt")

	if scoped.token != "user-jwt" {
		t.Errorf("token = %q, want user-jwt", scoped.token)
	}
	if base.token != "anon-key" {
		t.Errorf("base client mutated: token = %q", base.token)
	}
}

func TestMiddlewareMissingHeaderIsAnonymous(t *testing.T) {
	scoped := invokeWithHeader(t, testBaseClient(t), "")
	if scoped.token != "anon-key" {
		t.Errorf("token = %q, want anon-key", scoped.token)
	}
}

func TestMiddlewareMalformedHeaderIsAnonymous(t *testing.T) {
	for _, header := range []string{"user-jwt", "Basic dXNlcjpwdw==", "Bearer"} {
		scoped := invokeWithHeader(t, testBaseClient(t), header)
		if scoped.token != "anon-key" {
			t.Errorf("header %q: token = %q, want anon-key", header, scoped.token)
		}
	}
}

func TestMiddlewareCaseInsensitiveScheme(t *testing.T) {
	scoped := invokeWithHeader(t, testBaseClient(t), "bearer user-jwt")
	if scoped.token != "user-jwt" {
		t.Errorf("token = %q, want user-jwt", scoped.token)
	}
}

func TestFromContextOutsideRequest(t *testing.T) {
	if FromContext(context.Background()) != nil {
		t.Error("expected nil client outside a request")
	}
}

func TestNewContextRoundTrip(t *testing.T) {
	base := testBaseClient(t)
	ctx := NewContext(context.Background(), base)
	if FromContext(ctx) != base {
		t.Error("NewContext/FromContext mismatch")
	}
}
