package store

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const clientKey contextKey = "store_client"

// Middleware binds a store client to every inbound request. The client is a
// copy of base authorized with the caller's bearer token, so the store can
// enforce row-level access as that caller. A missing or malformed
// Authorization header is not an error here; the resulting client is
// anonymous and the store rejects privileged operations itself.
//
// The client lives exactly as long as the request and is never shared
// across requests.
func Middleware(base *Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))

			ctx := context.WithValue(c.Request().Context(), clientKey, base.WithToken(token))
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// FromContext retrieves the request-scoped client, or nil outside a request.
func FromContext(ctx context.Context) *Client {
	client, _ := ctx.Value(clientKey).(*Client)
	return client
}

// NewContext returns a context carrying the given client. Intended for tests
// and non-HTTP call sites.
func NewContext(ctx context.Context, client *Client) context.Context {
	return context.WithValue(ctx, clientKey, client)
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
