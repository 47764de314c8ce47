// Package store provides the client for the remote PostgREST data store.
// Every request carries the project API key plus the caller's bearer token,
// so row-level access control happens in the store itself.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config holds client configuration.
type Config struct {
	URL        string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is a PostgREST API client. The zero value is not usable; use New.
type Client struct {
	baseURL    string
	apiKey     string
	token      string
	httpClient *http.Client
}

// New creates a new store client authenticated with the project API key.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("store: URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("store: APIKey is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		token:      cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// WithToken returns a copy of the client whose requests are authorized as the
// holder of the given bearer token. An empty token keeps the API key as the
// bearer, which the store treats as an anonymous caller. The copy shares the
// underlying http.Client; the receiver is never mutated.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	if token != "" {
		clone.token = token
	}
	return &clone
}

// From starts a query builder for a table.
func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table}
}

// Error is an error reported by the data store.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string { return e.Message }

// Query builds a single PostgREST request against one table.
type Query struct {
	client  *Client
	table   string
	columns string
	filters []filter
	orders  []string
	limit   int
	offset  int
	ranged  bool
	single  bool
	strict  bool
}

type filter struct {
	key   string
	value string
}

// Select specifies the columns (or embedded resources) to return.
func (q *Query) Select(columns string) *Query {
	q.columns = columns
	return q
}

// Eq adds an equality filter.
func (q *Query) Eq(column string, value any) *Query {
	q.filters = append(q.filters, filter{column, fmt.Sprintf("eq.%v", value)})
	return q
}

// Gte adds a greater-than-or-equal filter.
func (q *Query) Gte(column string, value any) *Query {
	q.filters = append(q.filters, filter{column, fmt.Sprintf("gte.%v", value)})
	return q
}

// Lte adds a less-than-or-equal filter.
func (q *Query) Lte(column string, value any) *Query {
	q.filters = append(q.filters, filter{column, fmt.Sprintf("lte.%v", value)})
	return q
}

// ILike adds a case-insensitive pattern filter. Use * as the wildcard.
func (q *Query) ILike(column, pattern string) *Query {
	q.filters = append(q.filters, filter{column, "ilike." + pattern})
	return q
}

// Or adds a disjunction of raw filter conditions, e.g.
// "name.ilike.*foo*,surname.ilike.*foo*".
func (q *Query) Or(conditions string) *Query {
	q.filters = append(q.filters, filter{"or", "(" + conditions + ")"})
	return q
}

// Order adds an ORDER BY clause.
func (q *Query) Order(column string, ascending bool) *Query {
	dir := "asc"
	if !ascending {
		dir = "desc"
	}
	q.orders = append(q.orders, column+"."+dir)
	return q
}

// Range limits the result to rows [from, to], inclusive on both ends.
func (q *Query) Range(from, to int) *Query {
	q.offset = from
	q.limit = to - from + 1
	q.ranged = true
	return q
}

// Single expects exactly one row; zero rows is an error.
func (q *Query) Single() *Query {
	q.single = true
	q.strict = true
	return q
}

// MaybeSingle expects at most one row; zero rows yields a nil body without
// an error.
func (q *Query) MaybeSingle() *Query {
	q.single = true
	q.strict = false
	return q
}

// Get executes a SELECT and returns the raw JSON body.
func (q *Query) Get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.url(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	q.client.setHeaders(req)
	if q.single {
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	}
	return q.do(req)
}

// Insert executes an INSERT and returns the inserted representation.
func (q *Query) Insert(ctx context.Context, body any) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, q.url(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	q.client.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")
	return q.do(req)
}

// Update executes an UPDATE constrained by the query's filters and returns
// the updated representation.
func (q *Query) Update(ctx context.Context, body any) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, q.url(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	q.client.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")
	return q.do(req)
}

// Delete executes a DELETE constrained by the query's filters and returns
// the deleted representation.
func (q *Query) Delete(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, q.url(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	q.client.setHeaders(req)
	req.Header.Set("Prefer", "return=representation")
	return q.do(req)
}

func (q *Query) url() string {
	u := q.client.baseURL + "/rest/v1/" + url.PathEscape(q.table)

	params := url.Values{}
	if q.columns != "" {
		params.Set("select", q.columns)
	}
	for _, f := range q.filters {
		params.Add(f.key, f.value)
	}
	if len(q.orders) > 0 {
		params.Set("order", strings.Join(q.orders, ","))
	}
	if q.ranged {
		params.Set("offset", strconv.Itoa(q.offset))
		params.Set("limit", strconv.Itoa(q.limit))
	}
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (q *Query) do(req *http.Request) ([]byte, error) {
	data, err := q.client.do(req)
	if err != nil {
		var serr *Error
		// MaybeSingle: zero matching rows is not an error.
		if q.single && !q.strict && errors.As(err, &serr) && serr.StatusCode == http.StatusNotAcceptable {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.token)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	body := buf.Bytes()

	if resp.StatusCode >= 400 {
		return nil, decodeError(resp.StatusCode, body)
	}
	return body, nil
}

// decodeError extracts the store's error message from a failure response.
func decodeError(status int, body []byte) *Error {
	serr := &Error{StatusCode: status, Message: fmt.Sprintf("status %d", status)}
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		serr.Code = payload.Code
		if payload.Message != "" {
			serr.Message = payload.Message
		} else if payload.Error != "" {
			serr.Message = payload.Error
		}
	}
	return serr
}
