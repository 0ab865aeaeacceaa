// Package api implements the REST client the engine drives the backend
// with. One method per endpoint; the session scope is forwarded unchanged on
// every call; failures come back as typed apperror values, never panics.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"jaego/internal/core/apperror"
	"jaego/internal/core/dateutil"
	"jaego/internal/core/scope"
	"jaego/internal/domain/catalog"
	"jaego/internal/domain/ledger"
	"jaego/internal/domain/stock"
)

// DefaultTimeout bounds every request. A timed-out call surfaces as a
// transport error and stays retryable by the operator.
const DefaultTimeout = 15 * time.Second

// Config holds client configuration.
type Config struct {
	// BaseURL is the backend root, e.g. "http://localhost:8080".
	BaseURL string

	// Scope selects the backend data partition for this session.
	Scope string

	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client talks to the backend REST contract.
type Client struct {
	baseURL string
	scope   string
	http    *http.Client
}

// New creates a configured client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, apperror.NewValidation("base URL is required")
	}
	if !scope.Valid(cfg.Scope) {
		return nil, apperror.NewValidation("invalid scope").WithDetail("scope", cfg.Scope)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if httpClient.Timeout == 0 {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient.Timeout = timeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		scope:   cfg.Scope,
		http:    httpClient,
	}, nil
}

// Scope returns the session's partition selector.
func (c *Client) Scope() string { return c.scope }

// Products fetches the product catalog, optionally limited to a category.
func (c *Client) Products(ctx context.Context, category catalog.Category) ([]catalog.Product, error) {
	q := url.Values{}
	if category != catalog.CategoryAll {
		q.Set("category", string(category))
	}
	var out []catalog.Product
	if err := c.do(ctx, http.MethodGet, "/api/v1/catalog/products", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Counterparties fetches the counterparty catalog.
func (c *Client) Counterparties(ctx context.Context, category catalog.Category) ([]catalog.Counterparty, error) {
	q := url.Values{}
	if category != catalog.CategoryAll {
		q.Set("category", string(category))
	}
	var out []catalog.Counterparty
	if err := c.do(ctx, http.MethodGet, "/api/v1/catalog/counterparties", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecords fetches ledger records of the kind inside the window.
func (c *Client) ListRecords(ctx context.Context, kind ledger.Kind, window dateutil.Window) ([]ledger.Record, error) {
	q := url.Values{}
	q.Set("from", string(window.From))
	q.Set("to", string(window.To))
	var out []ledger.Record
	if err := c.do(ctx, http.MethodGet, c.ledgerPath(kind, "list"), q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InsertRecord creates a record and returns the server-assigned id.
func (c *Client) InsertRecord(ctx context.Context, kind ledger.Kind, rec ledger.NewRecord) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, c.ledgerPath(kind, "insert"), nil, rec, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// UpdateRecord applies a quantity/note patch.
func (c *Client) UpdateRecord(ctx context.Context, kind ledger.Kind, patch ledger.Patch) error {
	return c.do(ctx, http.MethodPut, c.ledgerPath(kind, "update"), nil, patch, nil)
}

// DeleteRecord removes a record by id.
func (c *Client) DeleteRecord(ctx context.Context, kind ledger.Kind, id string) error {
	q := url.Values{}
	q.Set("id", id)
	return c.do(ctx, http.MethodDelete, c.ledgerPath(kind, "delete"), q, nil, nil)
}

// StockLines fetches the net-quantity rollup, optionally per category.
func (c *Client) StockLines(ctx context.Context, category catalog.Category) ([]stock.Line, error) {
	q := url.Values{}
	if category != catalog.CategoryAll {
		q.Set("category", string(category))
	}
	var out []stock.Line
	if err := c.do(ctx, http.MethodGet, "/api/v1/stock/list", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ledgerPath(kind ledger.Kind, op string) string {
	return fmt.Sprintf("/api/v1/ledger/%s/%s", kind, op)
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do executes one request. scope is always attached; non-2xx responses are
// decoded into the backend's error envelope and mapped onto the taxonomy.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("scope", c.scope)

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return apperror.NewInternal(fmt.Errorf("encode request: %w", err))
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+query.Encode(), reqBody)
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("build request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.NewTransport("backend unreachable", 0).WithCause(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NewTransport("read response", resp.StatusCode).WithCause(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperror.NewTransport("malformed response", resp.StatusCode).WithCause(err)
		}
	}
	return nil
}

// mapError converts a non-2xx response into a typed error, keeping the
// backend-provided message when there is one.
func (c *Client) mapError(status int, raw []byte) error {
	var eb errorBody
	_ = json.Unmarshal(raw, &eb)

	message := eb.Message
	if message == "" {
		message = fmt.Sprintf("backend rejected request (status %d)", status)
	}

	if status == http.StatusNotFound || eb.Code == apperror.CodeNotFound {
		return &apperror.AppError{
			Code:       apperror.CodeNotFound,
			Message:    message,
			HTTPStatus: http.StatusNotFound,
		}
	}

	return apperror.NewTransport(message, status)
}
