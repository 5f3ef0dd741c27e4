// Package bankapi is the HTTP client for the back-office REST API that owns
// clients (customers) and their accounts.
package bankapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"bankfront/internal/domain/account"
	"bankfront/internal/domain/client"
)

const (
	customersPath        = "/customers"
	accountsPath         = "/accounts"
	accountsByClientPath = "/accounts/customer/"
)

// API is the set of calls the front-end makes against the back office.
type API interface {
	ListClients(ctx context.Context) ([]client.Client, error)
	CreateClient(ctx context.Context, params client.CreateParams) (*client.Client, error)
	GetClient(ctx context.Context, id int64) (*client.Client, error)
	ListAccountsByClient(ctx context.Context, clientID int64) ([]account.Account, error)
	CreateAccount(ctx context.Context, params account.CreateParams) (*account.Account, error)
	GetAccount(ctx context.Context, id int64) (*account.Account, error)
}

// Client handles communication with the back-office API
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

// Ensure Client implements API
var _ API = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default instrumented HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each request. Zero leaves the HTTP client's own
// timeout alone. A client passed to WithHTTPClient is copied, not modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// ListClients fetches every client
func (c *Client) ListClients(ctx context.Context) ([]client.Client, error) {
	clients := []client.Client{}
	if err := c.do(ctx, http.MethodGet, customersPath, nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// CreateClient submits a new client
func (c *Client) CreateClient(ctx context.Context, params client.CreateParams) (*client.Client, error) {
	var created client.Client
	if err := c.do(ctx, http.MethodPost, customersPath, params, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetClient fetches one client by ID
func (c *Client) GetClient(ctx context.Context, id int64) (*client.Client, error) {
	var found client.Client
	if err := c.do(ctx, http.MethodGet, customersPath+"/"+strconv.FormatInt(id, 10), nil, &found); err != nil {
		return nil, err
	}
	return &found, nil
}

// ListAccountsByClient fetches the accounts owned by a client
func (c *Client) ListAccountsByClient(ctx context.Context, clientID int64) ([]account.Account, error) {
	accounts := []account.Account{}
	if err := c.do(ctx, http.MethodGet, accountsByClientPath+strconv.FormatInt(clientID, 10), nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateAccount opens a new account
func (c *Client) CreateAccount(ctx context.Context, params account.CreateParams) (*account.Account, error) {
	var created account.Account
	if err := c.do(ctx, http.MethodPost, accountsPath, params, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetAccount fetches one account by ID
func (c *Client) GetAccount(ctx context.Context, id int64) (*account.Account, error) {
	var found account.Account
	if err := c.do(ctx, http.MethodGet, accountsPath+"/"+strconv.FormatInt(id, 10), nil, &found); err != nil {
		return nil, err
	}
	return &found, nil
}

// do performs one request. Any failure comes back as *RequestError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	log := zerolog.Ctx(ctx)
	start := time.Now()

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return newTransportError(method, path, fmt.Errorf("failed to encode request: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return newTransportError(method, path, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("method", method).Str("path", path).Msg("bank api request failed")
		return newTransportError(method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTransportError(method, path, fmt.Errorf("failed to read response body: %w", err))
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("bank api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(method, path, resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &RequestError{
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("failed to decode response: %v", err),
			Err:     err,
		}
	}
	return nil
}
