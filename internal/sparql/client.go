// Package sparql provides an HTTP client for a SPARQL 1.1 endpoint
// (Apache Jena Fuseki). It executes read queries, boolean (ASK) queries,
// and updates, and parses application/sparql-results+json responses.
package sparql

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	queryTimeout    = 15 * time.Second
	maxResponseSize = 10 << 20 // 10 MB
)

// Client is the abstract graph store collaborator. Implementations must
// return an empty row slice (never an error) on zero-result queries.
type Client interface {
	Select(ctx context.Context, query string) ([]Binding, error)
	Ask(ctx context.Context, query string) (bool, error)
	Update(ctx context.Context, update string) error
}

// HTTPClient talks to a Fuseki dataset over HTTP.
type HTTPClient struct {
	queryURL   string
	updateURL  string
	username   string
	password   string
	httpClient *http.Client
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithBasicAuth sets credentials sent with every request.
func WithBasicAuth(username, password string) Option {
	return func(c *HTTPClient) {
		c.username = username
		c.password = password
	}
}

// WithHTTPClient sets a custom underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

// NewHTTPClient creates a client for the given dataset endpoint
// (e.g. "http://localhost:3030/movies"). Queries go to <endpoint>/query,
// updates to <endpoint>/update.
func NewHTTPClient(endpoint string, opts ...Option) *HTTPClient {
	base := strings.TrimRight(endpoint, "/")
	c := &HTTPClient{
		queryURL:   base + "/query",
		updateURL:  base + "/update",
		httpClient: &http.Client{Timeout: queryTimeout},
	}
	for _, o := range opts {
		o(c)
	}

	return c
}

// Select executes a SELECT query and returns one Binding per result row.
func (c *HTTPClient) Select(ctx context.Context, query string) ([]Binding, error) {
	var result selectResponse
	if err := c.query(ctx, query, &result); err != nil {
		return nil, err
	}

	rows := make([]Binding, 0, len(result.Results.Bindings))
	rows = append(rows, result.Results.Bindings...)

	return rows, nil
}

// Ask executes an ASK query and returns its boolean result.
func (c *HTTPClient) Ask(ctx context.Context, query string) (bool, error) {
	var result askResponse
	if err := c.query(ctx, query, &result); err != nil {
		return false, err
	}

	return result.Boolean, nil
}

// Update executes a SPARQL update (INSERT DATA / DELETE DATA).
func (c *HTTPClient) Update(ctx context.Context, update string) error {
	form := url.Values{"update": {update}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.updateURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating update request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling update endpoint: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("update endpoint returned status %d", resp.StatusCode)
	}

	return nil
}

// query POSTs a form-encoded query and decodes the JSON result into out.
func (c *HTTPClient) query(ctx context.Context, query string, out any) error {
	form := url.Values{"query": {query}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.queryURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating query request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/sparql-results+json")
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling query endpoint: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("query endpoint returned status %d", resp.StatusCode)
	}

	limited := io.LimitReader(resp.Body, maxResponseSize)
	if err := json.NewDecoder(limited).Decode(out); err != nil {
		return fmt.Errorf("decoding query response: %w", err)
	}

	return nil
}

func (c *HTTPClient) setAuth(req *http.Request) {
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
}

// drainAndClose consumes the remaining body so the connection can be reused.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 1<<20))
	body.Close()
}
