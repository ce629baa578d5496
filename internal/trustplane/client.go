package trustplane

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/arenaforge/duel-server/internal/apierr"
)

// DefaultCallTimeout is the per-call deadline applied to outbound
// service-to-service requests per the concurrency model's bound on internal
// RPC latency (roughly 3-10s).
const DefaultCallTimeout = 8 * time.Second

// Client is an authenticated HTTP client for calling another internal
// service across the trust plane. Every request carries this service's own
// name and credential and is bounded by a short per-call deadline.
type Client struct {
	httpClient *http.Client
	baseURL    string
	callerName string
	credential string
	timeout    time.Duration
}

// NewClient builds a Client that identifies itself as callerName and
// authenticates with credential when calling baseURL.
func NewClient(baseURL, callerName, credential string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		callerName: callerName,
		credential: credential,
		timeout:    DefaultCallTimeout,
	}
}

// WithTimeout returns a copy of the client using the given per-call timeout
// instead of DefaultCallTimeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	clone := *c
	clone.timeout = d
	return &clone
}

// PostJSON sends a JSON-encoded request and decodes a JSON response into
// out, if out is non-nil. A non-2xx response is surfaced as an error
// carrying the response status and body.
func (c *Client) PostJSON(ctx context.Context, path string, in, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

// GetJSON sends a GET request and decodes a JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(CallerHeader, c.callerName)
	req.Header.Set(CredentialHeader, c.credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var b apierr.Body
		if json.Unmarshal(raw, &b) == nil && b.Kind != "" {
			return apierr.New(apierr.Kind(b.Kind), b.Error).WithExtra(b.Extra)
		}
		return apierr.New(apierr.Internal, "internal call "+method+" "+path+" failed: status "+resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
