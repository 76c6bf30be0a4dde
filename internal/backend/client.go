// Package backend issues single-shot REST calls against the downstream
// microservices and maps their error answers onto the mediation taxonomy.
// There are no retries; every call is one request, one response.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/tunebridge/tunebridge/internal/mediation"
	"github.com/tunebridge/tunebridge/internal/metrics"
)

const (
	// ClientTimeout is the total request timeout.
	ClientTimeout = 30 * time.Second
	// DialTimeout is the connection timeout.
	DialTimeout = 10 * time.Second
	// TLSHandshakeTimeout is the TLS negotiation timeout.
	TLSHandshakeTimeout = 10 * time.Second
	// ResponseHeaderTimeout is time to wait for response headers.
	ResponseHeaderTimeout = 15 * time.Second
)

// Client is the shared transport under the per-domain clients. All
// downstream services hang off one base URI.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	metrics metrics.Recorder
}

// New creates a backend client for the given base URI.
func New(baseURL string, logger *slog.Logger, recorder metrics.Recorder) *Client {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    newHTTPClient(),
		logger:  logger.With("component", "backend"),
		metrics: recorder,
	}
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: ClientTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   TLSHandshakeTimeout,
			ResponseHeaderTimeout: ResponseHeaderTimeout,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// Ping reports whether the downstream base URI answers at all. Any HTTP
// status counts as reachable; only transport failures count as down.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ping backend: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return nil
}

// doJSON issues the request and decodes a JSON success body into out.
// A nil out discards the body. A nil body sends no payload.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, header http.Header, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s payload: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	applyHeader(req, header)

	resp, err := c.do(req, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return decodeError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// doText issues the request and returns the raw success body.
func (c *Client) doText(ctx context.Context, method, path string, header http.Header) (string, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	applyHeader(req, header)

	resp, err := c.do(req, path)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return "", decodeError(resp)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s %s response: %w", method, path, err)
	}
	return string(body), nil
}

func (c *Client) do(req *http.Request, path string) (*http.Response, error) {
	domain := domainOf(path)
	start := time.Now()
	resp, err := c.http.Do(req)
	c.metrics.ObserveBackendDuration(domain, time.Since(start))
	if err != nil {
		c.metrics.IncBackendRequest(domain, "error")
		c.logger.Warn("backend request failed", "method", req.Method, "path", path, "error", err)
		return nil, fmt.Errorf("%s %s: %w", req.Method, path, err)
	}
	if success(resp.StatusCode) {
		c.metrics.IncBackendRequest(domain, "success")
	} else {
		c.metrics.IncBackendRequest(domain, "error")
	}
	return resp, nil
}

func success(status int) bool {
	return status >= 200 && status <= 299
}

func applyHeader(req *http.Request, header http.Header) {
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
}

// authHeader forwards the caller's raw credential downstream unchanged.
func authHeader(credential string) http.Header {
	if credential == "" {
		return nil
	}
	return http.Header{"Authorization": []string{credential}}
}

// domainOf extracts the downstream domain from the first path segment.
func domainOf(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(trimmed, "/?"); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}

// decodeError maps a non-success answer onto the mediation taxonomy.
// The services answer errors as {"error": "..."}; a body that does not
// parse propagates as an unclassified failure.
func decodeError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read error body: %w", err)
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("parse error body (status %d): %w", resp.StatusCode, err)
	}
	return mediation.Backend(resp.StatusCode, http.StatusText(resp.StatusCode), payload.Error)
}
