package leadform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"hersalon/pkg/types"
)

// ErrRejected means the endpoint answered with a non-2xx status.
var ErrRejected = errors.New("application rejected by endpoint")

// HTTPSubmitter posts applications as JSON to a fixed endpoint.
type HTTPSubmitter struct {
	client    *http.Client
	endpoint  string
	keyHeader string
	key       string
}

type HTTPSubmitterOption func(*HTTPSubmitter)

// WithAPIKey sends key in header on every request.
func WithAPIKey(header, key string) HTTPSubmitterOption {
	return func(s *HTTPSubmitter) {
		s.keyHeader = header
		s.key = key
	}
}

func WithHTTPClient(client *http.Client) HTTPSubmitterOption {
	return func(s *HTTPSubmitter) {
		s.client = client
	}
}

// WithTimeout bounds each request. Zero leaves it to the network stack.
func WithTimeout(d time.Duration) HTTPSubmitterOption {
	return func(s *HTTPSubmitter) {
		s.client = &http.Client{Transport: s.client.Transport, Timeout: d}
	}
}

func NewHTTPSubmitter(endpoint string, opts ...HTTPSubmitterOption) (*HTTPSubmitter, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse apply endpoint: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("apply endpoint must be http or https, got %q", endpoint)
	}

	if u.Host == "" {
		return nil, fmt.Errorf("apply endpoint has no host: %q", endpoint)
	}

	s := &HTTPSubmitter{
		client:   &http.Client{},
		endpoint: u.String(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *HTTPSubmitter) Endpoint() string {
	return s.endpoint
}

func (s *HTTPSubmitter) Submit(ctx context.Context, req types.ApplicationRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal application: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build application request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if s.keyHeader != "" && s.key != "" {
		httpReq.Header.Set(s.keyHeader, s.key)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("post application: %w", err)
	}
	defer resp.Body.Close()

	// The body is never read, only drained so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}

	return nil
}
