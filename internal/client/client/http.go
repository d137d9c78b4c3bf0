package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/craftstore/internal/common"
	"github.com/dmitrijs2005/craftstore/internal/logging"
	"github.com/google/uuid"
)

var _ Client = (*HTTPClient)(nil)

// RequestIDHeader correlates client and server log lines.
const RequestIDHeader = "X-Request-ID"

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

// NewHTTPClient returns a client for the API at baseURL. A zero timeout
// leaves requests unbounded.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

type request struct {
	method      string
	path        string
	token       string
	body        io.Reader
	contentType string
}

func jsonRequest(method, path, token string, payload any) (request, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return request{}, fmt.Errorf("encode request: %w", err)
	}
	return request{method: method, path: path, token: token, body: bytes.NewReader(b), contentType: "application/json"}, nil
}

// errorBody covers the two spellings the backend uses for messages.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e errorBody) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// do sends r and decodes a 2xx body into out (when out is non-nil and the
// body is not empty). Non-2xx answers become *Failure.
func (c *HTTPClient) do(ctx context.Context, r request, out any) error {
	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, r.body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.token != "" {
		req.Header.Set(common.AuthorizationHeader, "Bearer "+r.token)
	}

	log := c.logger.With("request_id", reqID, "method", r.method, "path", r.path)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(ctx, "request failed", "err", err)
		return fmt.Errorf("%s %s: %w: %w", r.method, r.path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(ctx, "read response failed", "status", resp.StatusCode, "err", err)
		return fmt.Errorf("%s %s: %w: %w", r.method, r.path, ErrUnavailable, err)
	}
	log.Debug(ctx, "response received", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		return &Failure{Status: resp.StatusCode, Message: eb.text()}
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s %s: %w: %w", r.method, r.path, ErrMalformedResponse, err)
	}
	return nil
}

func resourcePath(collection string, id int64) string {
	return fmt.Sprintf("%s/%d", collection, id)
}
