// Package transport is the HTTP boundary of the client. It performs a
// single synchronous GET per call against a fixed base URL and hands the
// decoded response body back to the schema-aware parsers.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultTimeout applies when no per-client timeout is configured.
const DefaultTimeout = 30 * time.Second

// Fetcher is the read surface the facade packages depend on. The
// concrete *Client satisfies it; tests substitute counting doubles.
type Fetcher interface {
	// Fetch issues one GET against endpoint with the given parameters
	// and returns the response body as UTF-8 text.
	Fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error)

	// URL renders the fully encoded request URL without issuing it.
	URL(endpoint string, params url.Values) string
}

// Client issues GET requests against a single base URL. It holds no
// per-call state and is safe for concurrent use.
type Client struct {
	base   string
	http   *http.Client
	logger zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying http.Client entirely.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithLogger enables request logging. The default logger discards
// everything so the library stays quiet inside host applications.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a Client rooted at base. base must carry a trailing slash
// if its endpoints are path-relative; it is used by string concatenation
// the same way the remote API documents its endpoints.
func New(base string, opts ...Option) *Client {
	c := &Client{
		base:   base,
		http:   &http.Client{Timeout: DefaultTimeout},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL renders the encoded request URL for endpoint and params.
func (c *Client) URL(endpoint string, params url.Values) string {
	u := c.base + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// Fetch performs one GET request. Network failures and non-2xx statuses
// surface as *Error; there are no retries.
func (c *Client) Fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	requestURL := c.URL(endpoint, params)
	requestID := uuid.New().String()
	start := time.Now()

	c.logger.Debug().
		Str("request_id", requestID).
		Str("url", requestURL).
		Msg("API request started")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		kind := ConnectionFailed
		if isTimeout(err) {
			kind = Timeout
		}
		c.logger.Error().
			Str("request_id", requestID).
			Str("url", requestURL).
			Dur("duration_ms", time.Since(start)).
			Err(err).
			Msg("API request failed")
		return nil, &Error{Kind: kind, URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		c.logger.Error().
			Str("request_id", requestID).
			Str("url", requestURL).
			Int("status_code", resp.StatusCode).
			Dur("duration_ms", time.Since(start)).
			Msg("API request failed")
		return nil, &Error{Kind: HTTPStatus, Status: resp.StatusCode, URL: requestURL}
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, &Error{Kind: ConnectionFailed, URL: requestURL, Err: err}
	}

	c.logger.Info().
		Str("request_id", requestID).
		Str("url", requestURL).
		Int("status_code", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration_ms", time.Since(start)).
		Msg("API request completed")

	return body, nil
}

// readBody decodes the response body to UTF-8. Government endpoints
// occasionally serve EUC-KR; the charset parameter of the Content-Type
// header decides.
func readBody(resp *http.Response) ([]byte, error) {
	reader := io.Reader(resp.Body)

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if _, params, err := mime.ParseMediaType(ct); err == nil {
			if cs := params["charset"]; cs != "" && !strings.EqualFold(cs, "utf-8") {
				enc, err := htmlindex.Get(cs)
				if err != nil {
					return nil, fmt.Errorf("unsupported charset %q: %w", cs, err)
				}
				reader = enc.NewDecoder().Reader(reader)
			}
		}
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func isTimeout(err error) bool {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
