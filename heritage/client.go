// Package heritage is a typed client for the Cultural Heritage
// Administration's open XML API: heritage search, per-item detail,
// image and video lookups, and the event calendar. All query codes are
// closed enumerations, so a request can only ever carry documented
// wire values.
package heritage

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/joseonspace/kheritage-go/internal/config"
	"github.com/joseonspace/kheritage-go/transport"
)

const (
	endpointSearch = "SearchKindOpenapiList.do"
	endpointDetail = "SearchKindOpenapiDt.do"
	endpointImages = "SearchImageOpenapi.do"
	endpointVideos = "SearchVideoOpenapi.do"
	endpointEvents = "openapi/selectEventListOpenapi.do"
)

// Client is the entry point for heritage operations. The zero-config
// NewClient() talks to the live API; options override the base URL,
// timeout or the whole transport for tests.
type Client struct {
	fetch transport.Fetcher
}

type options struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zerolog.Logger
	fetcher    transport.Fetcher
}

// Option configures a Client.
type Option func(*options)

// WithBaseURL overrides the API root.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithTimeout overrides the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) { o.httpClient = h }
}

// WithLogging enables request logging to stderr at the configured
// level. The default client is silent.
func WithLogging() Option {
	return func(o *options) {
		l := zerolog.New(os.Stderr).With().Timestamp().Logger()
		o.logger = &l
	}
}

// WithLogger enables request logging through the given logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = &l }
}

// WithFetcher replaces the transport entirely; used by tests.
func WithFetcher(f transport.Fetcher) Option {
	return func(o *options) { o.fetcher = f }
}

// NewClient builds a Client. Defaults come from the environment (see
// internal/config); zero configuration targets the live endpoints.
func NewClient(opts ...Option) *Client {
	cfg := config.Load()
	o := options{
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.fetcher == nil {
		topts := []transport.Option{transport.WithTimeout(o.timeout)}
		if o.httpClient != nil {
			topts = append(topts, transport.WithHTTPClient(o.httpClient))
		}
		if o.logger != nil {
			topts = append(topts, transport.WithLogger(o.logger.Level(cfg.LogLevel)))
		}
		o.fetcher = transport.New(o.baseURL, topts...)
	}

	return &Client{fetch: o.fetcher}
}
