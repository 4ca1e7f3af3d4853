// Package palace is a typed client for the royal-palace open API on
// heritage.go.kr: structure listings per palace and per-structure
// detail records. It shares the transport and error taxonomy of the
// heritage package.
package palace

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/joseonspace/kheritage-go/heritage"
	"github.com/joseonspace/kheritage-go/internal/config"
	"github.com/joseonspace/kheritage-go/transport"
)

const (
	endpointList   = "heri/gungDetail/gogungListOpenApi.do"
	endpointDetail = "heri/gungDetail/gogungDetailOpenApi.do"
)

// Code identifies one of the royal palaces (gung_number).
type Code string

const (
	Gyeongbokgung   Code = "1" // 경복궁
	Changdeokgung   Code = "2" // 창덕궁
	Changgyeonggung Code = "3" // 창경궁
	Deoksugung      Code = "4" // 덕수궁
	Jongmyo         Code = "5" // 종묘
)

var codeNames = map[Code]string{
	Gyeongbokgung:   "경복궁",
	Changdeokgung:   "창덕궁",
	Changgyeonggung: "창경궁",
	Deoksugung:      "덕수궁",
	Jongmyo:         "종묘",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return fmt.Sprintf("%s (%s)", name, string(c))
	}
	return string(c)
}

// Client is the entry point for palace operations.
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

// WithLogger enables request logging through the given logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = &l }
}

// WithFetcher replaces the transport entirely; used by tests.
func WithFetcher(f transport.Fetcher) Option {
	return func(o *options) { o.fetcher = f }
}

// NewClient builds a Client targeting the live palace endpoints unless
// overridden.
func NewClient(opts ...Option) *Client {
	cfg := config.Load()
	o := options{
		baseURL: cfg.PalaceBaseURL,
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

// Search lists the structures of one palace. A single round trip.
func (c *Client) Search(ctx context.Context, code Code) ([]Structure, error) {
	if _, ok := codeNames[code]; !ok {
		return nil, &heritage.InvalidParameterError{
			Param:  "gung_number",
			Reason: fmt.Sprintf("unknown palace code %q", string(code)),
		}
	}

	params := url.Values{"gung_number": []string{string(code)}}
	body, err := c.fetch.Fetch(ctx, endpointList, params)
	if err != nil {
		return nil, fmt.Errorf("palace search: %w", err)
	}
	return parseStructureList(body)
}

// Detail fetches the descriptive record of one structure, keyed by its
// serial number, palace code and detail code.
func (c *Client) Detail(ctx context.Context, structure Structure) (*StructureDetail, error) {
	if structure.SerialNumber == "" {
		return nil, &heritage.InvalidParameterError{
			Param:  "serial_number",
			Reason: "structure has no serial number",
		}
	}
	if structure.DetailCode == "" {
		return nil, &heritage.InvalidParameterError{
			Param:  "detail_code",
			Reason: "structure has no detail code",
		}
	}

	params := url.Values{
		"serial_number": []string{structure.SerialNumber},
		"gung_number":   []string{string(structure.Palace)},
		"detail_code":   []string{structure.DetailCode},
	}
	body, err := c.fetch.Fetch(ctx, endpointDetail, params)
	if err != nil {
		return nil, fmt.Errorf("palace detail: %w", err)
	}
	return parseStructureDetail(body, structure)
}
