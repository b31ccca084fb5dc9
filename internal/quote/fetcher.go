package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=quote_test -destination=mock_http_client_test.go -source=fetcher.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config is the explicit configuration of a Fetcher.
type Config struct {
	// BaseURL is the root address of the stock-data service. Required.
	BaseURL string
}

// Fetcher retrieves single quotes from {BaseURL}/stock-data/{symbol}.
type Fetcher struct {
	// baseURL is the base URL for the service.
	baseURL string
	// httpClient is the HTTP client.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// logger receives one diagnostic line per failed FetchQuote.
	logger *log.Logger
}

// Option is a configuration option for the Fetcher.
type Option func(*Fetcher)

// WithBaseURL overrides the base URL.
func WithBaseURL(baseURL string) Option {
	return func(f *Fetcher) {
		f.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(f *Fetcher) {
		f.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) Option {
	return func(f *Fetcher) {
		for key, values := range header {
			for _, value := range values {
				f.header.Add(key, value)
			}
		}
	}
}

// WithLogger sets the logger used for failure diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFetcher creates a new Fetcher. It fails with ErrMissingBaseURL when no
// base URL is configured, before any network activity.
func NewFetcher(cfg Config, options ...Option) (*Fetcher, error) {
	var fetcher = &Fetcher{
		baseURL:    cfg.BaseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		logger:     log.Default(),
	}
	for _, option := range options {
		option(fetcher)
	}
	if strings.TrimSpace(fetcher.baseURL) == "" {
		return nil, ErrMissingBaseURL
	}
	return fetcher, nil
}

// Fetch performs GET {BaseURL}/stock-data/{symbol} and decodes the body.
// The symbol is not validated; it becomes the last path segment verbatim.
func (f *Fetcher) Fetch(ctx context.Context, symbol string, opts ...Option) (Quote, error) {
	var override = &Fetcher{
		baseURL:    f.baseURL,
		httpClient: f.httpClient,
		header:     f.header.Clone(),
		logger:     f.logger,
	}
	for _, opt := range opts {
		opt(override)
	}

	endpoint, err := stockDataURL(override.baseURL, symbol)
	if err != nil {
		return Quote{}, &requestError{err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return Quote{}, &requestError{err}
	}
	req.Header = override.header
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	res, err := override.httpClient.Do(req)
	if err != nil {
		return Quote{}, &transportError{err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 2<<10))
		return Quote{}, &StatusError{
			Method: http.MethodGet,
			URL:    endpoint,
			Code:   res.StatusCode,
			Body:   strings.Join(strings.Fields(string(b)), " "),
		}
	}

	var q *Quote
	if err := json.NewDecoder(res.Body).Decode(&q); err != nil {
		return Quote{}, &decodeError{err}
	}
	if q == nil {
		return Quote{}, &decodeError{errors.New("empty response body")}
	}
	return *q, nil
}

// FetchQuote is Fetch with every failure recovered: the error is logged and
// returned inside the Result instead of being propagated.
func (f *Fetcher) FetchQuote(ctx context.Context, symbol string) Result {
	q, err := f.Fetch(ctx, symbol)
	if err != nil {
		f.logger.Printf("Error fetching stock data: %v", err)
		return Result{Kind: Classify(err), Err: err}
	}
	return Result{Quote: q}
}

// stockDataURL joins base and symbol without cleaning the path, so "..",
// "?" or an empty symbol reach the server unchanged.
func stockDataURL(base, symbol string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/stock-data/" + symbol
	u.RawPath = ""
	return u.String(), nil
}
