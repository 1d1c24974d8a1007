package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/chinmay1088/raydium-go/logging"
)

// Client handles calls to the Raydium v3 API. All façades share one
// executor, so a Client is safe for concurrent use.
type Client struct {
	exec *executor

	Pools *Pools
	Farms *Farms
	Mints *Mints
	IDO   *IDO
	Main  *Main
}

// settings collects Option values before the executor is built.
type settings struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     ErrorLogger
}

// Option configures a Client.
type Option func(*settings)

// WithBaseURL overrides the API host. Trailing slashes are removed.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.baseURL = baseURL
	}
}

// WithNetwork selects the API host for mainnet or devnet.
func WithNetwork(network string) Option {
	return func(s *settings) {
		s.baseURL = HostForNetwork(network)
	}
}

// WithHTTPClient uses a pre-configured HTTP client. Its timeout is left
// untouched.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *settings) {
		s.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of the HTTP client created when none is
// supplied with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

// WithLogger sets the sink for failed-call diagnostics.
func WithLogger(logger ErrorLogger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// NewClient creates a new API client
func NewClient(opts ...Option) *Client {
	exec := newExecutor(opts...)

	return &Client{
		exec:  exec,
		Pools: &Pools{exec: exec},
		Farms: &Farms{exec: exec},
		Mints: &Mints{exec: exec},
		IDO:   &IDO{exec: exec},
		Main:  &Main{exec: exec},
	}
}

// BaseURL returns the normalized API host the client talks to.
func (c *Client) BaseURL() string {
	return c.exec.baseURL
}

func newExecutor(opts ...Option) *executor {
	s := &settings{
		baseURL: MainnetAPIHost,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.baseURL == "" {
		s.baseURL = MainnetAPIHost
	}
	restyLog := restyLoggerFor(s.logger)
	if s.logger == nil {
		s.logger = NewZerologLogger(*logging.Default())
	}

	var rc *resty.Client
	if s.httpClient != nil {
		rc = resty.NewWithClient(s.httpClient)
	} else {
		rc = resty.New().SetTimeout(s.timeout)
	}
	rc.SetLogger(restyLog)

	return &executor{
		baseURL: normalizeBaseURL(s.baseURL),
		http:    rc,
		logger:  s.logger,
	}
}

// normalizeBaseURL strips trailing slashes so endpoint paths, which start
// with "/", never produce "//".
func normalizeBaseURL(baseURL string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/")
}
