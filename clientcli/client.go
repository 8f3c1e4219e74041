package clientcli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 1 << 20
)

// Client performs requests against a drills server.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new Client with the given config and options.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	// Apply defaults
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: &Config{
			Endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		},
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	// Apply options
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Endpoint returns the normalized server URL.
func (c *Client) Endpoint() string {
	return c.config.Endpoint
}

// Greet calls /greetings.
func (c *Client) Greet(ctx context.Context, opts GreetOptions) (string, error) {
	q := url.Values{}
	q.Set("name", opts.Name)
	q.Set("race", opts.Race)

	body, err := c.get(ctx, "/greetings", q)
	if err != nil {
		return "", fmt.Errorf("greet: %w", err)
	}
	return string(body), nil
}

// Sum calls /sum and decodes the JSON result.
func (c *Client) Sum(ctx context.Context, opts SumOptions) (*SumResult, error) {
	q := url.Values{}
	q.Set("a", strconv.FormatFloat(opts.A, 'g', -1, 64))
	q.Set("b", strconv.FormatFloat(opts.B, 'g', -1, 64))
	q.Set("format", "json")

	body, err := c.get(ctx, "/sum", q)
	if err != nil {
		return nil, fmt.Errorf("sum: %w", err)
	}

	var result SumResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("sum: decode response: %w", err)
	}
	return &result, nil
}

// Cipher calls /cipher.
func (c *Client) Cipher(ctx context.Context, opts CipherOptions) (*CipherResult, error) {
	if opts.Text == "" {
		return nil, fmt.Errorf("cipher: %w", ErrEmptyText)
	}

	q := url.Values{}
	q.Set("text", opts.Text)
	q.Set("shift", strconv.Itoa(opts.Shift))

	body, err := c.get(ctx, "/cipher", q)
	if err != nil {
		return nil, fmt.Errorf("cipher: %w", err)
	}
	return &CipherResult{
		Text:       opts.Text,
		Shift:      opts.Shift,
		Ciphertext: string(body),
	}, nil
}

// Lotto calls /lotto with the given guesses and decodes the JSON result.
func (c *Client) Lotto(ctx context.Context, opts LottoOptions) (*LottoResult, error) {
	if len(opts.Numbers) == 0 {
		return nil, fmt.Errorf("lotto: %w", ErrNoNumbers)
	}

	q := url.Values{}
	for _, n := range opts.Numbers {
		q.Add("numbers", strconv.Itoa(n))
	}
	q.Set("format", "json")

	body, err := c.get(ctx, "/lotto", q)
	if err != nil {
		return nil, fmt.Errorf("lotto: %w", err)
	}

	var result LottoResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("lotto: decode response: %w", err)
	}
	return &result, nil
}

// Echo calls /echo.
func (c *Client) Echo(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "/echo", nil)
	if err != nil {
		return "", fmt.Errorf("echo: %w", err)
	}
	return string(body), nil
}

// Ping checks that the server answers on its index route.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.get(ctx, "/", nil); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// get performs a GET and returns the body of a 2xx response.
// Any other status is returned as *APIError.
func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	target := c.config.Endpoint + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseServerError(resp.StatusCode, body)
	}

	return body, nil
}

// parseServerError extracts error message from server response.
func parseServerError(statusCode int, body []byte) error {
	return &APIError{
		StatusCode: statusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return "server error: " + strconv.Itoa(e.StatusCode) + " - " + e.Body
}

// Is reports whether target matches this error.
// It matches if target is an *APIError with the same StatusCode.
func (e *APIError) Is(target error) bool {
	var t *APIError
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return t.StatusCode == e.StatusCode
}

// IsBadRequest returns true if the server rejected the input (400).
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}

// Sentinel errors for common API error conditions.
// Use errors.Is() to check for these conditions.
var (
	// ErrBadRequest is returned when the server rejects the query (400).
	// The APIError body holds the validation message.
	ErrBadRequest = &APIError{StatusCode: http.StatusBadRequest}

	// ErrNotFound is returned when the route does not exist (404).
	ErrNotFound = &APIError{StatusCode: http.StatusNotFound}
)
