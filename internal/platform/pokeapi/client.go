package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	RPS        int
	MaxRetries int
	HTTPClient *http.Client
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "pokedex-web/1.0"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RPS <= 0 {
		opts.RPS = 20
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	// copy so the caller's client keeps its own timeout
	httpClient := &http.Client{}
	if opts.HTTPClient != nil {
		*httpClient = *opts.HTTPClient
	}
	httpClient.Timeout = opts.Timeout

	return &Client{
		httpClient: httpClient,
		userAgent:  opts.UserAgent,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(opts.RPS)), opts.RPS),
		maxRetries: opts.MaxRetries,
	}
}

// FetchPage requests the first limit entries of the creature index.
func (c *Client) FetchPage(ctx context.Context, limit int) (*IndexPage, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("fetch page: limit must be positive, got %d", limit)
	}
	u := fmt.Sprintf("%s/pokemon?limit=%d", c.baseURL, limit)

	var res IndexPage
	if err := c.get(ctx, u, &res); err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	if res.Results == nil {
		return nil, fmt.Errorf("fetch page: %w", &MalformedResponseError{URL: u, Err: errors.New("missing results")})
	}
	return &res, nil
}

// FetchDetail requests the full record of one creature. nameOrURL is either
// a name/id or the absolute detail url found in an index entry.
func (c *Client) FetchDetail(ctx context.Context, nameOrURL string) (*Detail, error) {
	u, err := c.detailURL(nameOrURL)
	if err != nil {
		return nil, err
	}

	var res Detail
	if err := c.get(ctx, u, &res); err != nil {
		return nil, fmt.Errorf("fetch detail %s: %w", nameOrURL, err)
	}
	return &res, nil
}

func (c *Client) detailURL(nameOrURL string) (string, error) {
	s := strings.TrimSpace(nameOrURL)
	if s == "" {
		return "", errors.New("fetch detail: empty name")
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s, nil
	}
	return fmt.Sprintf("%s/pokemon/%s", c.baseURL, url.PathEscape(strings.ToLower(s))), nil
}

func (c *Client) get(ctx context.Context, u string, target any) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return &NetworkError{URL: u, Err: ctx.Err()}
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return &NetworkError{URL: u, Err: err}
		}

		retry, err := c.do(ctx, u, target)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	if c.maxRetries == 0 {
		return lastErr
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

// do performs a single attempt and reports whether a failure is retryable.
func (c *Client) do(ctx context.Context, u string, target any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, &NetworkError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return true, &NetworkError{URL: u, StatusCode: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return false, &NetworkError{URL: u, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, &NetworkError{URL: u, Err: err}
	}
	if err := json.Unmarshal(body, target); err != nil {
		return false, &MalformedResponseError{URL: u, Err: err}
	}
	return false, nil
}
