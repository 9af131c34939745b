// Package serpapi queries the SerpAPI Google engine for organic web results.
package serpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://serpapi.com"
	defaultEngine  = "google"
	defaultNum     = 5
)

// Client performs SERP searches.
type Client interface {
	Search(ctx context.Context, query string) (Payload, error)
}

// Result is one organic search hit.
type Result struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Payload is the tagged search outcome: either Results or Error is set,
// never both. It is forwarded opaquely to the reasoning call, so an
// API-reported error travels as data rather than as a Go error.
type Payload struct {
	Results []Result `json:"results,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// OK reports whether the payload carries results rather than an error.
func (p Payload) OK() bool { return p.Error == "" }

// ErrPayload wraps an error message as a Payload.
func ErrPayload(msg string) Payload { return Payload{Error: msg} }

// response is the subset of the SerpAPI body we consume.
type response struct {
	Error          string          `json:"error"`
	OrganicResults []organicResult `json:"organic_results"`
}

type organicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithEngine overrides the default search engine.
func WithEngine(engine string) Option {
	return func(c *httpClient) {
		c.engine = engine
	}
}

// WithNum overrides the number of requested results.
func WithNum(num int) Option {
	return func(c *httpClient) {
		c.num = num
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	engine  string
	num     int
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a SerpAPI client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		engine:  defaultEngine,
		num:     defaultNum,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(2), 2),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Search runs one query. Transport and decode failures return a Go error;
// an error reported inside the API body returns Payload{Error} with a nil
// Go error, because that outcome is data the caller forwards downstream.
func (c *httpClient) Search(ctx context.Context, query string) (Payload, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Payload{}, eris.Wrap(err, "serpapi: rate limit wait")
	}

	params := url.Values{}
	params.Set("engine", c.engine)
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("num", strconv.Itoa(c.num))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search.json?"+params.Encode(), nil)
	if err != nil {
		return Payload{}, eris.Wrap(err, "serpapi: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Payload{}, eris.Wrap(err, "serpapi: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, eris.Wrap(err, "serpapi: read response")
	}

	var result response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return Payload{}, eris.Errorf("serpapi: unexpected response (status %d): %s", resp.StatusCode, string(respBody))
	}

	if result.Error != "" {
		return ErrPayload(result.Error), nil
	}

	results := make([]Result, 0, len(result.OrganicResults))
	for _, r := range result.OrganicResults {
		results = append(results, Result{Name: r.Title, URL: r.Link, Snippet: r.Snippet})
	}

	return Payload{Results: results}, nil
}
