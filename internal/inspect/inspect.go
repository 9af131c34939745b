// Package inspect fetches a candidate URL and extracts lightweight page signals.
package inspect

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 5 * time.Second
	bodyLimit      = 1000

	// Candidate sites routinely reject unknown agents, so the probe
	// presents a desktop browser.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

var (
	titleRe  = regexp.MustCompile(`(?is)<title>(.*?)</title>`)
	descRe   = regexp.MustCompile(`(?i)<meta\s+name=["']description["']\s+content=["'](.*?)["']`)
	h1Re     = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	scriptRe = regexp.MustCompile(`(?is)<script.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style.*?</style>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// Signals are the page-derived verification inputs for one fetch attempt.
// A non-empty Err means the fetch failed and the other fields are empty;
// fetch failure is a degraded signal, never a propagated error.
type Signals struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	H1          string `json:"h1"`
	Body        string `json:"body"`
	Err         string `json:"error,omitempty"`
}

// Failed reports whether the fetch attempt produced no usable signals.
func (s Signals) Failed() bool { return s.Err != "" }

// Text concatenates every extracted signal for keyword classification.
func (s Signals) Text() string {
	return s.Title + " " + s.Description + " " + s.H1 + " " + s.Body
}

// Inspector performs single-page GET probes of candidate websites.
type Inspector struct {
	http *http.Client
}

// Option configures the Inspector.
type Option func(*Inspector)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(i *Inspector) {
		i.http = hc
	}
}

// WithTimeout overrides the per-fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(i *Inspector) {
		i.http.Timeout = d
	}
}

// New creates an Inspector. Certificate verification is disabled on the
// default client: candidate inspection availability is worth more here than
// strict TLS validation, since a bad score is the only consequence.
func New(opts ...Option) *Inspector {
	i := &Inspector{
		http: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
			},
		},
	}
	for _, o := range opts {
		o(i)
	}
	return i
}

// Fetch issues one GET against url and extracts Signals from the markup.
// Every failure mode (timeout, DNS, TLS, non-200, unreadable body) is
// folded into Signals.Err.
func (i *Inspector) Fetch(ctx context.Context, url string) Signals {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Signals{Err: err.Error()}
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := i.http.Do(req)
	if err != nil {
		zap.L().Debug("inspect: fetch failed", zap.String("url", url), zap.Error(err))
		return Signals{Err: err.Error()}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return Signals{Err: fmt.Sprintf("Status %d", resp.StatusCode)}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return Signals{Err: err.Error()}
	}

	return extract(string(raw))
}

// extract pulls title, description meta, first h1, and truncated body text
// out of raw HTML via pattern matching. Deliberately not a full parser:
// these are heuristics over often-broken markup.
func extract(content string) Signals {
	var s Signals

	if m := titleRe.FindStringSubmatch(content); m != nil {
		s.Title = strings.TrimSpace(m[1])
	}
	if m := descRe.FindStringSubmatch(content); m != nil {
		s.Description = strings.TrimSpace(m[1])
	}
	if m := h1Re.FindStringSubmatch(content); m != nil {
		s.H1 = strings.TrimSpace(tagRe.ReplaceAllString(m[1], ""))
	}

	body := scriptRe.ReplaceAllString(content, " ")
	body = styleRe.ReplaceAllString(body, " ")
	body = tagRe.ReplaceAllString(body, " ")
	body = strings.TrimSpace(spaceRe.ReplaceAllString(body, " "))
	if len(body) > bodyLimit {
		body = body[:bodyLimit]
	}
	s.Body = body

	return s
}
