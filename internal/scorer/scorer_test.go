package scorer

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeTransport serves a canned HTML response for any host, letting tests
// exercise real-looking domains without the network.
type fakeTransport struct {
	status int
	html   string
	err    error
}

func (f fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(strings.NewReader(f.html)),
		Header:     http.Header{"Content-Type": []string{"text/html"}},
		Request:    req,
	}, nil
}

func newScorer(t fakeTransport) *CandidateScorer {
	inspector := newFakeInspector(t)
	return New(inspector, DefaultConfig())
}

func TestVerify_BadURL(t *testing.T) {
	cs := newScorer(fakeTransport{status: 200})
	ctx := context.Background()

	for _, bad := range []string{"", "no-dot", "has space.com"} {
		cand := cs.Verify(ctx, bad, "ACME")
		assert.Zero(t, cand.Score)
		assert.Equal(t, "Bad URL", cand.Reason)
	}
}

func TestVerify_BlockedDomain(t *testing.T) {
	cs := newScorer(fakeTransport{status: 200, html: "<title>Acme Corp</title>"})
	cand := cs.Verify(context.Background(), "https://www.linkedin.com/company/acme", "ACME")
	assert.InDelta(t, 0.1, cand.Score, 1e-9)
	assert.Equal(t, "Blocked", cand.Reason)
}

func TestVerify_ThirdPartyDomain(t *testing.T) {
	cs := newScorer(fakeTransport{status: 200})
	cand := cs.Verify(context.Background(), "https://pitchbook.com/profiles/acme", "ACME")
	assert.InDelta(t, 0.2, cand.Score, 1e-9)
	assert.Equal(t, "Third Party", cand.Reason)
}

func TestVerify_ParkedOverridesEverything(t *testing.T) {
	cs := newScorer(fakeTransport{
		status: 200,
		html:   `<title>acmecorp.com - Domain For Sale</title>`,
	})
	cand := cs.Verify(context.Background(), "https://acmecorp.com", "ACME CORP")
	assert.Zero(t, cand.Score)
	assert.Equal(t, "Parked", cand.Reason)
}

func TestVerify_ExactDomainWithLivePage(t *testing.T) {
	cs := newScorer(fakeTransport{
		status: 200,
		html:   `<title>Acme Corp</title><body>industrial automation equipment</body>`,
	})
	cand := cs.Verify(context.Background(), "https://www.acmecorp.com", "ACME CORP")
	assert.InDelta(t, 1.0, cand.Score, 1e-9)
	assert.Equal(t, "Industrial automation", cand.Industry)
	assert.Equal(t, "S:1.00 (D:1.0)", cand.Reason)
}

func TestVerify_DomainBoostWhenFetchSucceeds(t *testing.T) {
	// Domain score 0.9 (name substring of core domain), junk title; the
	// live-page floor keeps the final at 0.9.
	cs := newScorer(fakeTransport{status: 200, html: `<title>zzz</title>`})
	cand := cs.Verify(context.Background(), "https://acmecorpindustries.com", "ACME CORP")
	assert.InDelta(t, 0.9, cand.Score, 1e-9)
}

func TestVerify_FetchFailureLeavesDomainScore(t *testing.T) {
	cs := newScorer(fakeTransport{err: io.ErrUnexpectedEOF})
	cand := cs.Verify(context.Background(), "https://acmecorp.com", "ACME CORP")
	// Exact domain match, but no live page: no 0.9 floor needed, the raw
	// domain score stands and the industry falls back to the generic label.
	assert.InDelta(t, 1.0, cand.Score, 1e-9)
	assert.Equal(t, "Unclassified (Website Found)", cand.Industry)
}

func TestVerify_UnclassifiedFallback(t *testing.T) {
	cs := newScorer(fakeTransport{status: 200, html: `<title>Acme Corp</title>`})
	cand := cs.Verify(context.Background(), "https://acmecorp.com", "ACME CORP")
	assert.Greater(t, cand.Score, 0.6)
	assert.Equal(t, "Unclassified (Website Found)", cand.Industry)
}

func TestMatchDomainScore_Ladder(t *testing.T) {
	tests := []struct {
		domain string
		name   string
		want   float64
	}{
		{"acmecorp.com", "ACME CORP", 1.0},
		{"www.acmecorp.com", "ACME CORP", 1.0},
		{"acmecorpindustries.com", "ACME CORP", 0.9},
		{"acme.com", "ACME CORP", 0.8},        // core "acme" len 4 ⊂ "acmecorp"
		{"acme-global.com", "ACME CORP", 0.7}, // first word in core domain
		{"abc.com", "ACME CORP", 0.0},         // core too short for substring rule
		{"unrelated.com", "ACME CORP", 0.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, matchDomainScore(tt.domain, tt.name), 1e-9,
			"domain %s vs %s", tt.domain, tt.name)
	}
}

func TestTitleSimilarity_StripsBoilerplate(t *testing.T) {
	withBoiler := titleSimilarity("ACME CORP", "Acme Corp - Home | Welcome")
	assert.InDelta(t, 1.0, withBoiler, 1e-9)

	assert.Zero(t, titleSimilarity("ACME CORP", ""))
}

func TestVerify_FetchFailureBlocksTitleScore(t *testing.T) {
	// A 404 means no title evidence; an unrelated domain scores zero.
	cs := newScorer(fakeTransport{status: 404})
	cand := cs.Verify(context.Background(), "https://unrelated.com", "ACME CORP")
	assert.Zero(t, cand.Score)
	assert.Equal(t, "S:0.00 (D:0.0)", cand.Reason)
}
