package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/model"
)

// scriptedVerifier returns canned candidates per URL and records call order.
type scriptedVerifier struct {
	scores map[string]model.Candidate
	calls  []string
}

func (v *scriptedVerifier) Verify(_ context.Context, rawURL, _ string) model.Candidate {
	v.calls = append(v.calls, rawURL)
	if cand, ok := v.scores[rawURL]; ok {
		return cand
	}
	return model.Candidate{URL: rawURL}
}

type scriptedSearcher struct {
	urls   []string
	err    error
	called bool
}

func (s *scriptedSearcher) Search(context.Context, string) ([]string, error) {
	s.called = true
	return s.urls, s.err
}

func TestFree_EmptyNameIsInvalid(t *testing.T) {
	v := &scriptedVerifier{}
	s := &scriptedSearcher{}
	out := NewFree(v, s).Resolve(context.Background(), model.RawRecord{
		RawName: "Ltd.",
		Extras:  []string{"x"},
	})

	assert.Equal(t, "Ltd.", out.RawName)
	assert.Equal(t, "Invalid", out.Remark)
	assert.Empty(t, out.NormalizedName)
	assert.Empty(t, out.ConfidenceScore)
	assert.Equal(t, []string{"x"}, out.Extras)
	assert.Empty(t, v.calls)
	assert.False(t, s.called)
}

func TestFree_DomainGuessShortCircuits(t *testing.T) {
	v := &scriptedVerifier{scores: map[string]model.Candidate{
		"https://www.acme.com": {URL: "https://www.acme.com", Score: 0.9, Industry: "Industrial automation"},
	}}
	s := &scriptedSearcher{urls: []string{"https://elsewhere.com"}}

	out := NewFree(v, s).Resolve(context.Background(), model.RawRecord{RawName: "Acme Co., Ltd."})

	assert.Equal(t, "ACME", out.NormalizedName)
	assert.Equal(t, "https://www.acme.com", out.Website)
	assert.Equal(t, "Industrial automation", out.Industry)
	assert.Equal(t, "Verified Official (Domain Guess).", out.Remark)
	assert.Equal(t, "0.90", out.ConfidenceScore)
	assert.False(t, s.called, "accepted guess skips search")
	assert.Equal(t, []string{"https://www.acme.com"}, v.calls)
}

func TestFree_SecondGuessAccepted(t *testing.T) {
	v := &scriptedVerifier{scores: map[string]model.Candidate{
		"https://acme.com": {URL: "https://acme.com", Score: 0.8},
	}}
	s := &scriptedSearcher{}

	out := NewFree(v, s).Resolve(context.Background(), model.RawRecord{RawName: "Acme"})

	assert.Equal(t, "https://acme.com", out.Website)
	assert.Equal(t, []string{"https://www.acme.com", "https://acme.com"}, v.calls)
	assert.False(t, s.called)
}

func TestFree_SearchFallbackPicksStrictlyBetter(t *testing.T) {
	v := &scriptedVerifier{scores: map[string]model.Candidate{
		"https://one.example":   {URL: "https://one.example", Score: 0.55},
		"https://two.example":   {URL: "https://two.example", Score: 0.72, Industry: "Sensors"},
		"https://three.example": {URL: "https://three.example", Score: 0.72},
	}}
	s := &scriptedSearcher{urls: []string{
		"https://one.example", "https://two.example", "https://three.example", "https://four.example",
	}}

	out := NewFree(v, s).Resolve(context.Background(), model.RawRecord{RawName: "Acme"})

	assert.Equal(t, "https://two.example", out.Website, "ties keep the earlier hit")
	assert.Equal(t, "Sensors", out.Industry)
	assert.Equal(t, "Verified Official (API Match).", out.Remark)
	assert.Equal(t, "0.72", out.ConfidenceScore)
	assert.NotContains(t, v.calls, "https://four.example", "only the first three hits are scored")
}

func TestFree_WebsiteThresholdBoundary(t *testing.T) {
	for _, tc := range []struct {
		score   float64
		website string
	}{
		{0.50, "https://edge.example"},
		{0.49, ""},
	} {
		v := &scriptedVerifier{scores: map[string]model.Candidate{
			"https://edge.example": {URL: "https://edge.example", Score: tc.score},
		}}
		s := &scriptedSearcher{urls: []string{"https://edge.example"}}

		out := NewFree(v, s).Resolve(context.Background(), model.RawRecord{RawName: "Acme"})
		assert.Equal(t, tc.website, out.Website, "score %.2f", tc.score)
	}
}

func TestFree_BelowWebsiteThreshold(t *testing.T) {
	v := &scriptedVerifier{scores: map[string]model.Candidate{
		"https://weak.example": {URL: "https://weak.example", Score: 0.4, Industry: "Sensors"},
	}}
	s := &scriptedSearcher{urls: []string{"https://weak.example"}}

	out := NewFree(v, s).Resolve(context.Background(), model.RawRecord{RawName: "Acme"})

	assert.Empty(t, out.Website)
	assert.Equal(t, "Official site not found.", out.Remark)
	assert.Equal(t, "0.40", out.ConfidenceScore)
	assert.Equal(t, "Sensors", out.Industry, "industry survives even without an accepted website")
}

func TestFree_SearchErrorStillProducesRecord(t *testing.T) {
	v := &scriptedVerifier{}
	s := &scriptedSearcher{err: errors.New("connection refused")}

	out := NewFree(v, s).Resolve(context.Background(), model.RawRecord{RawName: "Acme"})

	require.Equal(t, "ACME", out.NormalizedName)
	assert.Empty(t, out.Website)
	assert.Equal(t, "Official site not found.", out.Remark)
	assert.Equal(t, "0.00", out.ConfidenceScore)
}
