package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/model"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/reason"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/pkg/serpapi"
)

type stubSearch struct {
	payload serpapi.Payload
	err     error
}

func (s stubSearch) Search(context.Context, string) (serpapi.Payload, error) {
	return s.payload, s.err
}

type stubReasoner struct {
	gotRules string
	gotReq   reason.Request
	out      *reason.Enrichment
	err      error
}

func (s *stubReasoner) Enrich(_ context.Context, rules string, req reason.Request) (*reason.Enrichment, error) {
	s.gotRules = rules
	s.gotReq = req
	return s.out, s.err
}

func TestPremium_Success(t *testing.T) {
	search := stubSearch{payload: serpapi.Payload{Results: []serpapi.Result{
		{Name: "Acme GmbH", URL: "https://acme.de", Snippet: "Official site"},
	}}}
	r := &stubReasoner{out: &reason.Enrichment{
		NormalizedName: "Acme GmbH",
		Website:        "https://acme.de",
		Industry:       "Sensors",
		Remark:         "Verified by AI",
	}}

	out := NewPremium(search, r, "rules text").Resolve(context.Background(), model.RawRecord{
		RawName: "Acme GmbH",
		Address: model.Address{City: "Munich", Country: "Germany"},
		Extras:  []string{"keep"},
	})

	assert.Equal(t, "rules text", r.gotRules)
	assert.Equal(t, "Acme GmbH", r.gotReq.RawName)
	assert.Equal(t, "Munich", r.gotReq.Address.City)
	require.Len(t, r.gotReq.SearchResults.Results, 1)

	assert.Equal(t, "ACME", out.NormalizedName, "model output is re-normalized")
	assert.Equal(t, "https://acme.de", out.Website)
	assert.Equal(t, "Sensors", out.Industry)
	assert.Equal(t, "Verified by AI", out.Remark)
	assert.Equal(t, "High (AI)", out.ConfidenceScore)
	assert.Equal(t, []string{"keep"}, out.Extras)
}

func TestPremium_SearchTransportErrorBecomesPayload(t *testing.T) {
	search := stubSearch{err: errors.New("dial tcp: timeout")}
	r := &stubReasoner{out: &reason.Enrichment{Remark: "Verified by AI"}}

	out := NewPremium(search, r, "rules").Resolve(context.Background(), model.RawRecord{RawName: "Acme"})

	assert.False(t, r.gotReq.SearchResults.OK())
	assert.Contains(t, r.gotReq.SearchResults.Error, "timeout")
	assert.Equal(t, "High (AI)", out.ConfidenceScore, "search failure alone does not fail the record")
}

func TestPremium_APIErrorPayloadForwarded(t *testing.T) {
	search := stubSearch{payload: serpapi.ErrPayload("Your account has run out of searches.")}
	r := &stubReasoner{out: &reason.Enrichment{Remark: "Reasoned without search"}}

	NewPremium(search, r, "rules").Resolve(context.Background(), model.RawRecord{RawName: "Acme"})

	assert.Equal(t, "Your account has run out of searches.", r.gotReq.SearchResults.Error)
}

func TestPremium_ReasoningFailure(t *testing.T) {
	search := stubSearch{payload: serpapi.Payload{}}
	r := &stubReasoner{err: errors.New("model overloaded")}

	out := NewPremium(search, r, "rules").Resolve(context.Background(), model.RawRecord{
		RawName: "Acme Co., Ltd.",
		Extras:  []string{"keep"},
	})

	assert.Equal(t, "Acme Co., Ltd.", out.RawName)
	assert.Equal(t, "ACME", out.NormalizedName)
	assert.Empty(t, out.Website)
	assert.Empty(t, out.Industry)
	assert.Contains(t, out.Remark, "AI Error:")
	assert.Contains(t, out.Remark, "model overloaded")
	assert.Equal(t, "0", out.ConfidenceScore)
	assert.Equal(t, []string{"keep"}, out.Extras)
}

func TestPremium_EmptyNormalizedNameFallsBackToRaw(t *testing.T) {
	search := stubSearch{}
	r := &stubReasoner{out: &reason.Enrichment{Remark: "ok"}}

	out := NewPremium(search, r, "rules").Resolve(context.Background(), model.RawRecord{RawName: "Acme Inc"})

	assert.Equal(t, "ACME", out.NormalizedName)
}
