package reason

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/pkg/anthropic"
)

const anthropicMaxTokens = 1024

// anthropicReasoner runs the enrichment call through the Anthropic messages
// API. The rules travel as the system prompt; JSON discipline comes from the
// rules text, so the reply parser tolerates code fences.
type anthropicReasoner struct {
	client anthropic.Client
	model  string
}

// NewAnthropic returns a Reasoner backed by the Anthropic messages API.
func NewAnthropic(client anthropic.Client, model string) Reasoner {
	return &anthropicReasoner{client: client, model: model}
}

func (r *anthropicReasoner) Enrich(ctx context.Context, rules string, req Request) (*Enrichment, error) {
	user, err := encodeRequest(req)
	if err != nil {
		return nil, err
	}

	temp := 0.0
	resp, err := r.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       r.model,
		MaxTokens:   anthropicMaxTokens,
		System:      rules,
		Messages:    []anthropic.Message{{Role: "user", Content: user}},
		Temperature: &temp,
	})
	if err != nil {
		return nil, eris.Wrap(err, "reason: anthropic message")
	}

	return parseEnrichment(resp.Text())
}
