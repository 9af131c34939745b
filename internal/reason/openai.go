package reason

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/pkg/openai"
)

// openaiReasoner runs the enrichment call through the OpenAI chat API with a
// forced JSON-object response format.
type openaiReasoner struct {
	client openai.Client
}

// NewOpenAI returns a Reasoner backed by the OpenAI chat completions API.
func NewOpenAI(client openai.Client) Reasoner {
	return &openaiReasoner{client: client}
}

func (r *openaiReasoner) Enrich(ctx context.Context, rules string, req Request) (*Enrichment, error) {
	user, err := encodeRequest(req)
	if err != nil {
		return nil, err
	}

	temp := 0.0
	resp, err := r.client.ChatCompletion(ctx, openai.ChatCompletionRequest{
		Messages: []openai.Message{
			{Role: "system", Content: rules},
			{Role: "user", Content: user},
		},
		Temperature:    &temp,
		ResponseFormat: &openai.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, eris.Wrap(err, "reason: openai completion")
	}
	if len(resp.Choices) == 0 {
		return nil, eris.New("reason: openai returned no choices")
	}

	return parseEnrichment(resp.Choices[0].Message.Content)
}
