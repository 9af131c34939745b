// Package reason abstracts the language-model call used by the premium
// resolution strategy.
package reason

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/model"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/pkg/serpapi"
)

// defaultRemark is used when the model omits a remark.
const defaultRemark = "Verified by AI"

// Request carries everything the model sees about one record. SearchResults
// is forwarded exactly as the search backend produced it — including error
// payloads, which the model is instructed to work around.
type Request struct {
	RawName       string          `json:"raw_name"`
	Address       model.Address   `json:"address"`
	SearchResults serpapi.Payload `json:"search_results"`
}

// Enrichment is the structured reply contract. Missing optional fields
// default to empty strings; Remark defaults to "Verified by AI".
type Enrichment struct {
	NormalizedName string `json:"normalized_name"`
	Website        string `json:"website"`
	Industry       string `json:"industry"`
	ThirdPartyLink string `json:"third_party_link"`
	Remark         string `json:"remark"`
}

// Reasoner performs one reasoning call: rules as the system message, the
// JSON-encoded request as the user message, a single JSON object back.
type Reasoner interface {
	Enrich(ctx context.Context, rules string, req Request) (*Enrichment, error)
}

// parseEnrichment decodes the model's reply content, tolerating markdown
// code fences around the JSON object.
func parseEnrichment(content string) (*Enrichment, error) {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var e Enrichment
	if err := json.Unmarshal([]byte(trimmed), &e); err != nil {
		return nil, eris.Wrap(err, "reason: parse reply")
	}
	if e.Remark == "" {
		e.Remark = defaultRemark
	}
	return &e, nil
}

// encodeRequest renders the user-message JSON body.
func encodeRequest(req Request) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", eris.Wrap(err, "reason: marshal request")
	}
	return string(body), nil
}
