package resolver

import (
	"context"

	"go.uber.org/zap"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/model"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/normalize"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/reason"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/pkg/serpapi"
)

// Premium resolves records through paid search plus a reasoning model. A
// failed search does not abort the record: the error travels to the model
// inside the search payload, and the model reasons from name and address.
type Premium struct {
	search   serpapi.Client
	reasoner reason.Reasoner
	rules    string
}

// NewPremium creates the premium resolver. rules is the system prompt for
// the reasoning call.
func NewPremium(search serpapi.Client, reasoner reason.Reasoner, rules string) *Premium {
	return &Premium{search: search, reasoner: reasoner, rules: rules}
}

// Resolve runs the premium pipeline for one record.
func (p *Premium) Resolve(ctx context.Context, rec model.RawRecord) model.OutputRecord {
	payload, err := p.search.Search(ctx, rec.RawName)
	if err != nil {
		// Transport-level failures become payload errors so the reasoning
		// call still happens, matching API-reported errors.
		zap.L().Warn("resolver: paid search failed",
			zap.String("raw_name", rec.RawName), zap.Error(err))
		payload = serpapi.ErrPayload(err.Error())
	}

	enr, err := p.reasoner.Enrich(ctx, p.rules, reason.Request{
		RawName:       rec.RawName,
		Address:       rec.Address,
		SearchResults: payload,
	})
	if err != nil {
		zap.L().Error("resolver: reasoning failed",
			zap.String("raw_name", rec.RawName), zap.Error(err))
		return model.OutputRecord{
			RawName:         rec.RawName,
			NormalizedName:  normalize.Name(rec.RawName),
			Remark:          "AI Error: " + err.Error(),
			ConfidenceScore: "0",
			Extras:          rec.Extras,
		}
	}

	normalized := enr.NormalizedName
	if normalized == "" {
		normalized = rec.RawName
	}

	return model.OutputRecord{
		RawName:         rec.RawName,
		NormalizedName:  normalize.Name(normalized),
		Website:         enr.Website,
		Industry:        enr.Industry,
		ThirdPartyLink:  enr.ThirdPartyLink,
		Remark:          enr.Remark,
		ConfidenceScore: "High (AI)",
		Extras:          rec.Extras,
	}
}
