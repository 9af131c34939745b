package resolver

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/model"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/normalize"
)

// maxSearchCandidates caps how many search hits the free pipeline scores.
const maxSearchCandidates = 3

// guessAcceptThreshold short-circuits the search fallback when a guessed
// domain already verifies strongly.
const guessAcceptThreshold = 0.7

// websiteThreshold is the minimum score at which the best candidate is
// reported as the official website.
const websiteThreshold = 0.5

// Searcher produces candidate URLs for a query, best first.
type Searcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// Free resolves records without paid APIs: it guesses the obvious .com
// domains first, then falls back to free web search.
type Free struct {
	verifier Verifier
	search   Searcher
}

// NewFree creates the free resolver.
func NewFree(verifier Verifier, search Searcher) *Free {
	return &Free{verifier: verifier, search: search}
}

// Resolve runs the free pipeline for one record.
func (f *Free) Resolve(ctx context.Context, rec model.RawRecord) model.OutputRecord {
	norm := normalize.Name(rec.RawName)
	if norm == "" {
		return model.OutputRecord{
			RawName: rec.RawName,
			Remark:  "Invalid",
			Extras:  rec.Extras,
		}
	}

	var best model.Candidate
	var matchTag string

	flat := normalize.Flatten(norm)
	guesses := []string{
		fmt.Sprintf("https://www.%s.com", flat),
		fmt.Sprintf("https://%s.com", flat),
	}
	for _, guess := range guesses {
		cand := f.verifier.Verify(ctx, guess, norm)
		if cand.Score > guessAcceptThreshold {
			best = cand
			matchTag = "Domain Guess"
			break
		}
	}

	if best.Score <= guessAcceptThreshold {
		urls, err := f.search.Search(ctx, norm)
		if err != nil {
			zap.L().Warn("resolver: search failed, continuing with guesses only",
				zap.String("query", norm), zap.Error(err))
		}
		if len(urls) > maxSearchCandidates {
			urls = urls[:maxSearchCandidates]
		}
		for _, u := range urls {
			cand := f.verifier.Verify(ctx, u, norm)
			if cand.Score > best.Score {
				best = cand
				matchTag = "API Match"
			}
		}
	}

	out := model.OutputRecord{
		RawName:         rec.RawName,
		NormalizedName:  norm,
		Industry:        best.Industry,
		Remark:          "Official site not found.",
		ConfidenceScore: fmt.Sprintf("%.2f", best.Score),
		Extras:          rec.Extras,
	}
	if best.Score >= websiteThreshold {
		out.Website = best.URL
		out.Remark = fmt.Sprintf("Verified Official (%s).", matchTag)
	}
	return out
}
