// Package resolver implements the two resolution strategies: the free
// heuristic pipeline and the premium reasoning pipeline.
package resolver

import (
	"context"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/model"
)

// Resolver turns one raw record into a finished output record. Resolve never
// returns an error: every failure mode maps to a remark on the record.
type Resolver interface {
	Resolve(ctx context.Context, rec model.RawRecord) model.OutputRecord
}

// Verifier scores one candidate URL against a normalized company name.
type Verifier interface {
	Verify(ctx context.Context, rawURL, normalizedName string) model.Candidate
}
