// Package scorer assigns confidence scores to candidate official websites.
package scorer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/agext/levenshtein"
	"go.uber.org/zap"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/classify"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/inspect"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/model"
	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/normalize"
)

// unclassifiedLabel is reported when a site verifies but no industry
// keyword matches its content.
const unclassifiedLabel = "Unclassified (Website Found)"

// titleBoilerplateRe strips trailing navigation boilerplate ("- Home",
// "| Official Site", ...) before title similarity is computed.
var titleBoilerplateRe = regexp.MustCompile(`(?i)\s*[-|]\s*(home|official|welcome|index).*`)

// CandidateScorer turns one candidate URL plus a normalized company name
// into a scored Candidate with a diagnostic reason and an industry guess.
type CandidateScorer struct {
	inspector *inspect.Inspector
	cfg       Config
}

// New creates a CandidateScorer. A nil inspector gets the default one.
func New(inspector *inspect.Inspector, cfg Config) *CandidateScorer {
	if inspector == nil {
		inspector = inspect.New()
	}
	return &CandidateScorer{inspector: inspector, cfg: cfg}
}

// Verify scores a single candidate URL against normalizedName.
//
// Policy rejections (blocked, third-party, parked) are scores with reasons,
// not errors; a failed page fetch degrades to the domain score alone. Verify
// never fails: every input produces a Candidate.
func (cs *CandidateScorer) Verify(ctx context.Context, rawURL, normalizedName string) model.Candidate {
	cleaned := CleanURL(rawURL)
	if cleaned == "" {
		return model.Candidate{URL: rawURL, Reason: "Bad URL"}
	}

	domain := Domain(cleaned)
	cand := model.Candidate{URL: cleaned, Domain: domain}

	if containsAny(domain, cs.cfg.BlockedDomains) {
		cand.Score = 0.1
		cand.Reason = "Blocked"
		return cand
	}
	if containsAny(domain, cs.cfg.ThirdPartyDomains) {
		cand.Score = 0.2
		cand.Reason = "Third Party"
		return cand
	}

	domainScore := matchDomainScore(domain, normalizedName)

	signals := cs.inspector.Fetch(ctx, cleaned)

	if parked(signals, cs.cfg.ParkedMarkers) {
		cand.Score = 0
		cand.Reason = "Parked"
		return cand
	}

	titleScore := 0.0
	if !signals.Failed() {
		titleScore = titleSimilarity(normalizedName, signals.Title)
	}

	final := max(domainScore, titleScore)
	// Strong domain evidence plus a live page outranks a weak title; two
	// moderate signals together also clear the bar. A strong title with a
	// weak domain is deliberately not floored (domain evidence wins).
	if domainScore > 0.7 && !signals.Failed() {
		final = max(final, 0.9)
	} else if domainScore > 0.4 && titleScore > 0.4 {
		final = max(final, 0.8)
	}

	industry := classify.Industry(signals.Text())
	if industry == "" && final > 0.6 {
		industry = unclassifiedLabel
	}

	cand.Score = final
	cand.Industry = industry
	cand.Reason = fmt.Sprintf("S:%.2f (D:%.1f)", final, domainScore)

	zap.L().Debug("scorer: candidate verified",
		zap.String("url", cleaned),
		zap.Float64("score", final),
		zap.Float64("domain_score", domainScore),
		zap.Float64("title_score", titleScore),
		zap.String("industry", industry),
	)

	return cand
}

// matchDomainScore compares the core domain against the flattened
// normalized name:
//
//	exact match                                  1.0
//	name is substring of core domain             0.9
//	core domain is substring of name (len > 3)   0.8
//	first word of name (len > 3) in core domain  0.7
//	otherwise                                    0.0
func matchDomainScore(domain, normalizedName string) float64 {
	core := CoreDomain(domain)
	flat := normalize.Flatten(normalizedName)

	switch {
	case flat != "" && flat == core:
		return 1.0
	case flat != "" && strings.Contains(core, flat):
		return 0.9
	case core != "" && len(core) > 3 && strings.Contains(flat, core):
		return 0.8
	}

	if first := normalize.FirstWord(normalizedName); len(first) > 3 && strings.Contains(core, first) {
		return 0.7
	}
	return 0.0
}

// titleSimilarity computes the normalized case-insensitive similarity ratio
// between the company name and the boilerplate-stripped page title.
func titleSimilarity(normalizedName, title string) float64 {
	cleanTitle := titleBoilerplateRe.ReplaceAllString(title, "")
	return levenshtein.Similarity(strings.ToLower(normalizedName), strings.ToLower(cleanTitle), nil)
}

// parked reports whether the title or description carries a domain
// marketplace marker.
func parked(signals inspect.Signals, markers []string) bool {
	blob := strings.ToLower(signals.Title + " " + signals.Description)
	for _, m := range markers {
		if strings.Contains(blob, m) {
			return true
		}
	}
	return false
}

// containsAny reports whether any entry appears as a substring of domain.
func containsAny(domain string, entries []string) bool {
	for _, e := range entries {
		if strings.Contains(domain, e) {
			return true
		}
	}
	return false
}
