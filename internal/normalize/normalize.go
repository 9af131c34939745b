// Package normalize canonicalizes raw company names for matching.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// legalSuffixes lists legal entity suffixes stripped during normalization.
// Order matters: compound suffixes (" CO LTD") precede their components so
// a single pass removes the longest match first, and the fixed-point loop
// handles stacked suffixes ("... Co., Ltd." needs two removals).
var legalSuffixes = []string{
	" CO LTD", " CO", " LTD", " LLC", " LLP", " INC", " CORP", " CORPORATION",
	" SDN BHD", " PVT LTD", " PVT", " BV", " GMBH", " AG", " SA", " SRL",
	" SAS", " HOLDING AG", " PLANT", " FACTORY", " BRANCH", " S P A", " AB", " OY",
	" K K", " G K", " SPOL S R O",
}

var (
	nonAlnumRe    = regexp.MustCompile(`[^A-Za-z0-9 ]+`)
	multiSpaceRe  = regexp.MustCompile(`\s+`)
	foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Name standardizes a raw company name:
//  1. Folding diacritics to their ASCII base letters
//  2. Expanding "&" to " AND "
//  3. Dropping every character outside [A-Za-z0-9 ]
//  4. Collapsing whitespace, trimming, uppercasing
//  5. Stripping legal entity suffixes from the end until a full pass
//     removes nothing (fixed point)
//
// Empty or missing input yields "" — that is the defined behavior for
// absent names, not an error. Name is idempotent.
func Name(raw string) string {
	if raw == "" {
		return ""
	}

	if folded, _, err := transform.String(foldTransform, raw); err == nil {
		raw = folded
	}

	s := strings.ReplaceAll(raw, "&", " AND ")
	s = nonAlnumRe.ReplaceAllString(s, " ")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	s = strings.ToUpper(strings.TrimSpace(s))

	changed := true
	for changed && s != "" {
		changed = false
		for _, suffix := range legalSuffixes {
			if strings.HasSuffix(s, suffix) {
				s = strings.TrimRight(strings.TrimSuffix(s, suffix), " ")
				changed = true
			}
		}
	}

	return s
}

// Flatten returns the normalized name with spaces removed and lower-cased,
// the form used for domain comparison.
func Flatten(normalized string) string {
	return strings.ToLower(strings.ReplaceAll(normalized, " ", ""))
}

// FirstWord returns the first space-separated token of a normalized name,
// lower-cased, or "" when the name is empty.
func FirstWord(normalized string) string {
	word, _, _ := strings.Cut(normalized, " ")
	return strings.ToLower(word)
}
