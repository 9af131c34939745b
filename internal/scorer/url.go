package scorer

import (
	"net/url"
	"strings"
)

// CleanURL validates and normalizes a candidate URL. A URL without a scheme
// gets "https://" prefixed; anything containing whitespace or lacking a dot
// is rejected as "" rather than reported as an error.
func CleanURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" || strings.ContainsAny(u, " \t") || !strings.Contains(u, ".") {
		return ""
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	return u
}

// Domain extracts the lower-cased hostname (with port stripped) of a URL,
// or "" when the URL does not parse.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// CoreDomain returns the first hostname label after removing a leading
// "www." — e.g. "corp" from "www.corp.example.co".
func CoreDomain(domain string) string {
	core := strings.TrimPrefix(domain, "www.")
	core, _, _ = strings.Cut(core, ".")
	return core
}
