package scorer

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Config holds the static policy lists used while scoring candidates.
// Loaded once at startup and shared read-only across all resolution calls;
// list order is first-match-wins and must be preserved.
type Config struct {
	// BlockedDomains are social networks, directories, and marketplaces
	// never treated as official sites.
	BlockedDomains []string `yaml:"blocked_domains"`
	// ThirdPartyDomains are business-intelligence and registry sites
	// reported as third-party sources rather than official sites.
	ThirdPartyDomains []string `yaml:"third_party_domains"`
	// ParkedMarkers in the title/description force a zero score.
	ParkedMarkers []string `yaml:"parked_markers"`
}

// DefaultConfig returns the compiled-in policy lists.
func DefaultConfig() Config {
	return Config{
		BlockedDomains: []string{
			"linkedin.com", "facebook.com", "instagram.com", "twitter.com", "x.com",
			"youtube.com", "wikipedia.org", "glassdoor.com", "indeed.com",
			"yellowpages", "bloomberg.com", "dnb.com", "kompass.com", "zoominfo",
			"tmall.com", "taobao.com", "1688.com", "godaddy.com", "namecheap.com",
		},
		ThirdPartyDomains: []string{
			"dnb.com", "pitchbook.com", "bloomberg.com", "taiwantrade.com",
			"opencorporates.com", "lei-lookup.com", "reuters.com", "zoominfo.com",
			"kompass.com", "techcrunch.com",
		},
		ParkedMarkers: []string{
			"domain for sale", "buy this domain", "godaddy", "namecheap", "parked",
		},
	}
}

// LoadConfig reads a yaml policy file. Lists present in the file replace
// the defaults wholesale; absent lists keep the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, eris.Wrap(err, "scorer: read config")
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, eris.Wrap(err, "scorer: parse config")
	}

	if file.BlockedDomains != nil {
		cfg.BlockedDomains = file.BlockedDomains
	}
	if file.ThirdPartyDomains != nil {
		cfg.ThirdPartyDomains = file.ThirdPartyDomains
	}
	if file.ParkedMarkers != nil {
		cfg.ParkedMarkers = file.ParkedMarkers
	}

	return cfg, nil
}
