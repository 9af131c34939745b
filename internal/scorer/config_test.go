package scorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_ListOrder(t *testing.T) {
	cfg := DefaultConfig()
	require.NotEmpty(t, cfg.BlockedDomains)
	assert.Equal(t, "linkedin.com", cfg.BlockedDomains[0])
	assert.Equal(t, "dnb.com", cfg.ThirdPartyDomains[0])
	assert.Equal(t, "domain for sale", cfg.ParkedMarkers[0])
}

func TestLoadConfig_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("blocked_domains:\n  - example.org\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.org"}, cfg.BlockedDomains)
	// Untouched lists keep defaults.
	assert.Equal(t, DefaultConfig().ThirdPartyDomains, cfg.ThirdPartyDomains)
}

func TestCleanURL(t *testing.T) {
	assert.Equal(t, "https://acme.com", CleanURL("acme.com"))
	assert.Equal(t, "http://acme.com", CleanURL("http://acme.com"))
	assert.Equal(t, "https://acme.com", CleanURL("  https://acme.com  "))
	assert.Equal(t, "", CleanURL("not a url.com"))
	assert.Equal(t, "", CleanURL("nodot"))
	assert.Equal(t, "", CleanURL(""))
}

func TestDomainAndCore(t *testing.T) {
	assert.Equal(t, "www.acme.co.uk", Domain("https://www.Acme.co.uk/about"))
	assert.Equal(t, "acme", CoreDomain("www.acme.co.uk"))
	assert.Equal(t, "corp", CoreDomain("corp.example.co"))
}
