package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://api.harvardartmuseums.org", c.HarvardBaseURL)
	assert.Equal(t, 20, c.PageSize)
	assert.Equal(t, 15*time.Second, c.HTTPTimeout)
	assert.Equal(t, StorageSQLite, c.Storage)
	assert.Equal(t, "gallerie.db", c.DatabaseDSN)
	assert.Empty(t, c.HarvardAPIKey)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://api.harvardartmuseums.org", cfg.HarvardBaseURL)
	assert.Equal(t, StorageSQLite, cfg.Storage)
}

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("HARVARD_API_KEY", "sekret")
	t.Setenv("GALLERIE_STORAGE", StorageMemory)
	t.Setenv("GALLERIE_PAGE_SIZE", "7")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "sekret", c.HarvardAPIKey)
	assert.Equal(t, StorageMemory, c.Storage)
	assert.Equal(t, 7, c.PageSize)
}

func TestParseEnv_IgnoresInvalidPageSize(t *testing.T) {
	t.Setenv("GALLERIE_PAGE_SIZE", "zero")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 20, c.PageSize)
}

func TestParseJson_PartialFileOverridesOnlyNamedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	body := `{"harvard_api_key":"from-json","http_timeout":"3s","page_size":5}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "from-json", c.HarvardAPIKey)
	assert.Equal(t, 3*time.Second, c.HTTPTimeout)
	assert.Equal(t, 5, c.PageSize)
	// untouched by the file
	assert.Equal(t, StorageSQLite, c.Storage)
	assert.Equal(t, "https://api.harvardartmuseums.org", c.HarvardBaseURL)
}

func TestParseFlags_OverridesEarlierSources(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-s", StorageRedis, "-r", "10.0.0.5:6379", "-t", "30"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, StorageRedis, c.Storage)
	assert.Equal(t, "10.0.0.5:6379", c.RedisAddr)
	assert.Equal(t, 30*time.Second, c.HTTPTimeout)
}
