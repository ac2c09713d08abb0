package config

import "time"

// Storage backend selectors for the key-value store.
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

// Config holds runtime settings for the gallerie CLI.
//
// Fields:
//   - HarvardAPIKey: api.harvardartmuseums.org key; when empty the client
//     serves its built-in fallback collection.
//   - HarvardBaseURL: museum API base URL (overridable for tests).
//   - PageSize: number of museum records requested per fetch.
//   - HTTPTimeout: timeout applied to outbound museum API calls.
//   - Storage: key-value backend, one of sqlite|postgres|redis|memory.
//   - DatabaseDSN: sqlite file path or postgres DSN, depending on Storage.
//   - RedisAddr: host:port of the redis backend (Storage=redis).
//   - S3*: optional image storage; when S3Bucket is empty, submitted images
//     are embedded as data URIs instead.
type Config struct {
	HarvardAPIKey  string
	HarvardBaseURL string
	PageSize       int
	HTTPTimeout    time.Duration

	Storage     string
	DatabaseDSN string
	RedisAddr   string

	S3BaseEndpoint string
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.HarvardBaseURL = "https://api.harvardartmuseums.org"
	c.PageSize = 20
	c.HTTPTimeout = 15 * time.Second
	c.Storage = StorageSQLite
	c.DatabaseDSN = "gallerie.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.S3Region = "us-east-1"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), a JSON file (if present)
// and command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
