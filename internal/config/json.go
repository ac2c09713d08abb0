package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/gallerie-app/gallerie/internal/flagx"
	"github.com/gallerie-app/gallerie/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the HTTP timeout either as a string like
// "15s" or as integer nanoseconds. After parsing, non-zero values are copied
// into the runtime Config.
type JsonConfig struct {
	HarvardAPIKey  string         `json:"harvard_api_key"`
	HarvardBaseURL string         `json:"harvard_base_url"`
	PageSize       int            `json:"page_size"`
	HTTPTimeout    timex.Duration `json:"http_timeout"`
	Storage        string         `json:"storage"`
	DatabaseDSN    string         `json:"database_dsn"`
	RedisAddr      string         `json:"redis_addr"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
	S3Region       string         `json:"s3_region"`
	S3Bucket       string         `json:"s3_bucket"`
	S3AccessKey    string         `json:"s3_access_key"`
	S3SecretKey    string         `json:"s3_secret_key"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. When no file is given the function is a no-op.
// Zero-valued JSON fields leave the corresponding Config field untouched so
// a partial file only overrides what it names.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	overlay(&cfg.HarvardAPIKey, jc.HarvardAPIKey)
	overlay(&cfg.HarvardBaseURL, jc.HarvardBaseURL)
	overlay(&cfg.Storage, jc.Storage)
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.RedisAddr, jc.RedisAddr)
	overlay(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3AccessKey, jc.S3AccessKey)
	overlay(&cfg.S3SecretKey, jc.S3SecretKey)

	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.HTTPTimeout.Duration > 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
}
