package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first, if present; real environment
// variables win over .env entries (godotenv does not override existing ones).
//
// Recognized variables:
//
//	HARVARD_API_KEY, HARVARD_BASE_URL, GALLERIE_PAGE_SIZE,
//	GALLERIE_STORAGE, GALLERIE_DATABASE_DSN, GALLERIE_REDIS_ADDR,
//	S3_BASE_ENDPOINT, S3_REGION, S3_BUCKET, S3_ACCESS_KEY, S3_SECRET_KEY
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	setString := func(dst *string, name string) {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}

	setString(&cfg.HarvardAPIKey, "HARVARD_API_KEY")
	setString(&cfg.HarvardBaseURL, "HARVARD_BASE_URL")
	setString(&cfg.Storage, "GALLERIE_STORAGE")
	setString(&cfg.DatabaseDSN, "GALLERIE_DATABASE_DSN")
	setString(&cfg.RedisAddr, "GALLERIE_REDIS_ADDR")
	setString(&cfg.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	setString(&cfg.S3Region, "S3_REGION")
	setString(&cfg.S3Bucket, "S3_BUCKET")
	setString(&cfg.S3AccessKey, "S3_ACCESS_KEY")
	setString(&cfg.S3SecretKey, "S3_SECRET_KEY")

	if v, ok := os.LookupEnv("GALLERIE_PAGE_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
}
