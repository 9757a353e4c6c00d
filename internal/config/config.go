package config

import (
	"strings"
	"time"

	"github.com/SeakMengs/CardProof/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	RateLimiter RateLimiterConfig
	DocRaptor   DocRaptorConfig
	ICC         ICCConfig
	Upload      UploadConfig
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type DocRaptorConfig struct {
	// API_KEY may be overridden per request via the api_key form field.
	API_KEY  string
	BASE_URL string
	// TEST_MODE forces every submitted document into DocRaptor's test mode,
	// which produces watermarked PDFs that do not count against the quota.
	TEST_MODE bool
}

type ICCConfig struct {
	// Directory where uploaded ICC color profiles are stored.
	ProfileDir string
}

type UploadConfig struct {
	MaxUploadSizeMB int64
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimiteTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimiteTimeFrame = 60 * time.Second
	}

	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),
		// By default if not specified, we allow 5000 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            rateLimiteTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		DocRaptor: DocRaptorConfig{
			API_KEY:   env.GetString("DOCRAPTOR_API_KEY", ""),
			BASE_URL:  env.GetString("DOCRAPTOR_BASE_URL", "https://api.docraptor.com"),
			TEST_MODE: env.GetBool("DOCRAPTOR_TEST_MODE", true),
		},
		ICC: ICCConfig{
			ProfileDir: env.GetString("ICC_PROFILE_DIR", "icc_profiles"),
		},
		Upload: UploadConfig{
			MaxUploadSizeMB: int64(env.GetInt("MAX_UPLOAD_SIZE_MB", 50)),
		},
	}
}
