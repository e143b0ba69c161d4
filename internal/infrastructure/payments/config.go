package payments

import (
	"os"
	"strings"
)

// Config holds the MAIB merchant credentials and endpoints.
//
// Loaded once at startup from environment variables (godotenv-friendly):
//   - MAIB_PROJECT_ID / MAIB_PROJECT_SECRET: merchant project credentials
//   - MAIB_SIGNATURE_KEY: key appended when signing payloads
//   - MAIB_API_URL (default: https://api.maibmerchants.md)
//   - MAIB_API_ENDPOINT (default: /v1/pay)
//   - MAIB_TEST_MODE (default: true)
type Config struct {
	ProjectID       string
	ProjectSecret   string
	SignatureKey    string
	APIBaseURL      string
	PayEndpointPath string
	TestMode        bool
}

func ConfigFromEnv() Config {
	return Config{
		ProjectID:       os.Getenv("MAIB_PROJECT_ID"),
		ProjectSecret:   os.Getenv("MAIB_PROJECT_SECRET"),
		SignatureKey:    os.Getenv("MAIB_SIGNATURE_KEY"),
		APIBaseURL:      getenvDefault("MAIB_API_URL", "https://api.maibmerchants.md"),
		PayEndpointPath: getenvDefault("MAIB_API_ENDPOINT", "/v1/pay"),
		TestMode:        strings.ToLower(getenvDefault("MAIB_TEST_MODE", "true")) == "true",
	}
}

// baseURL returns the API base without a trailing slash.
func (c Config) baseURL() string {
	return strings.TrimRight(c.APIBaseURL, "/")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
