package config

import (
	"log"
	"os"
)

type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCP   Mode = "gcp"
)

type Config struct {
	Mode Mode

	Port string

	GCPProjectID   string
	GCPLocation    string
	ModelName      string
	EmbeddingModel string

	StorageBackend string // "memory" or "firestore"
	UseMockLLM     bool   // true = use mock even on GCP

	SearchEndpoint string
	SearchIndex    string
	SearchAPIKey   string

	ParkDataBaseURL string

	SendGridAPIKey string
	OpsEmail       string // operations inbox for HR-style requests

	BackendKey     string
	JWTSecret      string
	AllowedReferer string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

// Load reads all env vars and builds the config
func Load() *Config {
	modeStr := getEnv("BACKSTER_MODE", "local")
	var mode Mode
	switch modeStr {
	case "gcp":
		mode = ModeGCP
	default:
		mode = ModeLocal
	}

	cfg := &Config{
		Mode: mode,

		Port: getEnv("BACKSTER_PORT", "8080"),

		GCPProjectID:   getEnv("BACKSTER_GCP_PROJECT", ""),
		GCPLocation:    getEnv("BACKSTER_GCP_LOCATION", "europe-north1"),
		ModelName:      getEnv("BACKSTER_MODEL_NAME", "gemini-2.5-flash"),
		EmbeddingModel: getEnv("BACKSTER_EMBEDDING_MODEL", "text-embedding-004"),

		StorageBackend: getEnv("BACKSTER_STORAGE_BACKEND", "memory"),
		UseMockLLM:     getBoolEnv("BACKSTER_USE_MOCK_LLM", mode == ModeLocal),

		SearchEndpoint: getEnv("BACKSTER_SEARCH_ENDPOINT", ""),
		SearchIndex:    getEnv("BACKSTER_SEARCH_INDEX", "backster-first"),
		SearchAPIKey:   getEnv("BACKSTER_SEARCH_API_KEY", ""),

		ParkDataBaseURL: getEnv("BACKSTER_PARKDATA_BASE_URL", "https://backstageinfo.azurewebsites.net"),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		OpsEmail:       getEnv("SEND_TO_EMAIL", ""),

		BackendKey:     getEnv("BACKSTER_BACKEND_KEY", ""),
		JWTSecret:      getEnv("BACKSTER_JWT_SECRET", ""),
		AllowedReferer: getEnv("BACKSTER_ALLOWED_REFERER", "https://backstage.prs.se"),
	}

	// Minimal validation in GCP mode
	if cfg.Mode == ModeGCP && cfg.GCPProjectID == "" {
		log.Fatal("BACKSTER_GCP_PROJECT must be set in gcp mode")
	}

	return cfg
}
