package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port               string
	Env                string
	CORSAllowOrigin    []string
	DatabaseURL        string
	LLMProvider        string
	LLMModel           string
	QuestionBudget     int
	ExtractCharBudget  int
	TerminationTokens  []string
	PlanMessages       map[string]string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	UIRedirectURL      string
}

const (
	defaultQuestionBudget    = 4
	defaultExtractCharBudget = 15000
	defaultTerminationTokens = "no,none,done,nothing"
)

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:               getEnv("PORT", "8080"),
		Env:                normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		LLMProvider:        getEnv("LLM_PROVIDER", "openai"),
		LLMModel:           getEnv("LLM_MODEL", "gpt-4o"),
		QuestionBudget:     getEnvInt("QUESTION_BUDGET", defaultQuestionBudget),
		ExtractCharBudget:  getEnvInt("EXTRACT_CHAR_BUDGET", defaultExtractCharBudget),
		TerminationTokens:  splitAndTrim(getEnv("TERMINATION_TOKENS", defaultTerminationTokens)),
		PlanMessages:       planMessageOverrides(),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		UIRedirectURL:      getEnv("UI_REDIRECT_URL", ""),
	}
}

// planMessageOverrides reads PLAN_MESSAGE_<TIER> overrides for the closing
// message table. Tiers without an override keep their built-in template.
func planMessageOverrides() map[string]string {
	out := map[string]string{}
	for _, tier := range []string{"core", "pro", "executive", "default"} {
		key := "PLAN_MESSAGE_" + strings.ToUpper(tier)
		if val := strings.TrimSpace(os.Getenv(key)); val != "" {
			out[tier] = val
		}
	}
	return out
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
