// Package config loads process configuration from environment variables.
// All values are fixed for the process lifetime.
package config

import (
	"os"
	"strings"
)

const defaultGeminiModel = "gemini-2.0-flash-exp"

type Config struct {
	Addr         string
	QuizDataFile string

	// StoreDriver selects the quiz store backend: "file" or "sqlite".
	StoreDriver string
	SQLitePath  string

	StaticDir   string
	CORSOrigins []string

	// Explanation generation. An empty GoogleAPIKey disables generation
	// regardless of the enable flag.
	GoogleAPIKey         string
	EnableAIExplanations bool
	GeminiModel          string
	GeminiAPIURL         string
}

func FromEnv() Config {
	model := envOr("GEMINI_MODEL", defaultGeminiModel)
	return Config{
		Addr:                 envOr("ADDR", ":8080"),
		QuizDataFile:         envOr("QUIZ_DATA_FILE", "quiz_example.json"),
		StoreDriver:          envOr("STORE_DRIVER", "file"),
		SQLitePath:           envOr("SQLITE_PATH", "quiz.db"),
		StaticDir:            os.Getenv("STATIC_DIR"),
		CORSOrigins:          csv(os.Getenv("CORS_ORIGINS")),
		GoogleAPIKey:         os.Getenv("GOOGLE_API_KEY"),
		EnableAIExplanations: envBool("ENABLE_AI_EXPLANATIONS", true),
		GeminiModel:          model,
		GeminiAPIURL:         envOr("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta/models/"+model+":generateContent"),
	}
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return fallback
	}
	return value == "1" || value == "true" || value == "yes"
}

func csv(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
