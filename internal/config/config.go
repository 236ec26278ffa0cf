package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultSessionTTL = 12 * time.Hour

// Config carries everything the server reads from the environment, except the
// database settings which the database package resolves itself.
type Config struct {
	Port              int
	Env               string
	BaseURL           string
	TeacherAccessCode string
	SessionSecret     []byte
	SessionTTL        time.Duration

	// GeminiAPIKey may be empty; generation then serves the offline demo
	// documents instead of calling the backend.
	GeminiAPIKey string
	GeminiModel  string
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:          os.Getenv("APP_ENV"),
		BaseURL:      os.Getenv("BASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
	}

	port := 8080
	if raw := os.Getenv("PORT"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", raw, err)
		}
		port = p
	}
	cfg.Port = port

	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", port)
	}

	cfg.TeacherAccessCode = os.Getenv("TEACHER_ACCESS_CODE")
	if cfg.TeacherAccessCode == "" {
		return nil, fmt.Errorf("TEACHER_ACCESS_CODE environment variable is required")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}
	cfg.SessionSecret = []byte(secret)

	cfg.SessionTTL = defaultSessionTTL
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", raw, err)
		}
		cfg.SessionTTL = ttl
	}

	return cfg, nil
}
