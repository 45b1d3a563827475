package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds everything the daemon reads from the environment.
type Config struct {
	DBPath           string
	OpenAIKey        string
	OpenAIBaseURL    string
	ChatModel        string
	NotifyEndpoint   string
	ReminderInterval time.Duration
	Timezone         string
}

func Load() *Config {
	return &Config{
		DBPath:           getEnv("WILLOW_DB_PATH", filepath.Join("data", "willow.db")),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
		ChatModel:        getEnv("WILLOW_CHAT_MODEL", "gpt-4o-mini"),
		NotifyEndpoint:   os.Getenv("WILLOW_NOTIFY_ENDPOINT"),
		ReminderInterval: getEnvDuration("WILLOW_REMINDER_INTERVAL", 6*time.Hour),
		Timezone:         getEnv("TZ", "UTC"),
	}
}

func getEnv(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultVal
}
