package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	Local = "local"
	Prod  = "prod"
)

type App struct {
	Env         string
	Port        string
	MetricsPort string

	// ContentDir, when set, overrides the embedded posts with a local
	// directory so drafts can be previewed without a rebuild.
	ContentDir string
}

type Database struct {
	Username string
	Password string
	Endpoint string
	Name     string
	SSLMode  string
}

type Slack struct {
	BlogBotToken      string
	CommentsChannelID string
}

type Config struct {
	App      App
	Database Database
	Slack    Slack
}

func New() *Config {
	env := getEnv("APP_ENV", Local)
	if env == Local {
		_ = godotenv.Load()
	}

	return &Config{
		App: App{
			Env:         env,
			Port:        getEnv("APP_PORT", "8080"),
			MetricsPort: getEnv("APP_METRICS_PORT", "9090"),
			ContentDir:  getEnv("APP_CONTENT_DIR", ""),
		},
		Database: Database{
			Username: getEnv("DB_USERNAME", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Endpoint: getEnv("DB_ENDPOINT", "localhost:5432"),
			Name:     getEnv("DB_NAME", "blog"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Slack: Slack{
			BlogBotToken:      getEnv("SLACK_BLOG_BOT_TOKEN", ""),
			CommentsChannelID: getEnv("SLACK_COMMENTS_CHANNEL_ID", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
