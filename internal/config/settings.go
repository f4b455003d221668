package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Settings struct {
	Port          string
	LogLevel      string
	LogFormat     string
	DatabaseDSN   string
	BankSource    string
	BankPath      string
	BankURL       string
	ResourcesPath string
	CorsOrigins   []string
	Timezone      string
}

var Current Settings

// Init loads .env (if present), reads the environment and sets up logging.
func Init() {
	_ = godotenv.Load()

	Current = Load()
	initLogger(Current.LogLevel, Current.LogFormat)
	setLocation(Current.Timezone)
}

func Load() Settings {
	return Settings{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		BankSource:    getEnv("BANK_SOURCE", "file"),
		BankPath:      getEnv("BANK_PATH", "quiz_data.json"),
		BankURL:       os.Getenv("BANK_URL"),
		ResourcesPath: getEnv("RESOURCES_PATH", "resources.yaml"),
		CorsOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
		Timezone:      getEnv("APP_TIMEZONE", "UTC"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
