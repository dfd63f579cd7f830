package config

import (
	"os"
	"strconv"
)

// Settings agrupa toda la configuración leída del entorno.
// Se carga una sola vez en main y se inyecta en los constructores,
// sin singletons globales de hashing ni de tokens.
type Settings struct {
	AppName string
	Port    string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	SecretKey      string
	AccessTokenTTL int // minutos

	SMTPHost     string
	SMTPPort     string
	SMTPEmail    string
	SMTPPassword string

	SupabaseURL string
	SupabaseKey string
}

func Load() Settings {
	return Settings{
		AppName: getEnv("APP_NAME", "Parladach API"),
		Port:    getEnv("PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		SecretKey:      os.Getenv("SECRET_KEY"),
		AccessTokenTTL: getEnvInt("ACCESS_TOKEN_TTL_MINUTES", 60),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPEmail:    os.Getenv("SMTP_EMAIL"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
