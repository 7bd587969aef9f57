package config

import "os"

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
	AI     AIConfig
}

type ServerConfig struct {
	Addr           string
	AllowedOrigins string
}

type MongoConfig struct {
	URI      string
	Database string
}

type AuthConfig struct {
	// Signing secrets are validated by token.NewCodec; startup fails
	// when either one is absent.
	AccessSecret  string
	RefreshSecret string
	CookieSecure  string
	CookieDomain  string
}

type AIConfig struct {
	APIKey string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Addr:           getenv("LISTEN_ADDR", ":8080"),
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Mongo: MongoConfig{
			URI:      getenv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getenv("MONGODB_DATABASE", "habitloop"),
		},
		Auth: AuthConfig{
			AccessSecret:  os.Getenv("JWT_SECRET"),
			RefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
			CookieSecure:  os.Getenv("AUTH_COOKIE_SECURE"),
			CookieDomain:  os.Getenv("AUTH_COOKIE_DOMAIN"),
		},
		AI: AIConfig{
			APIKey: os.Getenv("AI_API_KEY"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
