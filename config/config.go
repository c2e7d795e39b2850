package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL          string
	RedisAddress   string
	SymmetricKey   string
	SentryDSN      string
	Port           string
	AllowedOrigins []string
}
