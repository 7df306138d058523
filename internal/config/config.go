package config

import "os"

// Config holds the service configuration, loaded from the environment
type Config struct {
	MongoURI    string
	MongoDB     string
	RedisAddr   string
	HTTPPort    string
	SiteHost    string
	IndexNowKey string
}

// Load reads configuration from environment variables with local defaults
func Load() *Config {
	return &Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "irindex"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:    getEnv("PORT", "8080"),
		SiteHost:    getEnv("SITE_HOST", ""),
		IndexNowKey: getEnv("INDEXNOW_KEY", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
