package config

import "os"

type Config struct {
	DatabaseURL  string
	JWTSecret    string
	Port         string
	SeedFixtures bool
}

func Load() *Config {
	return &Config{
		DatabaseURL:  getEnv("DATABASE_URL", "surgitrack.db"),
		JWTSecret:    getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		Port:         getEnv("PORT", "8080"),
		SeedFixtures: getEnv("SEED_FIXTURES", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
