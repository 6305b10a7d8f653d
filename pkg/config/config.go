package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	GitHub GitHubConfig
	Stats  StatsConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type GitHubConfig struct {
	Token             string
	GraphQLURL        string
	RequestsPerSecond float64
	Burst             int
}

type StatsConfig struct {
	TopLanguages       int
	PerPageDefault     int
	PerPageMax         int
	NetworkConcurrency int
}

// Load reads configuration from a .env file and environment variables.
// The result is passed explicitly to every consumer; there is no package
// global.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 30),
		},
		GitHub: GitHubConfig{
			Token:             getEnv("GITHUB_TOKEN", ""),
			GraphQLURL:        getEnv("GITHUB_GRAPHQL_URL", "https://api.github.com/graphql"),
			RequestsPerSecond: getEnvAsFloat("GITHUB_REQUESTS_PER_SECOND", 10),
			Burst:             getEnvAsInt("GITHUB_BURST", 5),
		},
		Stats: StatsConfig{
			TopLanguages:       getEnvAsInt("TOP_LANGUAGES", 5),
			PerPageDefault:     getEnvAsInt("PER_PAGE_DEFAULT", 10),
			PerPageMax:         getEnvAsInt("PER_PAGE_MAX", 50),
			NetworkConcurrency: getEnvAsInt("NETWORK_CONCURRENCY", 5),
		},
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat gets an environment variable as float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
