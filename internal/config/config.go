package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Buckets struct {
	TeamImages     string
	ServiceImages  string
	ProjectImages  string
	ProjectReports string
	ApplicationCVs string
}

type Config struct {
	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseJWTSecret      string

	// Storage buckets, one per file kind
	Buckets Buckets

	// Database
	DatabaseURL string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	// Optional .env for local development; deployments use the real environment.
	_ = godotenv.Load()

	cfg := &Config{
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),

		Buckets: Buckets{
			TeamImages:     getEnv("BUCKET_TEAM_IMAGES", "team-images"),
			ServiceImages:  getEnv("BUCKET_SERVICE_IMAGES", "service-images"),
			ProjectImages:  getEnv("BUCKET_PROJECT_IMAGES", "project-images"),
			ProjectReports: getEnv("BUCKET_PROJECT_REPORTS", "project-reports"),
			ApplicationCVs: getEnv("BUCKET_APPLICATION_CVS", "application-cvs"),
		},

		DatabaseURL: getEnv("DATABASE_URL", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabasePublishableKey == "" {
		return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
