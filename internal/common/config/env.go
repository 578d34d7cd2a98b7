package config

import (
	"errors"
	"os"
)

// Config represents the application configuration
// This struct contains all configuration parameters for the application
type Config struct {
	// AWS-specific configuration
	AWSRegion         string
	DynamoDBTableName string

	// Environment info
	Environment string

	// DefaultBookID is the book served when a request names none.
	DefaultBookID string

	// GSTHomeState is the registered place of business used as the
	// source state when a tax request omits one.
	GSTHomeState string

	// LogLevel overrides the environment-derived logger level.
	LogLevel string

	// Lambda detection flag (cached)
	isLambda bool
}

// LoadFromEnv loads the configuration from environment variables
func LoadFromEnv() (*Config, error) {
	// Create a new config object and load values from environment
	cfg := &Config{}

	// Required environment variables
	cfg.DynamoDBTableName = os.Getenv("DYNAMODB_TABLE_NAME")
	if cfg.DynamoDBTableName == "" {
		return nil, errors.New("DYNAMODB_TABLE_NAME environment variable is required")
	}

	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "dev" // Default to dev environment
	}

	// AWS Region
	cfg.AWSRegion = os.Getenv("AWS_REGION")
	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "ap-south-1" // Default fallback
	}

	cfg.DefaultBookID = os.Getenv("LEDGER_BOOK_ID")
	if cfg.DefaultBookID == "" {
		cfg.DefaultBookID = "default"
	}

	// Optional; empty means tax requests must carry their own source
	// state.
	cfg.GSTHomeState = os.Getenv("GST_HOME_STATE")

	cfg.LogLevel = os.Getenv("LOG_LEVEL")

	// Check if running in Lambda
	cfg.isLambda = os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""

	return cfg, nil
}

func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}

// IsLambda returns true if the application is running in AWS Lambda
func (c *Config) IsLambda() bool {
	return c.isLambda
}
