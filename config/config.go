package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort     string
	MetricsPort     string
	Environment     string
	MongoDBConfig   MongoDBConfig
	UserSvcConfig   SvcConfig
	ClientSvcConfig SvcConfig
	TracingConfig   TracingConfig
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

// SvcConfig points at a downstream identity service. Token is the static
// bearer token attached to lookups when set.
type SvcConfig struct {
	BaseURL string
	Token   string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		UserSvcConfig: SvcConfig{
			BaseURL: os.Getenv("USER_SVC_URL"),
			Token:   os.Getenv("USER_SVC_TOKEN"),
		},
		ClientSvcConfig: SvcConfig{
			BaseURL: os.Getenv("CLIENT_SVC_URL"),
			Token:   os.Getenv("CLIENT_SVC_TOKEN"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	return &conf
}
