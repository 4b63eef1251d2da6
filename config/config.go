package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment   string
	ServicePort   string
	MetricsPort   string
	AIConfig      AIConfig
	StorageConfig StorageConfig
	TracingConfig TracingConfig
}

type AIConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

type StorageConfig struct {
	CatalogFile string
	UploadsDir  string
	DataDir     string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		Environment: os.Getenv("ENVIRONMENT"),
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		AIConfig: AIConfig{
			APIKey:  os.Getenv("AI_API_KEY"),
			BaseURL: os.Getenv("AI_BASE_URL"),
			Model:   os.Getenv("AI_MODEL"),
		},
		StorageConfig: StorageConfig{
			CatalogFile: os.Getenv("CATALOG_FILE"),
			UploadsDir:  os.Getenv("UPLOADS_DIR"),
			DataDir:     os.Getenv("DATA_DIR"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("TRACING_COLLECTOR_HOST"),
		},
	}

	if conf.ServicePort == "" {
		conf.ServicePort = "3000"
	}
	if conf.MetricsPort == "" {
		conf.MetricsPort = "3001"
	}
	if conf.StorageConfig.CatalogFile == "" {
		conf.StorageConfig.CatalogFile = "products.json"
	}
	if conf.StorageConfig.UploadsDir == "" {
		conf.StorageConfig.UploadsDir = "uploads"
	}
	if conf.StorageConfig.DataDir == "" {
		conf.StorageConfig.DataDir = "data"
	}

	timeoutSeconds, err := strconv.Atoi(os.Getenv("AI_TIMEOUT_SECONDS"))
	if err != nil || timeoutSeconds <= 0 {
		timeoutSeconds = 60
	}
	conf.AIConfig.TimeoutSeconds = timeoutSeconds

	return &conf
}
