package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents the configuration required for stac-fetch
type Config struct {
	BucketName          string        `envconfig:"BUCKET_NAME"`
	AwsRegion           string        `envconfig:"AWS_REGION"`
	LocalObjectStore    string        `envconfig:"LOCAL_OBJECT_STORE"`
	MinioAccessKey      string        `envconfig:"MINIO_ACCESS_KEY"      json:"-"`
	MinioSecretKey      string        `envconfig:"MINIO_SECRET_KEY"      json:"-"`
	ArchiveBaseURL      string        `envconfig:"ARCHIVE_BASE_URL"`
	TargetRoot          string        `envconfig:"TARGET_ROOT"`
	FetchWorkers        int           `envconfig:"FETCH_WORKERS"`
	FetchRetries        uint64        `envconfig:"FETCH_RETRIES"`
	FetchBackoffInitial time.Duration `envconfig:"FETCH_BACKOFF_INITIAL"`
	FetchBackoffMax     time.Duration `envconfig:"FETCH_BACKOFF_MAX"`
	SkipExisting        bool          `envconfig:"SKIP_EXISTING"`
	TracingEnabled      bool          `envconfig:"TRACING_ENABLED"`
	EnableMongo         bool          `envconfig:"ENABLE_MONGO"`
	MongoConfig         MongoConfig
}

// MongoConfig carries the settings for the optional mongo document store.
type MongoConfig struct {
	BindAddr   string `envconfig:"MONGODB_BIND_ADDR"   json:"-"`
	Database   string `envconfig:"MONGODB_DATABASE"`
	Collection string `envconfig:"MONGODB_COLLECTION"`
	Username   string `envconfig:"MONGODB_USERNAME"    json:"-"`
	Password   string `envconfig:"MONGODB_PASSWORD"    json:"-"`
}

var cfg *Config

// Get retrieves the config from the environment for stac-fetch
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		BucketName:          "climate-assets",
		AwsRegion:           "eu-west-2",
		LocalObjectStore:    "",
		ArchiveBaseURL:      "https://archive.ceda.ac.uk/data",
		TargetRoot:          "",
		FetchWorkers:        4,
		FetchRetries:        3,
		FetchBackoffInitial: 500 * time.Millisecond,
		FetchBackoffMax:     5 * time.Second,
		SkipExisting:        true,
		TracingEnabled:      false,
		EnableMongo:         false,
		MongoConfig: MongoConfig{
			BindAddr:   "localhost:27017",
			Database:   "catalogs",
			Collection: "documents",
		},
	}

	return cfg, envconfig.Process("", cfg)
}
