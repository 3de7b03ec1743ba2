package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverDynamoDB = "dynamodb"
)

type Config struct {
	AppEnv       string  `envconfig:"APP_ENV"`
	Port         int     `envconfig:"PORT" default:"5555"`
	SentryDSN    string  `envconfig:"SENTRY_DSN"`
	AllowOrigins string  `envconfig:"ALLOW_ORIGINS"`
	Debug        bool    `envconfig:"DEBUG"`
	LogFile      string  `envconfig:"LOG_FILE"`
	RateLimit    float64 `envconfig:"RATE_LIMIT" default:"20"`

	DB struct {
		Driver    string `envconfig:"DB_DRIVER" default:"postgres"`
		Name      string `envconfig:"DB_NAME"`
		Host      string `envconfig:"DB_HOST"`
		Port      int    `envconfig:"DB_PORT"`
		User      string `envconfig:"DB_USER"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
		Path      string `envconfig:"DB_PATH" default:"app.db"`
	}
	DynamoDB struct {
		Region       string `envconfig:"DDB_REGION"`
		Endpoint     string `envconfig:"DDB_ENDPOINT"`
		AccessKey    string `envconfig:"DDB_ACCESS_KEY"`
		SecretKey    string `envconfig:"DDB_SECRET_KEY"`
		SessionToken string `envconfig:"DDB_SESSION_TOKEN"`
		MoviesTable  string `envconfig:"DDB_MOVIES_TABLE" default:"movies"`
		ActorsTable  string `envconfig:"DDB_ACTORS_TABLE" default:"actors"`
		CreditsTable string `envconfig:"DDB_CREDITS_TABLE" default:"credits"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	switch cfg.DB.Driver {
	case DriverPostgres, DriverSQLite, DriverDynamoDB:
	default:
		return nil, fmt.Errorf("load config error: unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	return cfg, nil
}
