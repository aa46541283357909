package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all application settings. Every key can be set through the
// environment variable of the same name in upper case (DB_URL, PORT, ...).
type Config struct {
	AppEnv            string   `mapstructure:"app_env" validate:"required"`
	Port              int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	DBURL             string   `mapstructure:"db_url" validate:"required"`
	LogLevel          string   `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat         string   `mapstructure:"log_format" validate:"required,oneof=text json"`
	CORSOrigins       []string `mapstructure:"cors_origins" validate:"required,min=1"`
	GenerateRateLimit int      `mapstructure:"generate_rate_limit" validate:"gte=0"`
	ListLimit         int      `mapstructure:"list_limit" validate:"gt=0"`
	LocalStore        string   `mapstructure:"local_store" validate:"required"`
	APIURL            string   `mapstructure:"api_url" validate:"required,url"`
}

// IsDevelopment reports whether .env files should be honoured.
func (c Config) IsDevelopment() bool {
	return c.AppEnv != "production"
}

// New returns a viper instance with every default registered, so environment
// variables are picked up by Unmarshal.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("app_env", "development")
	v.SetDefault("port", 8080)
	v.SetDefault("db_url", "sqlite://flashnotes.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("generate_rate_limit", 30)
	v.SetDefault("list_limit", 50)
	v.SetDefault("local_store", "flashnotes-local.db")
	v.SetDefault("api_url", "http://localhost:8080")
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads .env outside production. A missing file is not an error.
func LoadDotEnv() {
	if os.Getenv("APP_ENV") == "production" {
		return
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("could not load .env file: %v", err)
	}
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
