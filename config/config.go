package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// GroupConfig one configured ticker group
type GroupConfig struct {
	Name    string   `toml:"name" validate:"required"`
	Tickers []string `toml:"tickers" validate:"min=1"`
}

// Config global config
type Config struct {
	Group string `toml:"group" default:"US Banks" validate:"required"`
	Range string `toml:"range" default:"max" validate:"oneof=1d 5d 1mo 3mo 6mo 1y 2y 5y 10y ytd max"`

	Output struct {
		Mode   string `toml:"mode" default:"local" validate:"oneof=local s3 cos redis"`
		Path   string `toml:"path"`
		Bucket string `toml:"bucket"`
		Key    string `toml:"key"`
	} `toml:"output"`

	AWS struct {
		AccessKeyID     string `toml:"access_key_id"`
		SecretAccessKey string `toml:"secret_access_key"`
		Region          string `toml:"region" default:"us-east-1"`
	} `toml:"aws"`

	Cos struct {
		BucketURL string `toml:"bucket_url"`
		SecretID  string `toml:"secret_id"`
		SecretKey string `toml:"secret_key"`
	} `toml:"cos"`

	Redis struct {
		Address  string `toml:"address" default:"localhost:6379"`
		Password string `toml:"password"`
	} `toml:"redis"`

	Groups []GroupConfig `toml:"groups" validate:"dive"`

	Journal struct {
		Enabled bool   `toml:"enabled"`
		Path    string `toml:"path" default:"journal"`
	} `toml:"journal"`

	Nsq struct {
		Broker  string `toml:"broker"`
		TLSCert string `toml:"tls_cert"`
		TLSKey  string `toml:"tls_key"`
		Topic   string `toml:"topic" default:"tickerboard"`
	} `toml:"nsq"`

	Log struct {
		Level string `toml:"level" default:"info" validate:"oneof=debug info warn error"`
		File  string `toml:"file"`
	} `toml:"log"`
}

var (
	currentConfig *Config
)

// Get get current config
func Get() *Config {
	return currentConfig
}

// Load parse config from an optional toml file, then apply environment overrides.
// A .env file next to the process is honored the way the original deployment did.
func Load(filePath string) (*Config, error) {
	godotenv.Load()

	currentConfig = new(Config)
	err := defaults.Set(currentConfig)
	if err != nil {
		return nil, err
	}

	if filePath != "" {
		_, err = toml.DecodeFile(filePath, currentConfig)
		if err != nil {
			return nil, err
		}
	}

	currentConfig.getFromEnvironmentVariable()
	currentConfig.normalize()

	return currentConfig, currentConfig.Valid()
}

// getFromEnvironmentVariable apply recognized environment overrides
func (s *Config) getFromEnvironmentVariable() {
	if v, ok := lookup("TICKER_GROUP"); ok {
		s.Group = v
	}

	if v, ok := lookup("DATE_RANGE"); ok {
		s.Range = v
	}

	if v, ok := lookup("OUTPUT_MODE"); ok {
		s.Output.Mode = v
	}

	if v, ok := lookup("OUTPUT_PATH"); ok {
		s.Output.Path = v
	}

	if v, ok := lookup("OUTPUT_BUCKET"); ok {
		s.Output.Bucket = v
	}

	// alias kept from the original deployment
	if v, ok := lookup("AWS_BUCKET_NAME"); ok {
		s.Output.Bucket = v
	}

	if v, ok := lookup("OUTPUT_KEY"); ok {
		s.Output.Key = v
	}

	if v, ok := lookup("AWS_ACCESS_KEY_ID"); ok {
		s.AWS.AccessKeyID = v
	}

	if v, ok := lookup("AWS_SECRET_ACCESS_KEY"); ok {
		s.AWS.SecretAccessKey = v
	}

	if v, ok := lookup("AWS_DEFAULT_REGION"); ok {
		s.AWS.Region = v
	}
}

func lookup(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(key))
	return value, value != ""
}

// normalize fold aliases into canonical values
func (s *Config) normalize() {
	s.Output.Mode = strings.ToLower(strings.TrimSpace(s.Output.Mode))
	if s.Output.Mode == "cloud" {
		s.Output.Mode = "s3"
	}

	s.Range = strings.ToLower(strings.TrimSpace(s.Range))
}

// Valid validate config
func (s *Config) Valid() error {
	return validator.New().Struct(s)
}
