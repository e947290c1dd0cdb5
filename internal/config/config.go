// Package config loads the service settings from the environment and an
// optional YAML file, and sets up logging.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all settings of the service.
type Config struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	AWSRegion          string `mapstructure:"aws_region"`
	AWSAccessKeyID     string `mapstructure:"aws_access_key_id"`
	AWSSecretAccessKey string `mapstructure:"aws_secret_access_key"`
	DynamoDBEndpoint   string `mapstructure:"dynamodb_endpoint"`

	EstimationsTable       string `mapstructure:"estimations_table"`
	ReferenceProjectsTable string `mapstructure:"reference_projects_table"`

	CostSheetsDir      string        `mapstructure:"cost_sheets_dir"`
	CostSheetHeaderRow int           `mapstructure:"cost_sheet_header_row"`
	MaxConcurrentReads int           `mapstructure:"max_concurrent_reads"`
	SessionTTL         time.Duration `mapstructure:"session_ttl"`
}

var defaults = map[string]any{
	"port":                     "8080",
	"log_level":                "info",
	"log_file":                 "logs/devis-batiment.log",
	"aws_region":               "us-east-1",
	"aws_access_key_id":        "local",
	"aws_secret_access_key":    "local",
	"dynamodb_endpoint":        "",
	"estimations_table":        "estimations",
	"reference_projects_table": "reference_projects",
	"cost_sheets_dir":          "data/cost-sheets",
	"cost_sheet_header_row":    1,
	"max_concurrent_reads":     8,
	"session_ttl":              "2h",
}

// Load reads the settings. Environment variables (upper case keys, e.g.
// SESSION_TTL) override the YAML file at configPath, which overrides the
// defaults. An empty configPath skips the file.
func Load(configPath string) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct, %s", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.CostSheetHeaderRow < 1 {
		return fmt.Errorf("cost_sheet_header_row must be >= 1, got %d", c.CostSheetHeaderRow)
	}
	if c.MaxConcurrentReads < 1 {
		return fmt.Errorf("max_concurrent_reads must be >= 1, got %d", c.MaxConcurrentReads)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive, got %s", c.SessionTTL)
	}
	return nil
}

func (c Config) Addr() string { return ":" + c.Port }
