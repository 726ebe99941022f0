// Package config loads sheetdash configuration from a YAML file, .env and SHEETDASH_* variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"
	"github.com/ukaji3/sheetdash-go/pkg/sheetdash/parser"
)

const (
	configName = "sheetdash"
	envPrefix  = "SHEETDASH"
)

// Config holds all configuration values.
type Config struct {
	Sources         []models.Source `mapstructure:"sources" validate:"unique=PackageID,dive"`
	Worksheet       string          `mapstructure:"worksheet" validate:"required"`
	CacheTTL        time.Duration   `mapstructure:"cache_ttl" validate:"gt=0"`
	RefreshInterval time.Duration   `mapstructure:"refresh_interval" validate:"gte=0"`
	HTTPTimeout     time.Duration   `mapstructure:"http_timeout" validate:"gt=0"`
	MaxBodyBytes    int64           `mapstructure:"max_body_bytes" validate:"gt=0"`

	Log        LogConfig        `mapstructure:"log"`
	Compliance ComplianceConfig `mapstructure:"compliance"`
	IPC        IPCConfig        `mapstructure:"ipc"`
	Headers    HeadersConfig    `mapstructure:"headers"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
	// File, when set, receives a JSON copy of every record.
	File string `mapstructure:"file"`
}

// ComplianceConfig locates the compliance answers in each workbook.
type ComplianceConfig struct {
	Worksheet string `mapstructure:"worksheet" validate:"required"`
	Row       int    `mapstructure:"row" validate:"gte=0"`
}

// IPCConfig locates the certificate cells in the designated workbook.
type IPCConfig struct {
	// Source is the package id treated as authoritative for IPC. Empty means the first source.
	Source    string `mapstructure:"source"`
	Worksheet string `mapstructure:"worksheet" validate:"required"`
	Range     string `mapstructure:"range" validate:"required"`
}

// HeadersConfig overrides accepted header spellings. Fields left empty keep the defaults.
type HeadersConfig struct {
	parser.TaskHeaders       `mapstructure:",squash"`
	parser.ComplianceHeaders `mapstructure:",squash"`
}

// IPCRange parses IPC.Range.
func (c Config) IPCRange() (models.IPCRange, error) {
	return parser.ParseIPCRange(c.IPC.Range)
}

var validate = validator.New()

// setDefaults registers default values on v.
func setDefaults(v *viper.Viper) {
	v.SetDefault("worksheet", models.DefaultWorksheet)
	v.SetDefault("cache_ttl", "5m")
	v.SetDefault("refresh_interval", "0s")
	v.SetDefault("http_timeout", "30s")
	v.SetDefault("max_body_bytes", 32<<20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("compliance.worksheet", "Compliance")
	v.SetDefault("compliance.row", 0)
	v.SetDefault("ipc.source", "")
	v.SetDefault("ipc.worksheet", "IPC")
	v.SetDefault("ipc.range", "B2:G2")
}

// Load reads configuration. When path is empty, sheetdash.yaml is searched in the working
// directory and $HOME/.config/sheetdash; a missing file is not an error.
func Load(path string) (Config, error) {
	// It's okay if .env doesn't exist.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/sheetdash")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks struct constraints, the IPC range and that ipc.source names a configured source.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.IPCRange(); err != nil {
		return fmt.Errorf("invalid config: ipc.range: %w", err)
	}
	if c.IPC.Source != "" && len(c.Sources) > 0 && !slices.ContainsFunc(c.Sources, func(s models.Source) bool {
		return s.PackageID == c.IPC.Source
	}) {
		return fmt.Errorf("invalid config: ipc.source %q is not a configured package_id", c.IPC.Source)
	}
	return nil
}
