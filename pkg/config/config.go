// Package config provides configuration management for the temponet service.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Network Network       `mapstructure:"network"`
	Archive ArchiveConfig `mapstructure:"archive"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

// Network holds the default event-graph parameters used when a CLI
// invocation doesn't override them explicitly.
type Network struct {
	Dt           float64 `mapstructure:"dt"`
	Seed         uint64  `mapstructure:"seed"`
	Significance float64 `mapstructure:"significance"`
	Precision    uint    `mapstructure:"precision"`
	MaxWorker    int     `mapstructure:"max_worker"`
	OutDir       string  `mapstructure:"out_dir"`
}

// ArchiveConfig holds the optional run-archive database connection,
// recording each analysis run's parameters and results for later lookup.
type ArchiveConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Type     string `mapstructure:"type"` // postgres, mysql, or sqlite
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	MaxConns int    `mapstructure:"max_conns"`
}

// StorageConfig holds object storage configuration for uploading run
// output files.
type StorageConfig struct {
	Type      string `mapstructure:"type"` // cos or local
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	SecretID  string `mapstructure:"secret_id"`
	SecretKey string `mapstructure:"secret_key"`
	Domain    string `mapstructure:"domain"`     // e.g., "myqcloud.com"
	Scheme    string `mapstructure:"scheme"`     // e.g., "https" or "http"
	LocalPath string `mapstructure:"local_path"` // for local storage
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"` // json or text
}

// Load reads configuration from the specified file path.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/temponet")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("Config file not found, using defaults")
		} else if os.IsNotExist(err) {
			fmt.Printf("Config file %s not found, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromReader loads configuration from raw bytes (useful for testing).
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("network.dt", 86400.0)
	v.SetDefault("network.seed", 1)
	v.SetDefault("network.significance", 0.05)
	v.SetDefault("network.precision", 14)
	v.SetDefault("network.max_worker", 5)
	v.SetDefault("network.out_dir", "./out")

	v.SetDefault("archive.enabled", false)
	v.SetDefault("archive.type", "sqlite")
	v.SetDefault("archive.host", "localhost")
	v.SetDefault("archive.port", 5432)
	v.SetDefault("archive.max_conns", 10)

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "./storage")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output_path", "./logs")
	v.SetDefault("log.format", "text")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Network.Dt <= 0 {
		return fmt.Errorf("network.dt must be positive, got %v", c.Network.Dt)
	}
	if c.Network.Significance <= 0 || c.Network.Significance > 1 {
		return fmt.Errorf("network.significance must be in (0, 1], got %v", c.Network.Significance)
	}
	if c.Archive.Enabled {
		switch c.Archive.Type {
		case "postgres", "mysql", "sqlite":
		default:
			return fmt.Errorf("unsupported archive type: %s", c.Archive.Type)
		}
	}
	return nil
}

// EnsureOutDir creates the run output directory if it doesn't exist.
func (c *Config) EnsureOutDir() error {
	if c.Network.OutDir == "" {
		return nil
	}
	return os.MkdirAll(c.Network.OutDir, 0755)
}

// RunDir returns the output directory path for one run, named by its
// archive UUID.
func (c *Config) RunDir(runUUID string) string {
	return filepath.Join(c.Network.OutDir, runUUID)
}
