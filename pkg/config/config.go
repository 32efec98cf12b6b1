// Package config provides configuration types and loading for the mock
// service.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/getmockd/awsmock/pkg/tagging"
)

// Defaults applied when fields are unset.
const (
	DefaultPort      = 5000
	DefaultRegion    = "us-east-1"
	DefaultAccountID = "123456789012"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrEmptyFile    = errors.New("configuration file is empty")
)

// Config is the top-level server configuration.
type Config struct {
	// Host is the listen address. Empty means all interfaces.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	// Port is the listen port.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// DefaultRegion is used when a request carries no SigV4 credential scope.
	DefaultRegion string `json:"defaultRegion,omitempty" yaml:"defaultRegion,omitempty"`
	// DefaultAccountID is the mock account requests are served under.
	DefaultAccountID string `json:"defaultAccountId,omitempty" yaml:"defaultAccountId,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	// LogFormat is text or json.
	LogFormat string `json:"logFormat,omitempty" yaml:"logFormat,omitempty"`

	// Seed pre-registers recognizers at startup, for test fixtures.
	Seed []SeedRecognizer `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// SeedRecognizer describes one recognizer to pre-register. Region and
// AccountID default to the server's partition when empty.
type SeedRecognizer struct {
	Region            string              `json:"region,omitempty" yaml:"region,omitempty"`
	AccountID         string              `json:"accountId,omitempty" yaml:"accountId,omitempty"`
	RecognizerName    string              `json:"recognizerName" yaml:"recognizerName"`
	VersionName       string              `json:"versionName,omitempty" yaml:"versionName,omitempty"`
	LanguageCode      string              `json:"languageCode,omitempty" yaml:"languageCode,omitempty"`
	DataAccessRoleARN string              `json:"dataAccessRoleArn,omitempty" yaml:"dataAccessRoleArn,omitempty"`
	InputDataConfig   map[string]any      `json:"inputDataConfig,omitempty" yaml:"inputDataConfig,omitempty"`
	VolumeKMSKeyID    string              `json:"volumeKmsKeyId,omitempty" yaml:"volumeKmsKeyId,omitempty"`
	VPCConfig         map[string][]string `json:"vpcConfig,omitempty" yaml:"vpcConfig,omitempty"`
	ModelKMSKeyID     string              `json:"modelKmsKeyId,omitempty" yaml:"modelKmsKeyId,omitempty"`
	ModelPolicy       string              `json:"modelPolicy,omitempty" yaml:"modelPolicy,omitempty"`
	Tags              []tagging.Tag       `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		Port:             DefaultPort,
		DefaultRegion:    DefaultRegion,
		DefaultAccountID: DefaultAccountID,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// ApplyDefaults fills unset fields in place.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.DefaultRegion == "" {
		c.DefaultRegion = DefaultRegion
	}
	if c.DefaultAccountID == "" {
		c.DefaultAccountID = DefaultAccountID
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range (1-65535)", c.Port)
	}
	for i, seed := range c.Seed {
		if seed.RecognizerName == "" {
			return fmt.Errorf("seed[%d]: recognizerName cannot be empty", i)
		}
	}
	return nil
}

// LoadFromFile reads a Config from a JSON or YAML file. The format is
// auto-detected by extension (.yaml/.yml for YAML, otherwise JSON).
// Defaults are applied and the result is validated.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		return ParseYAML(data)
	}
	return ParseJSON(data)
}

// ParseYAML parses a Config from YAML bytes.
func ParseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return finish(&cfg)
}

// ParseJSON parses a Config from JSON bytes.
func ParseJSON(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
