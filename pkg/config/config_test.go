package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeTemp(t, "awsmock.yaml", `
port: 4000
defaultRegion: eu-west-1
logLevel: debug
seed:
  - recognizerName: rec1
    languageCode: en
    tags:
      - key: env
        value: test
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "eu-west-1", cfg.DefaultRegion)
	assert.Equal(t, DefaultAccountID, cfg.DefaultAccountID, "unset account falls back to default")
	assert.Equal(t, "debug", cfg.LogLevel)
	require.Len(t, cfg.Seed, 1)
	assert.Equal(t, "rec1", cfg.Seed[0].RecognizerName)
	require.Len(t, cfg.Seed[0].Tags, 1)
	assert.Equal(t, "env", cfg.Seed[0].Tags[0].Key)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeTemp(t, "awsmock.json", `{"port": 4000, "defaultAccountId": "999999999999"}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "999999999999", cfg.DefaultAccountID)
	assert.Equal(t, DefaultRegion, cfg.DefaultRegion)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadFromFile_Empty(t *testing.T) {
	path := writeTemp(t, "empty.yaml", "")
	_, err := LoadFromFile(path)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ParseYAML([]byte("port: [not a port"))
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := ParseJSON([]byte("{"))
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"port too low", func(c *Config) { c.Port = -1 }, true},
		{"port too high", func(c *Config) { c.Port = 70000 }, true},
		{"seed without name", func(c *Config) { c.Seed = []SeedRecognizer{{}} }, true},
		{"seed with name", func(c *Config) { c.Seed = []SeedRecognizer{{RecognizerName: "rec1"}} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultRegion, cfg.DefaultRegion)
	assert.Equal(t, DefaultAccountID, cfg.DefaultAccountID)
	assert.NoError(t, cfg.Validate())
}

func TestErrorsAreWrapped(t *testing.T) {
	path := writeTemp(t, "bad.json", "{")
	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidJSON))
}
