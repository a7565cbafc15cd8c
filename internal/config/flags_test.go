package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-driver", "file",
		"-d", "accounts.json",
		"-key", "slot",
		"-validation", "strict",
		"-log-level", "debug",
		"-log-file", "out.log",
		"-config", "cfg.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{
		App:            App{ValidationMode: "strict"},
		Storage:        Storage{Driver: "file", DSN: "accounts.json", Key: "slot"},
		Log:            Log{Level: "debug", File: "out.log"},
		ConfigFilePath: "cfg.yaml",
	}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "short.json"})
	require.NoError(t, err)
	assert.Equal(t, "short.json", cfg.ConfigFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := parseFlags([]string{"-unknown"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}
