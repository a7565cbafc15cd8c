package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// structuredFileConfig mirrors [StructuredConfig] for JSON and YAML files.
type structuredFileConfig struct {
	App struct {
		ValidationMode string `json:"validation_mode" yaml:"validation_mode"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver" yaml:"driver"`
		DSN    string `json:"dsn" yaml:"dsn"`
		Key    string `json:"key" yaml:"key"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Log struct {
		Level string `json:"level" yaml:"level"`
		File  string `json:"file" yaml:"file"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

func parseConfigFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg structuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			ValidationMode: fileCfg.App.ValidationMode,
		},
		Storage: Storage{
			Driver: fileCfg.Storage.Driver,
			DSN:    fileCfg.Storage.DSN,
			Key:    fileCfg.Storage.Key,
		},
		Log: Log{
			Level: fileCfg.Log.Level,
			File:  fileCfg.Log.File,
		},
	}, nil
}
