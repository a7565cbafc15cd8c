package config

import (
	"flag"
	"fmt"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-driver storage driver (sqlite, bolt, file, memory)
//	-d storage DSN (database or file path)
//	-key storage slot key
//	-validation add gate mode (existing, strict)
//	-log-level zerolog level
//	-log-file log file path
//	-c/-config JSON or YAML config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("accounts-keeper", flag.ContinueOnError)

	var (
		driver         string
		dsn            string
		key            string
		validationMode string
		logLevel       string
		logFile        string
		configPath     string
	)

	fs.StringVar(&driver, "driver", "", "Storage driver: sqlite, bolt, file or memory")
	fs.StringVar(&dsn, "d", "", "Storage DSN (database or file path)")
	fs.StringVar(&key, "key", "", "Storage slot key")
	fs.StringVar(&validationMode, "validation", "", "Add validation mode: existing or strict")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ValidationMode: validationMode,
		},
		Storage: Storage{
			Driver: driver,
			DSN:    dsn,
			Key:    key,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		ConfigFilePath: configPath,
	}, nil
}
