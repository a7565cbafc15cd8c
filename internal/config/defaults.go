package config

const (
	defaultStorageKey = "accounts"
	defaultSQLiteDSN  = "accounts.db"
	defaultLogLevel   = "info"
	defaultLogFile    = "accounts-keeper.log"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ValidationMode: ValidationExisting,
		},
		Storage: Storage{
			Driver: DriverSQLite,
			DSN:    defaultSQLiteDSN,
			Key:    defaultStorageKey,
		},
		Log: Log{
			Level: defaultLogLevel,
			File:  defaultLogFile,
		},
	}
}
