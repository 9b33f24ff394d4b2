package config

const (
	defaultDataDir           = "~/.local/share/grocer"
	defaultLogDir            = "~/.local/share/grocer/logs"
	defaultStoreFileName     = "grocer.db"
	defaultBusyTimeoutMS     = 5000
	defaultList              = "Grocery"
	defaultMinListSimilarity = 0.3
	defaultHistoryLimit      = 20
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Store: Store{
			FileName:      defaultStoreFileName,
			BusyTimeoutMS: defaultBusyTimeoutMS,
		},
		Voice: Voice{
			DefaultList:       defaultList,
			MinListSimilarity: defaultMinListSimilarity,
			HistoryLimit:      defaultHistoryLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
