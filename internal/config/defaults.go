package config

const (
	defaultConfigPath   = "~/.config/retime/config.toml"
	projectConfigName   = "retime.toml"
	defaultDirection    = "forward"
	defaultWorkers      = 1
	maxWorkers          = 64
	defaultCharset      = "utf-8"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultHistoryPath  = "~/.local/share/retime/history.db"
	defaultHistoryState = false
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Retime: Retime{
			Direction: defaultDirection,
			Workers:   defaultWorkers,
			Charset:   defaultCharset,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: defaultHistoryState,
			Path:    defaultHistoryPath,
		},
	}
}
