package config

import "github.com/spf13/viper"

// Environment and configuration keys
const (
	// IgnoreCaseEnv enables case-insensitive matching when present, whatever its value
	IgnoreCaseEnv = "IGNORE_CASE"
	IgnoreCaseKey = "ignore_case"

	LogLevelKey   = "logging.level"
	LogLevelEnv   = "MINIGREP_LOG_LEVEL"
	LogFormatKey  = "logging.format"
	LogFormatEnv  = "MINIGREP_LOG_FORMAT"
	DefaultLevel  = "warn"
	DefaultFormat = "text"
)

// SetViperDefaults sets all default configuration values on v.
// IgnoreCaseKey has no default so that IsSet reflects the environment only.
func SetViperDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault(LogLevelKey, DefaultLevel)
	v.SetDefault(LogFormatKey, DefaultFormat)
}

// GetDefaultConfig returns the configuration used before any input is applied
func GetDefaultConfig() *Config {
	return &Config{
		LogLevel:  DefaultLevel,
		LogFormat: DefaultFormat,
	}
}
