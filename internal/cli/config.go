package cli

import (
	"github.com/computerscienceiscool/minigrep/internal/config"
	"github.com/spf13/viper"
)

// newViper returns a viper instance wired to the environment. Only the
// variables bound here are consulted.
func newViper() *viper.Viper {
	v := viper.New()
	config.SetViperDefaults(v)

	// Presence alone toggles IGNORE_CASE, so an empty value must count
	v.AllowEmptyEnv(true)
	_ = v.BindEnv(config.IgnoreCaseKey, config.IgnoreCaseEnv)
	_ = v.BindEnv(config.LogLevelKey, config.LogLevelEnv)
	_ = v.BindEnv(config.LogFormatKey, config.LogFormatEnv)

	return v
}

// buildConfig constructs a config.Config from validated positional
// arguments and viper values
func buildConfig(v *viper.Viper, args []string) (*config.Config, error) {
	if err := validateArgs(nil, args); err != nil {
		return nil, err
	}

	cfg := config.GetDefaultConfig()
	cfg.Query = args[0]
	cfg.FilePath = args[1]
	cfg.IgnoreCase = v.IsSet(config.IgnoreCaseKey)

	if level := v.GetString(config.LogLevelKey); level != "" {
		cfg.LogLevel = level
	}
	if format := v.GetString(config.LogFormatKey); format != "" {
		cfg.LogFormat = format
	}

	return cfg, nil
}
