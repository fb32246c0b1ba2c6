package app

import (
	"fmt"
	"io"

	"github.com/computerscienceiscool/minigrep/internal/config"
	"github.com/spf13/afero"
)

// Bootstrap initializes and returns a configured App. Results go to stdout,
// logs to stderr.
func Bootstrap(cfg *config.Config, fs afero.Fs, stdout, stderr io.Writer) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("missing configuration")
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		return nil, fmt.Errorf("cannot configure logging: %w", err)
	}

	return &App{
		config: cfg,
		fs:     fs,
		output: stdout,
		logger: logger,
	}, nil
}
