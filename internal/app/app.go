package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/computerscienceiscool/minigrep/internal/config"
	apperrors "github.com/computerscienceiscool/minigrep/internal/errors"
	"github.com/computerscienceiscool/minigrep/internal/infrastructure"
	"github.com/computerscienceiscool/minigrep/internal/search"
	"github.com/spf13/afero"
)

// App represents one search invocation
type App struct {
	config *config.Config
	fs     afero.Fs
	output io.Writer
	logger *slog.Logger
}

// Run loads the target file, filters its lines and prints the matches,
// one per line. Zero matches is not an error.
func (a *App) Run(ctx context.Context) error {
	a.logger.DebugContext(ctx, "reading file", "path", a.config.FilePath)

	contents, err := infrastructure.ReadContents(a.fs, a.config.FilePath)
	if err != nil {
		return apperrors.ClassifyReadError(a.config.FilePath, err)
	}

	results := search.Search(a.config.Query, contents, a.config.IgnoreCase)
	a.logger.DebugContext(ctx, "search finished",
		"query", a.config.Query,
		"ignore_case", a.config.IgnoreCase,
		"bytes", len(contents),
		"matches", len(results),
	)

	for _, line := range results {
		if _, err := fmt.Fprintln(a.output, line); err != nil {
			return fmt.Errorf("cannot write results: %w", err)
		}
	}

	return nil
}
