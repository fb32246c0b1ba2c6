package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/computerscienceiscool/minigrep/internal/app"
	apperrors "github.com/computerscienceiscool/minigrep/internal/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// newRootCmd builds the minigrep command. Every call gets its own viper
// instance so repeated runs do not share state.
func newRootCmd(fs afero.Fs) *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "minigrep <query> <file_path>",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep reads a file and prints every line containing the query.

Matching is case-sensitive unless the IGNORE_CASE environment variable is
present (its value is ignored). Logging is set with MINIGREP_LOG_LEVEL and
MINIGREP_LOG_FORMAT.`,
		Args: validateArgs,
		// Every argument is positional, so "-h" or "--x" can be a query
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(v, args)
			if err != nil {
				return fmt.Errorf("failed to build config: %w", err)
			}

			a, err := app.Bootstrap(cfg, fs, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("bootstrap failed: %w", err)
			}

			return a.Run(cmd.Context())
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

// validateArgs requires a query followed by a file path. Anything after the
// file path is ignored.
func validateArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return &apperrors.UsageError{Err: apperrors.ErrMissingQuery}
	case 1:
		return &apperrors.UsageError{Query: args[0], Err: apperrors.ErrMissingFilePath}
	}
	return nil
}

// Run executes minigrep with args, writes the diagnostic for any failure to
// stderr and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, fs afero.Fs) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	cmd := newRootCmd(fs)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, apperrors.Diagnostic(err))
	}
	return apperrors.ExitCode(err)
}

// Execute runs the root command against the process arguments and streams
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs())
}
