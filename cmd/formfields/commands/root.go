package commands

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose  bool
	jsonLogs bool
}

// Execute runs the root command.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}

// NewRootCommand builds the formfields command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "formfields",
		Short: "Render and check form field definitions",
		Long: `formfields renders YAML form definitions to HTML with accessible
field ids, aria-describedby wiring, validation error blocks and localized
widget strings.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := newLogger(cmd.ErrOrStderr(), opts)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logger.WithContext(ctx))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "write logs as JSON")

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newSnapshotCommand())

	return rootCmd
}

func newLogger(out io.Writer, opts *rootOptions) zerolog.Logger {
	level := zerolog.InfoLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	if !opts.jsonLogs {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
