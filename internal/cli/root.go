// Package cli implements the driveops command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Jumpaku/go-driveops"
	"github.com/Jumpaku/go-driveops/config"
)

// apiFactory builds the API commands run against. Tests replace it to reach a fake server.
var apiFactory = driveops.NewFromConfig

type rootOptions struct {
	configPath string
	output     string
	logLevel   string
	logFormat  string

	logger zerolog.Logger
}

// NewRootCommand returns the driveops command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{logger: zerolog.Nop()}
	cmd := &cobra.Command{
		Use:           "driveops",
		Short:         "Operate on Google Drive as a Service Account",
		Long:          `Delete permissions, list permissions and list files of Google Drive using a Service Account key.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.logger = logger
			return validateOutput(opts.output)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to the configuration file (default ~/.driveops/config.toml)")
	flags.StringVarP(&opts.output, "output", "o", outputJSON, "Output format: json, yaml or table")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: trace, debug, info, warn, error or disabled")
	flags.StringVar(&opts.logFormat, "log-format", "console", "Log format: console or json")

	cmd.AddCommand(
		newPermissionCommand(opts),
		newFileCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	switch format {
	case "json":
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format: %q", format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// api loads the configuration and builds the API used by a single invocation.
func (o *rootOptions) api(ctx context.Context) (*driveops.API, error) {
	path := o.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, fmt.Errorf("failed to locate configuration: %w", err)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	o.logger.Debug().Str("config", path).Str("subject", cfg.Subject).Msg("configuration loaded")
	return apiFactory(ctx, cfg, driveops.WithLogger(o.logger))
}
