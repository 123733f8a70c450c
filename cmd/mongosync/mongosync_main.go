package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"mongosync/internal/config"
	"mongosync/internal/services/mongosync"
	"mongosync/pkg/logger"

	"github.com/spf13/cobra"
)

// exitError carries the process exit code out of the command
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func newRootCmd(stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mongosync",
		Short: "Sync a MongoDB database with a directory of JSON snapshot files",
		Long: `Export every collection of a database into <basedir>/<database>/<collection>.json,
or import such a directory back into the database.

Options can also be set through MONGOSYNC_* environment variables or a config
file. MONGO_URI is accepted as a fallback for --clientURI.`,
		Example: `  mongosync --clientURI mongodb://localhost:27017 --database shop --export --excludes logs,sessions
  mongosync --clientURI mongodb://localhost:27017 --database shop --import --excludes ""`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}
	cmd.SetErr(stderr)
	config.RegisterFlags(cmd.Flags())
	// unknown flags and flags missing their value
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(c, err)
	})

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := config.NewViper(cmd.Flags())
		if err != nil {
			return usageError(cmd, err)
		}
		cfg, err := config.Load(v)
		if err != nil {
			return usageError(cmd, err)
		}

		logger.InitializeWithOptions(cfg.LogLevel, logger.Options{File: cfg.LogFile})
		defer logger.Sync()

		return run(cmd.Context(), cfg)
	}
	return cmd
}

// usageError prints the usage text followed by the message, like a bad flag would
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	fmt.Fprintln(cmd.ErrOrStderr(), err)
	return &exitError{code: 1, err: err}
}

func run(ctx context.Context, cfg config.Config) error {
	service, err := mongosync.Connect(ctx, cfg)
	if err != nil {
		logger.Error("%v", err)
		return &exitError{code: 1, err: err}
	}
	defer func() {
		if err := service.Close(); err != nil {
			logger.Warn("%v", err)
		}
	}()

	startTime := time.Now()
	report, err := service.Run(ctx)
	if err != nil {
		return &exitError{code: 1, err: err}
	}

	for _, unit := range report.Failed() {
		logger.Warn("%s: %v", unit.Name, unit.Err)
	}
	for file, err := range report.MirrorErrors {
		logger.Warn("failed to mirror %s: %v", file, err)
	}
	logger.Info("%s of %s finished: %d documents, %d of %d collections failed, took %s",
		cfg.Mode, cfg.Database, report.Documents(), len(report.Failed()), len(report.Units), time.Since(startTime))
	return nil
}

func main() {
	cmd := newRootCmd(os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		// cobra flag parsing errors
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
