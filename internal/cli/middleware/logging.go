package middleware

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"splitpane/internal/logger"
)

// LoggingOptions configures the logging middleware.
type LoggingOptions struct {
	// Logger returns the logger at call time, since the root command creates
	// it in PersistentPreRunE. Nil or a nil result disables logging.
	Logger func() *logger.Logger

	// SkipCommands are command names that are not logged.
	SkipCommands []string
}

// Logging logs the start and outcome of every command, tagged with a request id.
// The operation and logger are stored in the command context.
func Logging(opts LoggingOptions) Middleware {
	return func(next RunFunc) RunFunc {
		return func(cmd *cobra.Command, args []string) error {
			for _, skip := range opts.SkipCommands {
				if cmd.Name() == skip {
					return next(cmd, args)
				}
			}

			var log *logger.Logger
			if opts.Logger != nil {
				log = opts.Logger()
			}
			if log == nil {
				return next(cmd, args)
			}

			op := logger.NewCommandOperation(cmd, args)
			log = log.With(op.LogAttrs()...)

			ctx := logger.WithOperation(cmd.Context(), op)
			cmd.SetContext(logger.WithLogger(ctx, log))

			log.Debug("command started")
			err := next(cmd, args)
			duration := time.Since(op.Started)

			if err != nil {
				log.Error("command failed", "duration_ms", duration.Milliseconds(), logger.WithError(err))
			} else {
				log.Debug("command completed", "duration_ms", duration.Milliseconds())
			}
			return err
		}
	}
}

// Timing prints the command duration to stderr when verbose reports true.
// verbose is evaluated after the command ran, once flags are parsed.
func Timing(verbose func() bool) Middleware {
	return func(next RunFunc) RunFunc {
		return func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			err := next(cmd, args)
			if verbose != nil && verbose() {
				fmt.Fprintf(cmd.ErrOrStderr(), "\nCompleted in %s\n", time.Since(start).Round(time.Millisecond))
			}
			return err
		}
	}
}
