package main

import (
	loggy "github.com/SamuelDBines/pyloggy"
	"github.com/spf13/cobra"
)

// newEmitCommand builds one subcommand per message kind, so scripts
// can write `loggy ok "done"` or `loggy err "upload failed"`.
func newEmitCommand(kind loggy.Kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   kind.String() + " [message...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := buildLogger(cmd)
			if err != nil {
				return err
			}
			parts := make([]any, len(args))
			for i, arg := range args {
				parts[i] = arg
			}
			return logger.Emit(kind, parts...)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		newEmitCommand(loggy.KindLog, "Print a log line (debug only)"),
		newEmitCommand(loggy.KindOK, "Print a success line"),
		newEmitCommand(loggy.KindInfo, "Print an info line (debug only)"),
		newEmitCommand(loggy.KindWarn, "Print a warning line"),
		newEmitCommand(loggy.KindErr, "Print an error line to stderr"),
	)
}
