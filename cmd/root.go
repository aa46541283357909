// Package cmd holds the flashnotes command line.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/andrewpaige1/flashnotes/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// alertedError marks an error the view has already shown to the user.
type alertedError struct{ err error }

func (e alertedError) Error() string { return e.err.Error() }
func (e alertedError) Unwrap() error { return e.err }

type options struct {
	v   *viper.Viper
	cfg *config.Config
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":   "log_level",
	"log-format":  "log_format",
	"port":        "port",
	"db-url":      "db_url",
	"local-store": "local_store",
	"api-url":     "api_url",
}

// NewRootCmd builds the command tree with its own configuration state.
func NewRootCmd() *cobra.Command {
	opts := &options{v: config.New()}

	root := &cobra.Command{
		Use:   "flashnotes",
		Short: "Turn pasted notes into flashcards",
		Long: `flashnotes splits notes into sentences and turns each one into a
question/answer flashcard, padding to five cards with generic questions.

Cards are kept in a local store by default, or on a flashnotes server with --remote.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadDotEnv()

			for name, key := range flagKeys {
				if flag := cmd.Flags().Lookup(name); flag != nil {
					if err := opts.v.BindPFlag(key, flag); err != nil {
						return fmt.Errorf("bind flag %s: %w", name, err)
					}
				}
			}

			cfg, err := config.Load(opts.v)
			if err != nil {
				return err
			}
			config.Logging(cfg)
			opts.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "text", "log format (text, json)")

	root.AddCommand(newServeCmd(opts), newGenerateCmd(opts), newListCmd(opts))
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		var alerted alertedError
		if !errors.As(err, &alerted) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
