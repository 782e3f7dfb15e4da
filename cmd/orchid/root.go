package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/orchid-ml/orchid/internal/adapters/logging"
	"github.com/orchid-ml/orchid/internal/domain/config"
	"github.com/orchid-ml/orchid/internal/ports"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "orchid",
	Short: "Manage and visualize optimization experiments",
	Long: `Orchid tracks optimization experiments and their trial history.

Experiments live in a simple file store; the db command group maintains it
and the plot command turns a trial history into a figure specification.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger := logging.NewConsoleLogger()
		if verbose {
			logger.SetLevel(ports.LevelDebug)
		}
		cmd.SetContext(ports.ContextWithLogger(cmd.Context(), logger))
	},
}

// Execute populates the db command group from the plugin registry and runs
// the root command.
func Execute() error {
	if err := registerDBCommands(); err != nil {
		printError(err)
		return err
	}
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: orchid.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the user message and suggestion.
// With verbose=true: also shows the underlying technical error.
func formatError(err error) string {
	var userErr *config.UserError
	if errors.As(err, &userErr) {
		msg := userErr.Message
		if userErr.Context != "" {
			msg += fmt.Sprintf(" (at %s)", userErr.Context)
		}
		if userErr.Suggestion != "" {
			msg += fmt.Sprintf("\n\nSuggestion: %s", userErr.Suggestion)
		}
		if verbose && userErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", userErr.Underlying)
		}
		return msg
	}
	return err.Error()
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, errorStyle.Render("Error: ")+formatError(err))
}
