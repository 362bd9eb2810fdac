package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/crumbs/internal/logger"
	"github.com/rileyhilliard/crumbs/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "crumbs",
	Short: "Animated breadcrumbs progress indicator for the terminal",
	Long: `crumbs draws a row of step dots joined by separators and animates
moves between steps.

Appearance is read from .crumbs.yaml (see 'crumbs init').

Examples:
  crumbs demo
  crumbs render --step 2
  crumbs init`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyGlobalFlags()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .crumbs.yaml, searched upwards)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// applyGlobalFlags configures logging and color output from the root flags.
func applyGlobalFlags() {
	if verbose {
		logger.SetDefault(logger.NewWriterLogger(os.Stderr, "crumbs", true))
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(err))
		os.Exit(1)
	}
}
