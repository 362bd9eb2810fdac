// Package cli implements the crumbs command-line interface.
//
// Each subcommand is a cobra.Command registered on rootCmd from an init
// function:
//
//	crumbs demo        - Interactive view driven by bubbletea
//	crumbs render      - Print the view once at a fixed width
//	crumbs init        - Create .crumbs.yaml
//	crumbs version     - Build information
//	crumbs completion  - Shell completion scripts
//
// demo and render share newSession, which loads and validates the config
// and builds a Breadcrumbs view on a ui.Stage. The view is laid out when
// the stage first receives a size: the terminal's window size for demo,
// the --width flag (or the terminal width) for render.
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the root
// command and applied in PersistentPreRun before any subcommand runs.
package cli
