package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/crumbs/internal/config"
	"github.com/rileyhilliard/crumbs/internal/errors"
	"github.com/rileyhilliard/crumbs/internal/ui"
	"github.com/spf13/cobra"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string   // where to write; defaults to ./.crumbs.yaml
	Steps          int      // step count; zero keeps the default
	Labels         []string // optional labels
	Overwrite      bool     // overwrite existing config without asking
	NonInteractive bool     // never prompt
}

var (
	initForce  bool
	initSteps  int
	initLabels []string
)

// initCmd writes a starter config file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .crumbs.yaml config",
	Long: `Write a config file with the default appearance to the current directory.

If the file already exists you are asked before it is overwritten.

Examples:
  crumbs init
  crumbs init --steps 5 --labels cart,address,payment,review,done
  crumbs init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(cmd.OutOrStdout(), InitOptions{
			Path:      cfgFile,
			Steps:     initSteps,
			Labels:    initLabels,
			Overwrite: initForce,
		})
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().IntVar(&initSteps, "steps", 0, "number of steps (default 4)")
	initCmd.Flags().StringSliceVar(&initLabels, "labels", nil, "comma separated step labels")
	rootCmd.AddCommand(initCmd)
}

// Init creates a new config file.
func Init(w io.Writer, opts InitOptions) error {
	configPath := opts.Path
	if configPath == "" {
		configPath = filepath.Join(".", config.ConfigFileName)
	}

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if opts.Steps != 0 {
		cfg.Steps = opts.Steps
	}
	if len(opts.Labels) > 0 {
		cfg.Labels = opts.Labels
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := config.Write(configPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s Created %s\n\n", ui.SymbolComplete, configPath)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  crumbs render  - Print the breadcrumbs once")
	fmt.Fprintln(w, "  crumbs demo    - Step through them interactively")
	return nil
}
