package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/crumbs/internal/errors"
	"github.com/rileyhilliard/crumbs/internal/ui"
	"github.com/spf13/cobra"
)

var (
	demoTitle     string
	demoAltScreen bool
)

// demoCmd runs the interactive view.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Step through the breadcrumbs interactively",
	Long: `Open an interactive view of the configured breadcrumbs.

Keys:
  → l n enter   next step
  ← h p         previous step
  ?             toggle help
  q esc         quit

Examples:
  crumbs demo
  crumbs demo --title Checkout
  crumbs demo --config ./wizard.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return demoCommand(cfgFile, demoTitle, demoAltScreen)
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoTitle, "title", "crumbs", "title shown above the view")
	demoCmd.Flags().BoolVar(&demoAltScreen, "alt-screen", false, "use the full terminal screen")
	rootCmd.AddCommand(demoCmd)
}

// demoCommand is the implementation called by the cobra command.
func demoCommand(explicit, title string, altScreen bool) error {
	s, err := newSession(explicit)
	if err != nil {
		return err
	}

	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	model := ui.NewModel(s.crumbs, s.stage, s.animator, title)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return errors.Wrap(err, "Interactive view failed")
	}

	if m, ok := final.(ui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
