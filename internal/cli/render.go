package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/crumbs/internal/errors"
	"github.com/rileyhilliard/crumbs/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// fallbackWidth is used when stdout is not a terminal and --width is unset.
const fallbackWidth = 80

// RenderOptions holds options for the render command.
type RenderOptions struct {
	Config  string // explicit config path
	Step    int    // starting step; negative keeps the configured one
	Width   int    // stage width in cells; zero uses the terminal width
	Advance int    // steps to move after layout; negative moves back
	Plain   bool   // print without colors
}

// renderOpts are bound to the render command flags.
var renderOpts = RenderOptions{Step: -1}

// renderCmd prints the view once and exits.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the breadcrumbs once",
	Long: `Lay out the breadcrumbs at the given width and print them.

Moves requested with --advance are played to completion before printing,
so the output shows where the animation ends.

Examples:
  crumbs render
  crumbs render --step 2 --width 60
  crumbs render --advance 1 --plain`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := renderOpts
		opts.Config = cfgFile
		if opts.Width == 0 {
			opts.Width = terminalWidth()
		}
		return Render(cmd.OutOrStdout(), opts)
	},
}

func init() {
	renderCmd.Flags().IntVar(&renderOpts.Step, "step", -1, "starting step (0-based); default from config")
	renderCmd.Flags().IntVar(&renderOpts.Width, "width", 0, "width in cells (default: terminal width)")
	renderCmd.Flags().IntVar(&renderOpts.Advance, "advance", 0, "steps to move before printing; negative moves back")
	renderCmd.Flags().BoolVar(&renderOpts.Plain, "plain", false, "print characters only")
	rootCmd.AddCommand(renderCmd)
}

// Render lays out a view and writes it to w.
func Render(w io.Writer, opts RenderOptions) error {
	if opts.Width <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Width must be positive, got %d", opts.Width),
			"Pass --width with a positive number of cells")
	}

	s, err := newSession(opts.Config)
	if err != nil {
		return err
	}
	if opts.Step >= 0 {
		if err := s.crumbs.SetCurrentStep(opts.Step); err != nil {
			return err
		}
	}

	if err := s.stage.SetSize(opts.Width, 0); err != nil {
		return err
	}

	// Each move is two transitions, plus the frame that starts the second.
	if err := s.advance(opts.Advance, 2*s.animator.MaxFrames()+1); err != nil {
		return err
	}

	view := s.stage.View()
	if opts.Plain {
		view = s.stage.Canvas().Plain()
	}
	if _, err := fmt.Fprintf(w, "%s\n\n%s\n", view, ui.StatusLine(s.crumbs)); err != nil {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Failed to write output",
			"Check that stdout is writable")
	}
	return nil
}

// terminalWidth returns the width of stdout, or fallbackWidth when stdout
// is not a terminal.
func terminalWidth() int {
	if !stdoutIsTerminal() {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
