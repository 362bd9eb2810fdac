package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/crumbs/internal/doctor"
	"github.com/rileyhilliard/crumbs/internal/errors"
	"github.com/rileyhilliard/crumbs/internal/ui"
	"github.com/spf13/cobra"
)

var doctorJSON bool

// doctorCmd diagnoses config and terminal problems.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the config and terminal",
	Long: `Run diagnostic checks on the config file and the terminal.

Exits non-zero when a check fails. Warnings don't change the exit code.

Examples:
  crumbs doctor
  crumbs doctor --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		checks := collectChecks(cfgFile, terminalWidthOrZero(), lipgloss.ColorProfile())
		return Doctor(cmd.OutOrStdout(), checks, doctorJSON)
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Results []doctor.CheckResult `json:"results"`
	Summary SummaryOutput        `json:"summary"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

func collectChecks(cfgPath string, width int, profile termenv.Profile) []doctor.Check {
	return []doctor.Check{
		&doctor.ConfigFileCheck{ConfigPath: cfgPath},
		&doctor.ConfigSchemaCheck{ConfigPath: cfgPath},
		&doctor.LayoutWidthCheck{ConfigPath: cfgPath, Width: width},
		&doctor.ColorCheck{Profile: profile},
	}
}

// Doctor runs checks and reports them to w.
func Doctor(w io.Writer, checks []doctor.Check, asJSON bool) error {
	results := doctor.RunAll(checks)

	if asJSON {
		if err := outputDoctorJSON(w, results); err != nil {
			return err
		}
	} else {
		outputDoctorText(w, checks, results)
	}

	if doctor.HasFailures(results) {
		return errors.New(errors.ErrConfig,
			doctor.Summary(results),
			"Fix the failed checks above")
	}
	return nil
}

func outputDoctorJSON(w io.Writer, results []doctor.CheckResult) error {
	counts := doctor.CountByStatus(results)
	output := DoctorOutput{
		Results: results,
		Summary: SummaryOutput{
			Pass:     counts[doctor.StatusPass],
			Warn:     counts[doctor.StatusWarn],
			Fail:     counts[doctor.StatusFail],
			AllClear: !doctor.HasIssues(results),
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Failed to write JSON output",
			"Check that stdout is writable")
	}
	return nil
}

func outputDoctorText(w io.Writer, checks []doctor.Check, results []doctor.CheckResult) {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(w, headerStyle.Render("crumbs diagnostic report"))
	fmt.Fprintln(w)

	grouped := doctor.GroupByCategory(checks)
	for _, category := range []string{"CONFIG", "TERMINAL"} {
		indices := grouped[category]
		if len(indices) == 0 {
			continue
		}

		fmt.Fprintln(w, headerStyle.Render(category))
		for _, idx := range indices {
			result := results[idx]

			symbol, style := ui.SymbolComplete, successStyle
			switch result.Status {
			case doctor.StatusWarn:
				style = warnStyle
			case doctor.StatusFail:
				symbol, style = ui.SymbolFail, errorStyle
			}

			fmt.Fprintf(w, "  %s %s\n", style.Render(symbol), result.Message)
			if result.Suggestion != "" && result.Status != doctor.StatusPass {
				fmt.Fprintf(w, "    %s\n", mutedStyle.Render(result.Suggestion))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("━", ui.HeaderWidth))
	symbol, style := ui.SymbolComplete, successStyle
	if doctor.HasIssues(results) {
		symbol, style = ui.SymbolFail, errorStyle
	}
	fmt.Fprintf(w, "%s %s\n", style.Render(symbol), doctor.Summary(results))
}

// terminalWidthOrZero is the stdout width, or zero when stdout is not a terminal.
func terminalWidthOrZero() int {
	if !stdoutIsTerminal() {
		return 0
	}
	return terminalWidth()
}
