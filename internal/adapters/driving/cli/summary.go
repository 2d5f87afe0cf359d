package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/goldengate-rescue/chipsync/internal/core/ports/driving"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("6"))

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8")).
				Width(18)

	summaryValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15"))

	summaryWarnStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("3"))
)

// printSummary renders the end-of-run counts. Styled when stdout is a
// terminal, plain otherwise so redirected output stays grep-able.
func printSummary(cmd *cobra.Command, req driving.CompareRequest, res driving.CompareResult) {
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	line := func(label, value string) {
		if styled {
			cmd.Println(summaryLabelStyle.Render(label) + summaryValueStyle.Render(value))
		} else {
			cmd.Printf("%-18s%s\n", label, value)
		}
	}

	title := "Comparison complete"
	if styled {
		title = summaryTitleStyle.Render(title)
	}
	cmd.Println(title)

	line("Old snapshot", fmt.Sprintf("%d dogs, %d chips", res.OldDogs, res.OldChips))
	line("New snapshot", fmt.Sprintf("%d dogs, %d chips", res.NewDogs, res.NewChips))
	line("Updates", fmt.Sprintf("%d written to %s", res.Updates, req.UpdatesPath))

	issues := fmt.Sprintf("%d written to %s", res.Issues, req.ErrorsPath)
	if styled && res.Issues > 0 {
		issues = summaryWarnStyle.Render(issues)
	}
	line("Issues", issues)
}
