package root

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"kombat/internal/engine"
	"kombat/internal/ui"
)

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show the style matchup chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			types := rt.chart.Types()

			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Matchups"))
			for _, t := range types {
				fmt.Fprintf(out, "- %s %s %s\n",
					ui.Key.Render(t.Name),
					ui.Good.Render("strong vs "+listOrDash(t.StrongAgainst)),
					ui.Bad.Render("weak vs "+listOrDash(t.WeakAgainst)))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconFist+" Effectiveness (attacker ↓ / defender →)"))
			fmt.Fprintln(out, effectivenessGrid(types))

			if warnings := rt.chart.Validate(); len(warnings) > 0 {
				fmt.Fprintln(out, "")
				for _, w := range warnings {
					fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" "+w))
				}
			}
			return nil
		},
	}

	return cmd
}

func effectivenessGrid(types []engine.Type) string {
	width := 4
	for _, t := range types {
		if n := lipgloss.Width(t.Name); n+2 > width {
			width = n + 2
		}
	}
	cell := lipgloss.NewStyle().Width(width)

	var rows []string
	header := []string{cell.Render("")}
	for _, d := range types {
		header = append(header, cell.Render(ui.Muted.Render(d.Name)))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for _, a := range types {
		row := []string{cell.Render(ui.Key.Render(a.Name))}
		for _, d := range types {
			eff := engine.GetEffectiveness([]engine.Type{a}, d)
			row = append(row, cell.Render(ui.EffectivenessText(eff)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func listOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
