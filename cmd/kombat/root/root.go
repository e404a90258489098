package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kombat/internal/ui"
)

const Version = "0.1.0"

var (
	flagChart   string
	flagVerbose bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "kombat",
		Short:         "Kombat — turn-based fighting-style battle simulator",
		Long:          "Kombat pits two fighters against each other. Each fighter has one or more fighting styles whose matchups scale the damage of every attack.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&flagChart, "chart", "", "YAML type chart (overrides KOMBAT_CHART)")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every turn to stderr")

	cmd.AddCommand(
		newFightCmd(),
		newSimCmd(),
		newChartCmd(),
		newDamageCmd(),
		newArenaCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
