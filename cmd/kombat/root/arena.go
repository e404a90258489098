package root

import (
	"context"

	"github.com/spf13/cobra"

	"kombat/internal/tui"
)

func newArenaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Open the TUI arena",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			return tui.RunArena(ctx, rt.chart, rt.log, cmd.OutOrStdout())
		},
	}

	return cmd
}
