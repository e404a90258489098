package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"kombat/internal/console"
	"kombat/internal/engine"
	"kombat/internal/ui"
)

func newFightCmd() *cobra.Command {
	var typesPerFighter int
	var name1, name2 string

	cmd := &cobra.Command{
		Use:   "fight",
		Short: "Play a two-player battle at the console",
		Long: `Play a hot-seat battle at the console.

Each player picks their fighting style(s) from a numbered menu, then the
fighters take turns choosing attacks until one of them is knocked out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if typesPerFighter < 1 {
				return errors.New("--types must be at least 1")
			}
			ctx := context.Background()
			rt, err := loadRuntime()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := console.NewPrompter(rt.chart, cmd.InOrStdin(), out)
			fmt.Fprintln(out, ui.Heading(ui.IconDragon, "Kombat"))

			fighters := make([]*engine.Fighter, 0, 2)
			for _, name := range []string{ui.TitleName(name1, "Character 1"), ui.TitleName(name2, "Character 2")} {
				p.Label = name
				f, err := engine.SelectFighter(p, name, typesPerFighter)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.LabelValue("Selected", f.Describe()))
				fighters = append(fighters, f)
			}
			p.Label = ""

			// Interactive battles are never capped.
			b, err := rt.newBattle(fighters[0], fighters[1], 0)
			if err != nil {
				return err
			}
			if _, err := b.Run(ctx, p, p); err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" "+ui.BadgeKO))
			return nil
		},
	}

	cmd.Flags().IntVarP(&typesPerFighter, "types", "t", 1, "Fighting styles per fighter")
	cmd.Flags().StringVar(&name1, "name1", "", "Name of the first fighter")
	cmd.Flags().StringVar(&name2, "name2", "", "Name of the second fighter")

	return cmd
}
