package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"kombat/internal/engine"
	"kombat/internal/ui"
)

func newDamageCmd() *cobra.Command {
	var attackerTypes, defenderTypes []string

	cmd := &cobra.Command{
		Use:     "damage",
		Short:   "Calculate the damage of a single attack",
		Example: `  kombat damage --attacker Scorpion --defender Sub-Zero,Raiden`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(attackerTypes) == 0 || len(defenderTypes) == 0 {
				return errors.New("--attacker and --defender are required")
			}
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			attacker, err := fighterFromNames(rt.chart, "Attacker", attackerTypes)
			if err != nil {
				return err
			}
			defender, err := fighterFromNames(rt.chart, "Defender", defenderTypes)
			if err != nil {
				return err
			}

			eff := engine.TotalEffectiveness(attacker, defender)
			dmg := engine.ComputeDamage(attacker, defender, eff)
			base := engine.BaseDamage(len(attacker.Types), len(defender.Types))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconFist, attacker.Describe()+" → "+defender.Describe()))
			fmt.Fprintln(out, ui.LabelValue("Base", fmt.Sprintf("%g", base)))
			fmt.Fprintln(out, ui.LabelValue("Effectiveness", ui.EffectivenessText(eff)))
			fmt.Fprintln(out, ui.LabelValue("Damage", fmt.Sprintf("%d %s", dmg, ui.Muted.Render(fmt.Sprintf("(of %d HP)", defender.MaxHealth())))))
			if note := engine.EffectivenessNote(eff); note != "" {
				fmt.Fprintln(out, ui.Muted.Render(note))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&attackerTypes, "attacker", "a", nil, "Attacker styles (comma separated)")
	cmd.Flags().StringSliceVarP(&defenderTypes, "defender", "d", nil, "Defender styles (comma separated)")

	return cmd
}

func fighterFromNames(chart *engine.Chart, name string, typeNames []string) (*engine.Fighter, error) {
	types, err := chart.Resolve(typeNames...)
	if err != nil {
		return nil, err
	}
	return engine.NewFighter(name, types...)
}
