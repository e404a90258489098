package root

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"kombat/internal/config"
	"kombat/internal/console"
	"kombat/internal/engine"
	"kombat/internal/ui"
)

// defaultSimTurnCap stops unattended zero-damage stalemates.
const defaultSimTurnCap = 1000

func newSimCmd() *cobra.Command {
	var p1Types, p2Types []string
	var name1, name2 string
	var seed int64
	var maxTurns int

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Simulate a battle with random attack choices",
		Long: `Simulate a battle without prompts.

Styles not given with --p1/--p2 are picked at random. Attack choices are random
too; they are cosmetic and never change the damage dealt.`,
		Example: `  kombat sim --p1 Scorpion --p2 Sub-Zero
  kombat sim --p1 Raiden,Sonya --p2 Scorpion --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rt, err := loadRuntime()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				seed = rt.cfg.Seed
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			limit := simTurnLimit(rt.cfg, cmd.Flags().Changed("max-turns"), maxTurns)

			auto := console.NewAutoPilot(rt.chart, seed)
			p1, err := buildFighter(rt.chart, auto, ui.TitleName(name1, "Character 1"), p1Types)
			if err != nil {
				return err
			}
			p2, err := buildFighter(rt.chart, auto, ui.TitleName(name2, "Character 2"), p2Types)
			if err != nil {
				return err
			}

			b, err := rt.newBattle(p1, p2, limit)
			if err != nil {
				return err
			}
			rt.log.Debug("simulating", "battle_id", b.ID, "seed", seed, "max_turns", limit)

			out := cmd.OutOrStdout()
			if _, err := b.Run(ctx, auto, linePresenter(out)); err != nil {
				return err
			}
			fmt.Fprintln(out, ui.LabelValue("Turns", b.Turn()-1))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&p1Types, "p1", nil, "Styles of the first fighter (comma separated)")
	cmd.Flags().StringSliceVar(&p2Types, "p2", nil, "Styles of the second fighter (comma separated)")
	cmd.Flags().StringVar(&name1, "name1", "", "Name of the first fighter")
	cmd.Flags().StringVar(&name2, "name2", "", "Name of the second fighter")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = time based, overrides KOMBAT_SEED)")
	cmd.Flags().IntVar(&maxTurns, "max-turns", defaultSimTurnCap, "Stop after this many turns (0 = no cap, overrides KOMBAT_MAX_TURNS)")

	return cmd
}

// simTurnLimit picks the turn cap: the flag, then KOMBAT_MAX_TURNS, then the
// default. An explicit 0 from either source disables the cap.
func simTurnLimit(cfg config.Config, flagSet bool, flagValue int) int {
	switch {
	case flagSet:
		return flagValue
	case cfg.MaxTurnsSet:
		return cfg.MaxTurns
	default:
		return defaultSimTurnCap
	}
}

// buildFighter resolves named styles, or draws one at random when none are given.
func buildFighter(chart *engine.Chart, in engine.InputProvider, name string, typeNames []string) (*engine.Fighter, error) {
	if len(typeNames) == 0 {
		return engine.SelectFighter(in, name, 1)
	}
	return fighterFromNames(chart, name, typeNames)
}

func linePresenter(w io.Writer) engine.Presenter {
	return engine.PresenterFunc(func(text string) {
		fmt.Fprintln(w, text)
	})
}
