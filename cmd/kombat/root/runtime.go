package root

import (
	"fmt"
	"log/slog"
	"os"

	"kombat/internal/config"
	"kombat/internal/engine"
)

// runtime bundles what every command needs: settings, the chart and a logger.
type runtime struct {
	cfg   config.Config
	chart *engine.Chart
	log   *slog.Logger
}

func loadRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagChart != "" {
		cfg.ChartPath = flagChart
	}
	if flagVerbose {
		cfg.LogLevel = slog.LevelDebug
	}
	log := cfg.NewLogger(os.Stderr)

	chart := engine.DefaultChart()
	if cfg.ChartPath != "" {
		chart, err = engine.LoadChart(cfg.ChartPath)
		if err != nil {
			return nil, err
		}
		for _, w := range chart.Validate() {
			log.Warn("chart: "+w, "path", cfg.ChartPath)
		}
		log.Debug("chart loaded", "path", cfg.ChartPath, "types", chart.Len())
	}
	return &runtime{cfg: cfg, chart: chart, log: log}, nil
}

func (r *runtime) newBattle(p1, p2 *engine.Fighter, maxTurns int) (*engine.Battle, error) {
	b, err := engine.NewBattle(p1, p2, engine.WithLogger(r.log), engine.WithMaxTurns(maxTurns))
	if err != nil {
		return nil, fmt.Errorf("new battle: %w", err)
	}
	r.log.Debug("battle created", "battle_id", b.ID, "p1", p1.Describe(), "p2", p2.Describe())
	return b, nil
}
