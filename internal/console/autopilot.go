package console

import (
	"math/rand"

	"kombat/internal/engine"
)

// AutoPilot picks uniformly random menu entries. It never fails, which makes
// it the input provider for non-interactive runs.
type AutoPilot struct {
	chart *engine.Chart
	rng   *rand.Rand
}

func NewAutoPilot(chart *engine.Chart, seed int64) *AutoPilot {
	return &AutoPilot{chart: chart, rng: rand.New(rand.NewSource(seed))}
}

func (a *AutoPilot) SelectType() (engine.Type, error) {
	types := a.chart.Types()
	return types[a.rng.Intn(len(types))], nil
}

func (a *AutoPilot) SelectAttack() (engine.Attack, error) {
	attacks := engine.Attacks()
	return attacks[a.rng.Intn(len(attacks))], nil
}
