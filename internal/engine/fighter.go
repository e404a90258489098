package engine

import (
	"fmt"
	"slices"
	"strings"
)

// HealthPerType is the max health each type contributes to a fighter.
const HealthPerType = 50

// Fighter is one side of a battle. Health only changes through ApplyDamage.
type Fighter struct {
	Name  string
	Types []Type

	maxHealth int
	health    int
	fainted   bool
}

func NewFighter(name string, types ...Type) (*Fighter, error) {
	if len(types) == 0 {
		return nil, fmt.Errorf("fighter %q: %w", name, ErrNoTypes)
	}
	hp := HealthPerType * len(types)
	return &Fighter{
		Name:      name,
		Types:     slices.Clone(types),
		maxHealth: hp,
		health:    hp,
	}, nil
}

func (f *Fighter) Health() int    { return f.health }
func (f *Fighter) MaxHealth() int { return f.maxHealth }
func (f *Fighter) Fainted() bool  { return f.fainted }

// ApplyDamage lowers health, clamping at zero. Negative amounts count as zero.
// Once fainted, further calls leave the fighter unchanged.
func (f *Fighter) ApplyDamage(amount int) {
	if amount < 0 {
		amount = 0
	}
	f.health -= amount
	if f.health < 0 {
		f.health = 0
	}
	if f.health == 0 {
		f.fainted = true
	}
}

// Describe renders "Name (Type1/Type2)".
func (f *Fighter) Describe() string {
	return fmt.Sprintf("%s (%s)", f.Name, strings.Join(typeNames(f.Types), "/"))
}
