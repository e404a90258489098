package engine

import "math"

const (
	// BasePower is the fixed move power in the damage formula.
	BasePower = 40.0
)

// BaseDamage is the formula before effectiveness:
// ((2*attackerTypes/5 + 2) * 40) / (defenderTypes + 1).
func BaseDamage(attackerTypes, defenderTypes int) float64 {
	return ((2*float64(attackerTypes)/5 + 2) * BasePower) / float64(defenderTypes+1)
}

// ComputeDamage truncates toward zero; it never rounds. Zero is a valid result.
// Values beyond the int range (charts with long runs of repeated matchups)
// saturate at math.MaxInt.
func ComputeDamage(attacker, defender *Fighter, effectiveness float64) int {
	d := BaseDamage(len(attacker.Types), len(defender.Types)) * effectiveness
	if d >= math.MaxInt {
		return math.MaxInt
	}
	if d <= 0 {
		return 0
	}
	return int(d)
}
