package engine

const (
	SuperEffective   = 2.0
	NotVeryEffective = 0.5
)

// GetEffectiveness multiplies 2.0 for every StrongAgainst entry and 0.5 for
// every WeakAgainst entry, across all attacker types, that names the defender.
// Both lists are checked independently, so a name in both nets 1.0.
func GetEffectiveness(attackerTypes []Type, defender Type) float64 {
	mult := 1.0
	for _, t := range attackerTypes {
		for _, name := range t.StrongAgainst {
			if name == defender.Name {
				mult *= SuperEffective
			}
		}
		for _, name := range t.WeakAgainst {
			if name == defender.Name {
				mult *= NotVeryEffective
			}
		}
	}
	return mult
}

// TotalEffectiveness is the product of GetEffectiveness over every defender type.
func TotalEffectiveness(attacker, defender *Fighter) float64 {
	total := 1.0
	for _, t := range defender.Types {
		total *= GetEffectiveness(attacker.Types, t)
	}
	return total
}
