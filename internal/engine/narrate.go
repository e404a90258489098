package engine

import "fmt"

// EffectivenessNote is the flavor line for a multiplier, or "" when neutral.
func EffectivenessNote(eff float64) string {
	switch {
	case eff > 1:
		return "It's super effective!"
	case eff < 1:
		return "It's not very effective..."
	default:
		return ""
	}
}

func AnnounceTurn(turn int, attacker *Fighter) string {
	return fmt.Sprintf("Turn %d: %s attacks!", turn, attacker.Describe())
}

func AnnounceAttack(r *TurnResult) string {
	line := fmt.Sprintf("%s uses %s on %s for %d damage.", r.Attacker.Name, r.Attack, r.Defender.Name, r.Damage)
	if note := EffectivenessNote(r.Effectiveness); note != "" {
		line += " " + note
	}
	return line
}

func HealthSnapshot(p1, p2 *Fighter) string {
	return fmt.Sprintf("%s: %d/%d HP | %s: %d/%d HP",
		p1.Name, p1.Health(), p1.MaxHealth(),
		p2.Name, p2.Health(), p2.MaxHealth())
}

func AnnounceWinner(winner *Fighter) string {
	return fmt.Sprintf("%s wins!", winner.Describe())
}
