package engine

import (
	"strconv"
	"strings"
)

type Attack string

const (
	AttackHighPunch   Attack = "High Punch"
	AttackLowKick     Attack = "Low Kick"
	AttackUppercut    Attack = "Uppercut"
	AttackSpecialMove Attack = "Special Move"
)

// Attacks returns the attack menu in display order.
func Attacks() []Attack {
	return []Attack{AttackHighPunch, AttackLowKick, AttackUppercut, AttackSpecialMove}
}

func (a Attack) IsValid() bool {
	switch a {
	case AttackHighPunch, AttackLowKick, AttackUppercut, AttackSpecialMove:
		return true
	default:
		return false
	}
}

func (a Attack) String() string { return string(a) }

// ParseMenuChoice parses a 1-based menu token and returns the 0-based index.
// ok is false for anything that is not an integer in [1, size].
func ParseMenuChoice(input string, size int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > size {
		return 0, false
	}
	return n - 1, true
}

// ParseAttack accepts a menu token ("1".."4") or an attack name.
func ParseAttack(input string) (Attack, bool) {
	all := Attacks()
	if i, ok := ParseMenuChoice(input, len(all)); ok {
		return all[i], true
	}
	s := strings.TrimSpace(input)
	for _, a := range all {
		if strings.EqualFold(s, string(a)) {
			return a, true
		}
	}
	return "", false
}
