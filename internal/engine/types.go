package engine

import "slices"

// Type is a named fighting style with two directional matchup lists.
// StrongAgainst holds the names this type deals double damage to;
// WeakAgainst holds the names it deals half damage to.
type Type struct {
	Name          string   `yaml:"name"`
	StrongAgainst []string `yaml:"strong_against"`
	WeakAgainst   []string `yaml:"weak_against"`
}

// IsStrongAgainst reports whether other's name appears in t.WeakAgainst.
//
// NOTE: the name reads inverted. It looks up the weakness list, not the
// strength list, and callers rely on that. The damage path never calls it.
func (t Type) IsStrongAgainst(other Type) bool {
	return slices.Contains(t.WeakAgainst, other.Name)
}

// IsWeakAgainst reports whether other's name appears in t.StrongAgainst.
// Inverted in the same way as IsStrongAgainst.
func (t Type) IsWeakAgainst(other Type) bool {
	return slices.Contains(t.StrongAgainst, other.Name)
}

func (t Type) String() string { return t.Name }

func typeNames(types []Type) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.Name)
	}
	return out
}
