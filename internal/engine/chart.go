package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	TypeScorpion = "Scorpion"
	TypeSubZero  = "Sub-Zero"
	TypeRaiden   = "Raiden"
	TypeSonya    = "Sonya"
)

// Chart is an ordered, name-indexed set of types.
type Chart struct {
	types  []Type
	byName map[string]int
}

type chartFile struct {
	Types []Type `yaml:"types"`
}

// DefaultChart returns the four built-in styles. Every call returns a fresh copy.
func DefaultChart() *Chart {
	c, _ := NewChart([]Type{
		{Name: TypeScorpion, StrongAgainst: []string{TypeSubZero}, WeakAgainst: []string{TypeRaiden, TypeSonya}},
		{Name: TypeSubZero, StrongAgainst: []string{TypeRaiden}, WeakAgainst: []string{TypeScorpion, TypeSonya}},
		{Name: TypeRaiden, StrongAgainst: []string{TypeSonya}, WeakAgainst: []string{TypeSubZero, TypeScorpion}},
		{Name: TypeSonya, StrongAgainst: []string{TypeScorpion}, WeakAgainst: []string{TypeSubZero, TypeRaiden}},
	})
	return c
}

// NewChart builds a chart. Names must be non-empty and unique (case-insensitive).
func NewChart(types []Type) (*Chart, error) {
	if len(types) == 0 {
		return nil, errors.New("chart has no types")
	}
	c := &Chart{byName: make(map[string]int, len(types))}
	for _, t := range types {
		t.Name = strings.TrimSpace(t.Name)
		if t.Name == "" {
			return nil, errors.New("chart: type name is required")
		}
		key := strings.ToLower(t.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("chart: duplicate type %q", t.Name)
		}
		t.StrongAgainst = slices.Clone(t.StrongAgainst)
		t.WeakAgainst = slices.Clone(t.WeakAgainst)
		c.byName[key] = len(c.types)
		c.types = append(c.types, t)
	}
	return c, nil
}

// LoadChart reads a YAML chart file:
//
//	types:
//	  - name: Scorpion
//	    strong_against: [Sub-Zero]
//	    weak_against: [Raiden, Sonya]
//
// Unknown keys are rejected so that typos do not silently drop matchups.
func LoadChart(path string) (*Chart, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read chart: %w", err)
	}
	defer file.Close()

	var f chartFile
	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse chart %s: %w", path, err)
	}
	c, err := NewChart(f.Types)
	if err != nil {
		return nil, fmt.Errorf("load chart %s: %w", path, err)
	}
	return c, nil
}

// Types returns the chart's types in declaration order.
func (c *Chart) Types() []Type {
	return slices.Clone(c.types)
}

func (c *Chart) Len() int { return len(c.types) }

// Lookup finds a type by name, ignoring case and surrounding space.
func (c *Chart) Lookup(name string) (Type, bool) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Type{}, false
	}
	return c.types[i], true
}

// Resolve maps names to types, failing on the first unknown name.
func (c *Chart) Resolve(names ...string) ([]Type, error) {
	out := make([]Type, 0, len(names))
	for _, n := range names {
		t, ok := c.Lookup(n)
		if !ok {
			return nil, UnknownTypeError{Name: n}
		}
		out = append(out, t)
	}
	return out, nil
}

// Validate reports malformed matchups. Nothing here is fatal: a type that
// lists itself, or lists a name in both directions, still resolves and
// simply skews its own multiplier.
func (c *Chart) Validate() []string {
	var warnings []string
	names := typeNames(c.types)
	for _, t := range c.types {
		if slices.Contains(t.StrongAgainst, t.Name) || slices.Contains(t.WeakAgainst, t.Name) {
			warnings = append(warnings, fmt.Sprintf("%s lists itself as a matchup", t.Name))
		}
		for _, n := range t.StrongAgainst {
			if slices.Contains(t.WeakAgainst, n) {
				warnings = append(warnings, fmt.Sprintf("%s is both strong and weak against %s", t.Name, n))
			}
		}
		for _, n := range slices.Concat(t.StrongAgainst, t.WeakAgainst) {
			if !slices.Contains(names, n) {
				warnings = append(warnings, fmt.Sprintf("%s references unknown type %s", t.Name, n))
			}
		}
	}
	return warnings
}
