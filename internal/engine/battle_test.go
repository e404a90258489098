package engine

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

type scriptedInput struct {
	types   []Type
	attacks []Attack
}

func (s *scriptedInput) SelectType() (Type, error) {
	if len(s.types) == 0 {
		return Type{}, io.EOF
	}
	t := s.types[0]
	s.types = s.types[1:]
	return t, nil
}

func (s *scriptedInput) SelectAttack() (Attack, error) {
	if len(s.attacks) == 0 {
		return AttackHighPunch, nil
	}
	a := s.attacks[0]
	s.attacks = s.attacks[1:]
	return a, nil
}

type recorder struct {
	lines []string
}

func (r *recorder) Show(text string) { r.lines = append(r.lines, text) }

func newDuel(t *testing.T, p1Type, p2Type string, opts ...Option) *Battle {
	t.Helper()
	c := DefaultChart()
	p1 := mustFighter(t, "Character 1", mustType(t, c, p1Type))
	p2 := mustFighter(t, "Character 2", mustType(t, c, p2Type))
	b, err := NewBattle(p1, p2, opts...)
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}
	return b
}

func TestBattleStartsOngoing(t *testing.T) {
	b := newDuel(t, TypeScorpion, TypeSubZero)
	if b.Turn() != 1 {
		t.Fatalf("turn=%d, want 1", b.Turn())
	}
	if b.Outcome() != OutcomeOngoing || b.Over() || b.Winner() != nil {
		t.Fatalf("outcome=%s over=%v", b.Outcome(), b.Over())
	}
	if b.ID == "" {
		t.Fatalf("expected a battle id")
	}
	attacker, defender := b.Combatants()
	if attacker != b.P1 || defender != b.P2 {
		t.Fatalf("turn 1 should be P1 attacking P2")
	}
}

func TestNewBattleRejectsBadPairs(t *testing.T) {
	f := mustFighter(t, "Solo", DefaultChart().Types()[0])
	if _, err := NewBattle(f, f); err == nil {
		t.Fatalf("expected error for self battle")
	}
	if _, err := NewBattle(f, nil); err == nil {
		t.Fatalf("expected error for missing fighter")
	}
}

func TestPlayTurnOneShotKnockout(t *testing.T) {
	ctx := context.Background()
	b := newDuel(t, TypeScorpion, TypeSubZero)

	res, err := b.PlayTurn(ctx, AttackUppercut)
	if err != nil {
		t.Fatalf("PlayTurn: %v", err)
	}
	if res.Damage != 96 || res.Effectiveness != 2.0 {
		t.Fatalf("damage=%d eff=%v, want 96/2", res.Damage, res.Effectiveness)
	}
	if !b.P2.Fainted() || b.P2.Health() != 0 {
		t.Fatalf("P2 should be fainted at 0 hp, got %d", b.P2.Health())
	}
	if res.Outcome != OutcomeP1Won || b.Winner() != b.P1 {
		t.Fatalf("outcome=%s, want p1_won", res.Outcome)
	}
	if b.Turn() != 2 {
		t.Fatalf("turn=%d, want 2", b.Turn())
	}

	if _, err := b.PlayTurn(ctx, AttackHighPunch); !errors.Is(err, ErrBattleOver) {
		t.Fatalf("PlayTurn after win err=%v, want ErrBattleOver", err)
	}
	if b.Turn() != 2 || b.Outcome() != OutcomeP1Won {
		t.Fatalf("terminal state changed: turn=%d outcome=%s", b.Turn(), b.Outcome())
	}
}

func TestPlayTurnAlternatesAndP2CanWin(t *testing.T) {
	ctx := context.Background()
	b := newDuel(t, TypeRaiden, TypeSubZero)

	first, err := b.PlayTurn(ctx, AttackLowKick)
	if err != nil {
		t.Fatalf("turn 1: %v", err)
	}
	if first.Attacker != b.P1 || first.Damage != 24 {
		t.Fatalf("turn 1 attacker=%s damage=%d, want P1/24", first.Attacker.Name, first.Damage)
	}
	if b.P2.Health() != 26 {
		t.Fatalf("P2 hp=%d, want 26", b.P2.Health())
	}

	second, err := b.PlayTurn(ctx, AttackSpecialMove)
	if err != nil {
		t.Fatalf("turn 2: %v", err)
	}
	if second.Attacker != b.P2 || second.Damage != 96 {
		t.Fatalf("turn 2 attacker=%s damage=%d, want P2/96", second.Attacker.Name, second.Damage)
	}
	if b.Outcome() != OutcomeP2Won || b.Winner() != b.P2 {
		t.Fatalf("outcome=%s, want p2_won", b.Outcome())
	}
}

func TestPlayTurnRejectsUnknownAttack(t *testing.T) {
	b := newDuel(t, TypeScorpion, TypeSonya)
	if _, err := b.PlayTurn(context.Background(), Attack("Fatality")); !errors.Is(err, ErrUnknownAttack) {
		t.Fatalf("err=%v, want ErrUnknownAttack", err)
	}
	if b.Turn() != 1 || b.P2.Health() != 50 {
		t.Fatalf("invalid attack changed state")
	}
}

func TestRunNeutralMirrorMatchTerminates(t *testing.T) {
	b := newDuel(t, TypeScorpion, TypeScorpion)
	out := &recorder{}

	outcome, err := b.Run(context.Background(), &scriptedInput{}, out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// 48 damage per hit: P2 50→2, P1 50→2, P2 2→0.
	if outcome != OutcomeP1Won {
		t.Fatalf("outcome=%s, want p1_won", outcome)
	}
	if b.Turn() != 4 {
		t.Fatalf("turn=%d, want 4", b.Turn())
	}
	if b.P1.Health() != 2 {
		t.Fatalf("P1 hp=%d, want 2", b.P1.Health())
	}

	last := out.lines[len(out.lines)-1]
	if last != "Character 1 (Scorpion) wins!" {
		t.Fatalf("last line=%q", last)
	}
	var snapshots int
	for _, l := range out.lines {
		if strings.Contains(l, "HP |") {
			snapshots++
		}
	}
	if snapshots != 4 {
		t.Fatalf("health snapshots=%d, want 4 (start + one per turn)", snapshots)
	}
}

func TestRunUsesProvidedAttacks(t *testing.T) {
	b := newDuel(t, TypeSonya, TypeScorpion)
	out := &recorder{}
	in := &scriptedInput{attacks: []Attack{AttackSpecialMove}}

	if _, err := b.Run(context.Background(), in, out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	found := false
	for _, l := range out.lines {
		if strings.Contains(l, "uses Special Move") && strings.Contains(l, "super effective") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected super effective Special Move narration, got %q", out.lines)
	}
}

func TestRunZeroDamageHitsTurnLimit(t *testing.T) {
	mist := Type{Name: "Mist", WeakAgainst: []string{"Mist", "Mist", "Mist", "Mist", "Mist", "Mist", "Mist"}}
	p1 := mustFighter(t, "A", mist)
	p2 := mustFighter(t, "B", mist)
	b, err := NewBattle(p1, p2, WithMaxTurns(10))
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}

	outcome, err := b.Run(context.Background(), &scriptedInput{}, &recorder{})
	if !errors.Is(err, ErrTurnLimit) {
		t.Fatalf("err=%v, want ErrTurnLimit", err)
	}
	if outcome != OutcomeOngoing {
		t.Fatalf("outcome=%s, want ongoing", outcome)
	}
	if p1.Health() != 50 || p2.Health() != 50 {
		t.Fatalf("zero-damage turns changed health: %d/%d", p1.Health(), p2.Health())
	}
	if b.Turn() != 11 {
		t.Fatalf("turn=%d, want 11", b.Turn())
	}
}

func TestZeroDamageWarnsOncePerBattle(t *testing.T) {
	mist := Type{Name: "Mist", WeakAgainst: []string{"Mist", "Mist", "Mist", "Mist", "Mist", "Mist", "Mist"}}
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	b, err := NewBattle(mustFighter(t, "A", mist), mustFighter(t, "B", mist), WithMaxTurns(20), WithLogger(log))
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}

	if _, err := b.Run(context.Background(), &scriptedInput{}, &recorder{}); !errors.Is(err, ErrTurnLimit) {
		t.Fatalf("err=%v, want ErrTurnLimit", err)
	}
	if n := strings.Count(logs.String(), "level=WARN"); n != 1 {
		t.Fatalf("warn lines=%d, want 1\n%s", n, logs.String())
	}
}

func TestRunPropagatesInputError(t *testing.T) {
	b := newDuel(t, TypeScorpion, TypeSonya)
	in := failingInput{err: io.EOF}
	if _, err := b.Run(context.Background(), in, &recorder{}); !errors.Is(err, io.EOF) {
		t.Fatalf("err=%v, want io.EOF", err)
	}
}

type failingInput struct{ err error }

func (f failingInput) SelectType() (Type, error)     { return Type{}, f.err }
func (f failingInput) SelectAttack() (Attack, error) { return "", f.err }

func TestSelectFighter(t *testing.T) {
	c := DefaultChart()
	in := &scriptedInput{types: []Type{mustType(t, c, TypeRaiden), mustType(t, c, TypeSonya)}}

	f, err := SelectFighter(in, "Character 2", 2)
	if err != nil {
		t.Fatalf("SelectFighter: %v", err)
	}
	if got := f.Describe(); got != "Character 2 (Raiden/Sonya)" {
		t.Fatalf("Describe()=%q", got)
	}
	if f.MaxHealth() != 100 {
		t.Fatalf("max hp=%d, want 100", f.MaxHealth())
	}

	if _, err := SelectFighter(in, "Character 3", 1); !errors.Is(err, io.EOF) {
		t.Fatalf("err=%v, want io.EOF", err)
	}
}
