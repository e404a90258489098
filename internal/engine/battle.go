package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

type Outcome string

const (
	OutcomeOngoing Outcome = "ongoing"
	OutcomeP1Won   Outcome = "p1_won"
	OutcomeP2Won   Outcome = "p2_won"
)

const (
	eventP1Wins = "p1_wins"
	eventP2Wins = "p2_wins"
)

// TurnResult records one resolved attack.
type TurnResult struct {
	Turn          int
	Attacker      *Fighter
	Defender      *Fighter
	Attack        Attack
	Effectiveness float64
	Damage        int
	Outcome       Outcome
}

type Option func(*Battle)

// WithMaxTurns caps the number of turns. Zero means no cap.
func WithMaxTurns(n int) Option {
	return func(b *Battle) {
		if n > 0 {
			b.maxTurns = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(b *Battle) {
		if l != nil {
			b.log = l
		}
	}
}

// Battle pairs two fighters. Odd turns belong to P1, even turns to P2.
type Battle struct {
	ID string
	P1 *Fighter
	P2 *Fighter

	turn        int
	maxTurns    int
	stallWarned bool
	state       *fsm.FSM
	log         *slog.Logger
}

func NewBattle(p1, p2 *Fighter, opts ...Option) (*Battle, error) {
	if p1 == nil || p2 == nil {
		return nil, errors.New("battle needs two fighters")
	}
	if p1 == p2 {
		return nil, errors.New("a fighter cannot battle itself")
	}
	b := &Battle{
		ID:   uuid.NewString(),
		P1:   p1,
		P2:   p2,
		turn: 1,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		state: fsm.NewFSM(
			string(OutcomeOngoing),
			fsm.Events{
				{Name: eventP1Wins, Src: []string{string(OutcomeOngoing)}, Dst: string(OutcomeP1Won)},
				{Name: eventP2Wins, Src: []string{string(OutcomeOngoing)}, Dst: string(OutcomeP2Won)},
			},
			fsm.Callbacks{},
		),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.With("battle_id", b.ID)
	return b, nil
}

func (b *Battle) Turn() int { return b.turn }

func (b *Battle) Outcome() Outcome { return Outcome(b.state.Current()) }

func (b *Battle) Over() bool { return b.Outcome() != OutcomeOngoing }

// Combatants returns who attacks and who defends on the current turn.
func (b *Battle) Combatants() (attacker, defender *Fighter) {
	if b.turn%2 == 1 {
		return b.P1, b.P2
	}
	return b.P2, b.P1
}

// Winner is nil while the battle is ongoing.
func (b *Battle) Winner() *Fighter {
	switch b.Outcome() {
	case OutcomeP1Won:
		return b.P1
	case OutcomeP2Won:
		return b.P2
	default:
		return nil
	}
}

// PlayTurn resolves one attack for the fighter whose turn it is.
func (b *Battle) PlayTurn(ctx context.Context, attack Attack) (*TurnResult, error) {
	if b.Over() {
		return nil, ErrBattleOver
	}
	if b.maxTurns > 0 && b.turn > b.maxTurns {
		return nil, fmt.Errorf("%w (%d)", ErrTurnLimit, b.maxTurns)
	}
	if !attack.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttack, attack)
	}

	attacker, defender := b.Combatants()
	eff := TotalEffectiveness(attacker, defender)
	dmg := ComputeDamage(attacker, defender, eff)
	defender.ApplyDamage(dmg)

	res := &TurnResult{
		Turn:          b.turn,
		Attacker:      attacker,
		Defender:      defender,
		Attack:        attack,
		Effectiveness: eff,
		Damage:        dmg,
	}
	b.turn++

	b.log.Debug("turn resolved",
		"turn", res.Turn,
		"attacker", attacker.Name,
		"defender", defender.Name,
		"attack", string(attack),
		"effectiveness", eff,
		"damage", dmg,
		"defender_hp", defender.Health(),
	)
	if dmg == 0 {
		if !b.stallWarned {
			b.stallWarned = true
			b.log.Warn("attack dealt no damage; battle may stall", "turn", res.Turn, "attacker", attacker.Name)
		} else {
			b.log.Debug("attack dealt no damage", "turn", res.Turn, "attacker", attacker.Name)
		}
	}

	// Only the defender takes damage, so checking it first gives the attacker
	// the win on any tie.
	var event string
	switch {
	case defender.Fainted():
		event = b.winEvent(attacker)
	case attacker.Fainted():
		event = b.winEvent(defender)
	}
	if event != "" {
		if err := b.state.Event(ctx, event); err != nil {
			return nil, fmt.Errorf("battle state: %w", err)
		}
		b.log.Info("battle over", "outcome", b.Outcome(), "turns", res.Turn)
	}
	res.Outcome = b.Outcome()
	return res, nil
}

func (b *Battle) winEvent(f *Fighter) string {
	if f == b.P1 {
		return eventP1Wins
	}
	return eventP2Wins
}

// Run plays turns until someone faints, asking in for each attack and
// narrating through out.
func (b *Battle) Run(ctx context.Context, in InputProvider, out Presenter) (Outcome, error) {
	out.Show(fmt.Sprintf("%s vs %s", b.P1.Describe(), b.P2.Describe()))
	out.Show(HealthSnapshot(b.P1, b.P2))
	for !b.Over() {
		if b.maxTurns > 0 && b.turn > b.maxTurns {
			return b.Outcome(), fmt.Errorf("%w (%d)", ErrTurnLimit, b.maxTurns)
		}
		attacker, _ := b.Combatants()
		out.Show(AnnounceTurn(b.turn, attacker))

		attack, err := in.SelectAttack()
		if err != nil {
			return b.Outcome(), fmt.Errorf("select attack: %w", err)
		}
		res, err := b.PlayTurn(ctx, attack)
		if err != nil {
			return b.Outcome(), err
		}
		out.Show(AnnounceAttack(res))
		out.Show(HealthSnapshot(b.P1, b.P2))
	}
	out.Show(AnnounceWinner(b.Winner()))
	return b.Outcome(), nil
}
