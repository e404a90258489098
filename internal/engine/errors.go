package engine

import (
	"errors"
	"fmt"
)

var (
	ErrNoTypes       = errors.New("fighter needs at least one type")
	ErrUnknownType   = errors.New("unknown type")
	ErrUnknownAttack = errors.New("unknown attack")
	ErrBattleOver    = errors.New("battle is already over")
	ErrTurnLimit     = errors.New("turn limit reached")
)

// UnknownTypeError is returned when a type name is not in the chart.
// It matches ErrUnknownType under errors.Is.
type UnknownTypeError struct {
	Name string
}

func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type %q", e.Name)
}

func (e UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}
