package engine

// InputProvider supplies menu choices. Implementations re-prompt on invalid
// input themselves and block until a valid choice arrives; the error return is
// reserved for the input source going away (closed stdin).
type InputProvider interface {
	SelectType() (Type, error)
	SelectAttack() (Attack, error)
}

// Presenter displays battle narration. Nothing it returns is consumed.
type Presenter interface {
	Show(text string)
}

// PresenterFunc adapts a plain function to Presenter.
type PresenterFunc func(text string)

func (f PresenterFunc) Show(text string) { f(text) }

// SelectFighter builds a fighter from n consecutive type selections.
func SelectFighter(in InputProvider, name string, n int) (*Fighter, error) {
	if n < 1 {
		return nil, ErrNoTypes
	}
	types := make([]Type, 0, n)
	for i := 0; i < n; i++ {
		t, err := in.SelectType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return NewFighter(name, types...)
}
