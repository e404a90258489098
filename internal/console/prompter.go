// Package console implements the battle's input provider and presenter on
// plain line-based streams.
package console

import (
	"bufio"
	"fmt"
	"io"

	"kombat/internal/engine"
	"kombat/internal/ui"
)

// Prompter reads numbered menu choices from in and writes menus, prompts and
// narration to out. It re-prompts until it gets a valid token.
type Prompter struct {
	chart *engine.Chart
	in    *bufio.Scanner
	out   io.Writer
	// Label prefixes prompts, e.g. "Character 1". Optional.
	Label string
}

func NewPrompter(chart *engine.Chart, in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		chart: chart,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

func (p *Prompter) SelectType() (engine.Type, error) {
	types := p.chart.Types()
	options := make([]string, 0, len(types))
	for _, t := range types {
		options = append(options, t.Name)
	}
	i, err := p.choose("Choose a fighting style", options)
	if err != nil {
		return engine.Type{}, err
	}
	return types[i], nil
}

func (p *Prompter) SelectAttack() (engine.Attack, error) {
	attacks := engine.Attacks()
	options := make([]string, 0, len(attacks))
	for _, a := range attacks {
		options = append(options, a.String())
	}
	i, err := p.choose("Choose an attack", options)
	if err != nil {
		return "", err
	}
	return attacks[i], nil
}

// Show writes one line of narration.
func (p *Prompter) Show(text string) {
	fmt.Fprintln(p.out, text)
}

func (p *Prompter) choose(title string, options []string) (int, error) {
	heading := title
	if p.Label != "" {
		heading = p.Label + ": " + title
	}
	fmt.Fprintln(p.out, ui.H2.Render(heading))
	for i, o := range options {
		fmt.Fprintf(p.out, "  %s %s\n", ui.Key.Render(fmt.Sprintf("%d)", i+1)), o)
	}
	for {
		fmt.Fprintf(p.out, "Enter 1-%d: ", len(options))
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("read choice: %w", err)
			}
			return 0, io.ErrUnexpectedEOF
		}
		if i, ok := engine.ParseMenuChoice(p.in.Text(), len(options)); ok {
			return i, nil
		}
		fmt.Fprintln(p.out, ui.Warn.Render(ui.IconWarn+" Invalid choice, try again."))
	}
}
