package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"kombat/internal/engine"
	"kombat/internal/ui"
)

type phase int

const (
	phasePickP1 phase = iota
	phasePickP2
	phaseFight
	phaseOver
)

const logLines = 8

type arenaModel struct {
	ctx   context.Context
	chart *engine.Chart
	log   *slog.Logger

	width  int
	height int

	phase  phase
	p1     *engine.Fighter
	battle *engine.Battle

	lines   []string
	lastLog string
	err     error
}

func newArenaModel(ctx context.Context, chart *engine.Chart, log *slog.Logger) arenaModel {
	return arenaModel{
		ctx:     ctx,
		chart:   chart,
		log:     log,
		lastLog: "Player 1, pick a style.",
	}
}

func (m arenaModel) Init() tea.Cmd {
	return nil
}

func (m arenaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "n":
			if m.phase == phaseOver {
				return newArenaModel(m.ctx, m.chart, m.log), nil
			}
			return m, nil
		}
		return m.choose(key)
	}
	return m, nil
}

// choose handles a numbered menu key for the current phase. Anything that is
// not on the menu keeps the phase and asks again.
func (m arenaModel) choose(key string) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phasePickP1, phasePickP2:
		types := m.chart.Types()
		i, ok := engine.ParseMenuChoice(key, len(types))
		if !ok {
			m.lastLog = "Invalid choice, pick 1-" + fmt.Sprint(len(types)) + "."
			return m, nil
		}
		if m.phase == phasePickP1 {
			f, err := engine.NewFighter("Player 1", types[i])
			if err != nil {
				m.err = err
				return m, nil
			}
			m.p1 = f
			m.phase = phasePickP2
			m.lastLog = "Player 2, pick a style."
			return m, nil
		}
		p2, err := engine.NewFighter("Player 2", types[i])
		if err != nil {
			m.err = err
			return m, nil
		}
		b, err := engine.NewBattle(m.p1, p2, engine.WithLogger(m.log))
		if err != nil {
			m.err = err
			return m, nil
		}
		m.battle = b
		m.phase = phaseFight
		m.narrate(fmt.Sprintf("%s vs %s", m.p1.Describe(), p2.Describe()))
		m.lastLog = m.p1.Name + ", choose an attack."
		return m, nil
	case phaseFight:
		attack, ok := engine.ParseAttack(key)
		if !ok {
			m.lastLog = "Invalid choice, pick 1-4."
			return m, nil
		}
		return m.playTurn(attack), nil
	}
	return m, nil
}

// playTurn resolves the attack inside Update. The battle is shared with View,
// so it must never be touched from a tea.Cmd goroutine.
func (m arenaModel) playTurn(attack engine.Attack) arenaModel {
	attacker, _ := m.battle.Combatants()
	m.narrate(engine.AnnounceTurn(m.battle.Turn(), attacker))
	res, err := m.battle.PlayTurn(m.ctx, attack)
	if err != nil {
		m.lastLog = "Turn failed: " + err.Error()
		return m
	}
	m.narrate(engine.AnnounceAttack(res))
	if m.battle.Over() {
		m.phase = phaseOver
		m.narrate(engine.AnnounceWinner(m.battle.Winner()))
		m.lastLog = "Press n for a rematch or q to quit."
		return m
	}
	next, _ := m.battle.Combatants()
	m.lastLog = next.Name + ", choose an attack."
	return m
}

func (m *arenaModel) narrate(line string) {
	m.lines = append(m.lines, line)
	if len(m.lines) > logLines {
		m.lines = m.lines[len(m.lines)-logLines:]
	}
}

func (m arenaModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconDragon, "Kombat Arena"))
	b.WriteString("\n\n")
	b.WriteString(m.renderFighters())
	b.WriteString("\n")
	b.WriteString(m.renderMenu())
	b.WriteString("\n")
	if len(m.lines) > 0 {
		b.WriteString(ui.Panel.Render(strings.Join(m.lines, "\n")))
		b.WriteString("\n")
	}
	b.WriteString("\n" + m.lastLog + "\n")
	b.WriteString(ui.Muted.Render("1-9: choose • n: rematch • q: quit"))
	return b.String()
}

func (m arenaModel) renderFighters() string {
	var active *engine.Fighter
	if m.phase == phaseFight {
		active, _ = m.battle.Combatants()
	}
	var rows []string
	for _, f := range []*engine.Fighter{m.fighter(1), m.fighter(2)} {
		if f == nil {
			continue
		}
		bar := ui.HealthStyle(f.Health(), f.MaxHealth()).Render(ui.HealthBar(f.Health(), f.MaxHealth(), 20))
		status := ""
		if f.Fainted() {
			status = " " + ui.IconSkull
		}
		name := ui.Key
		if f == active {
			name = ui.SelectedRow
		}
		rows = append(rows, fmt.Sprintf("%s %s %s%s", name.Render(fmt.Sprintf("%-24s", f.Describe())), ui.IconHeart, bar, status))
	}
	if len(rows) == 0 {
		return ""
	}
	return strings.Join(rows, "\n") + "\n"
}

func (m arenaModel) fighter(n int) *engine.Fighter {
	if m.battle != nil {
		if n == 1 {
			return m.battle.P1
		}
		return m.battle.P2
	}
	if n == 1 {
		return m.p1
	}
	return nil
}

func (m arenaModel) renderMenu() string {
	var title string
	var options []string
	switch m.phase {
	case phasePickP1, phasePickP2:
		title = "Styles"
		for _, t := range m.chart.Types() {
			options = append(options, t.Name)
		}
	case phaseFight:
		title = "Attacks"
		for _, a := range engine.Attacks() {
			options = append(options, a.String())
		}
	default:
		return ui.Gold.Render(ui.IconTrophy + " " + ui.BadgeKO)
	}
	lines := []string{ui.PanelTitle.Render(title)}
	for i, o := range options {
		lines = append(lines, fmt.Sprintf("%s %s", ui.Key.Render(fmt.Sprintf("%d)", i+1)), o))
	}
	return strings.Join(lines, "\n")
}
