package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kombat theme (CLI + TUI).
// Reusable styles and a few emojis.

const (
	IconDragon  = "🐉"
	IconFist    = "👊"
	IconHeart   = "❤️"
	IconSkull   = "💀"
	IconTrophy  = "🏆"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconScroll  = "📜"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeKO = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("K.O.")
)

var titleCaser = cases.Title(language.English)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// TitleName normalizes a user-supplied fighter name ("liu kang" → "Liu Kang").
// Blank input yields fallback.
func TitleName(name string, fallback string) string {
	s := strings.Join(strings.Fields(name), " ")
	if s == "" {
		return fallback
	}
	return titleCaser.String(s)
}

// HealthBar renders "[#####-----] 25/50". Width is the bar's inner width.
func HealthBar(health int, max int, width int) string {
	if max <= 0 {
		max = 1
	}
	if width <= 3 {
		width = 3
	}
	if health < 0 {
		health = 0
	}
	if health > max {
		health = max
	}
	filled := int(float64(health) / float64(max) * float64(width))
	bar := "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
	return fmt.Sprintf("%s %d/%d", bar, health, max)
}

// HealthStyle picks a colour by remaining health.
func HealthStyle(health int, max int) lipgloss.Style {
	switch {
	case health <= 0:
		return Muted
	case health*4 <= max:
		return Bad
	case health*2 <= max:
		return Warn
	default:
		return Good
	}
}

// EffectivenessText renders a multiplier like "×2", coloured by direction.
func EffectivenessText(eff float64) string {
	s := fmt.Sprintf("×%g", eff)
	switch {
	case eff > 1:
		return Good.Render(s)
	case eff < 1:
		return Bad.Render(s)
	default:
		return Muted.Render(s)
	}
}
