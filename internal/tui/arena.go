package tui

import (
	"context"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"kombat/internal/engine"
)

func RunArena(ctx context.Context, chart *engine.Chart, log *slog.Logger, out io.Writer) error {
	m := newArenaModel(ctx, chart, log)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
