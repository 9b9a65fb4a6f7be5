package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/matrica/internal/clipboard"
)

const defaultCopyFeedback = 2 * time.Second

type revealMsg struct {
	gen int
}

type copyDoneMsg struct {
	gen int
	err error
}

type copyResetMsg struct {
	gen int
}

func revealCmd(gen int) tea.Cmd {
	return func() tea.Msg {
		return revealMsg{gen: gen}
	}
}

func copyCmd(w clipboard.Writer, text string, gen int) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{gen: gen, err: w.Write(text)}
	}
}

func copyResetCmd(d time.Duration, gen int) tea.Cmd {
	if d <= 0 {
		d = defaultCopyFeedback
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return copyResetMsg{gen: gen}
	})
}
