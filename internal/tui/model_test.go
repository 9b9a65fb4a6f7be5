package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/matrica/internal/matrix"
	"github.com/verte-zerg/matrica/internal/model"
)

type fakeClipboard struct {
	texts []string
	err   error
}

func (f *fakeClipboard) Write(text string) error {
	f.texts = append(f.texts, text)
	return f.err
}

func (f *fakeClipboard) Name() string { return "fake" }

func newTestModel(clip *fakeClipboard) *Model {
	return NewModel(Deps{
		Config:    model.Config{Lang: "ru", CopyFeedback: time.Second},
		Clipboard: clip,
	})
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, t tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return cmd
}

func submitDate(t *testing.T, m *Model, day, month, year string) {
	t.Helper()
	typeText(m, day)
	typeText(m, month)
	typeText(m, year)
	cmd := press(m, tea.KeyEnter)
	if cmd == nil {
		t.Fatalf("expected reveal command after valid submission, error %q", m.errMsg)
	}
	m.Update(cmd())
}

func TestFieldsStripNonDigitsAndAdvance(t *testing.T) {
	m := newTestModel(&fakeClipboard{})
	typeText(m, "a1x")
	if got := m.inputs[0].Value(); got != "1" {
		t.Fatalf("expected sanitized day %q, got %q", "1", got)
	}
	if m.focus != 0 {
		t.Fatalf("expected focus to stay on day, got %d", m.focus)
	}
	typeText(m, "5")
	if m.focus != 1 {
		t.Fatalf("expected focus on month after two digits, got %d", m.focus)
	}
	typeText(m, "06")
	if m.focus != 2 {
		t.Fatalf("expected focus on year, got %d", m.focus)
	}
	typeText(m, "1990")
	if m.focus != focusNone {
		t.Fatalf("expected year to blur after four digits, got %d", m.focus)
	}
}

func TestSubmitEmptyMarksFields(t *testing.T) {
	m := newTestModel(&fakeClipboard{})
	typeText(m, "12")
	if cmd := press(m, tea.KeyEnter); cmd != nil {
		t.Fatalf("expected no command on invalid submission")
	}
	if m.errMsg != "Пожалуйста, заполните все поля" {
		t.Fatalf("unexpected error message: %q", m.errMsg)
	}
	if m.fieldErrs != [3]bool{false, true, true} {
		t.Fatalf("unexpected field marks: %v", m.fieldErrs)
	}
	if !strings.Contains(m.View(), "Пожалуйста, заполните все поля") {
		t.Fatalf("expected error message in view")
	}

	// Typing into a marked field clears its mark and the shared message.
	typeText(m, "1")
	if m.fieldErrs[1] || m.errMsg != "" {
		t.Fatalf("expected month mark and message cleared, got %v %q", m.fieldErrs, m.errMsg)
	}
	if !m.fieldErrs[2] {
		t.Fatalf("expected year mark to remain")
	}
}

func TestSubmitRangeError(t *testing.T) {
	m := newTestModel(&fakeClipboard{})
	typeText(m, "15")
	typeText(m, "13")
	typeText(m, "1899")
	press(m, tea.KeyEnter)
	if m.errMsg != "Укажите корректный месяц (1-12)" {
		t.Fatalf("unexpected error message: %q", m.errMsg)
	}
	if m.fieldErrs != [3]bool{false, true, false} {
		t.Fatalf("unexpected field marks: %v", m.fieldErrs)
	}
	if m.Result() != nil {
		t.Fatalf("expected no result")
	}
}

func TestSubmitRevealsResult(t *testing.T) {
	m := newTestModel(&fakeClipboard{})
	typeText(m, "15")
	typeText(m, "06")
	typeText(m, "1990")
	cmd := press(m, tea.KeyEnter)
	if m.Result() == nil {
		t.Fatalf("expected result after submission")
	}
	if m.shown {
		t.Fatalf("expected result hidden until reveal")
	}
	m.Update(cmd())
	if !m.shown {
		t.Fatalf("expected result shown after reveal")
	}
	view := m.View()
	for _, want := range []string{"Характер", "111", "Темперамент", "Число судьбы", "31, 4, 29, 2", "Скопировать матрицу"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestStaleRevealIgnored(t *testing.T) {
	m := newTestModel(&fakeClipboard{})
	submitDate(t, m, "15", "06", "1990")
	stale := m.revealGen
	press(m, tea.KeyEnter)
	if m.shown {
		t.Fatalf("expected resubmission to hide the result")
	}
	m.Update(revealMsg{gen: stale})
	if m.shown {
		t.Fatalf("expected stale reveal to be ignored")
	}
}

func TestCopyWithoutResultIsNoop(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(clip)
	if cmd := press(m, tea.KeyCtrlY); cmd != nil {
		t.Fatalf("expected no copy command without result")
	}
	if len(clip.texts) != 0 {
		t.Fatalf("expected no clipboard writes")
	}
}

func TestCopyShowsFeedbackAndResets(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(clip)
	submitDate(t, m, "15", "06", "1990")

	cmd := press(m, tea.KeyCtrlY)
	if cmd == nil {
		t.Fatalf("expected copy command")
	}
	done := cmd()
	if len(clip.texts) != 1 || clip.texts[0] != "111/22/3/4/5/6/—/—/999/4" {
		t.Fatalf("unexpected clipboard writes: %v", clip.texts)
	}
	if m.copied {
		t.Fatalf("expected feedback only after the write resolves")
	}
	_, reset := m.Update(done)
	if !m.copied || reset == nil {
		t.Fatalf("expected copied state and reset tick")
	}
	if !strings.Contains(m.View(), "Скопировано!") {
		t.Fatalf("expected copied label in view")
	}

	m.Update(copyResetMsg{gen: m.copyGen - 1})
	if !m.copied {
		t.Fatalf("expected stale reset to be ignored")
	}
	m.Update(copyResetMsg{gen: m.copyGen})
	if m.copied {
		t.Fatalf("expected copied state cleared")
	}
}

func TestCopyFailureStillShowsFeedback(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no clipboard")}
	m := newTestModel(clip)
	submitDate(t, m, "01", "01", "2000")
	cmd := press(m, tea.KeyCtrlY)
	m.Update(cmd())
	if !m.copied {
		t.Fatalf("expected copied feedback after failed write")
	}
	if m.errMsg != "" {
		t.Fatalf("expected clipboard failure not surfaced, got %q", m.errMsg)
	}
}

func TestCopyKeyWhenBlurred(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(clip)
	submitDate(t, m, "15", "06", "1990")
	if m.focus != focusNone {
		t.Fatalf("expected no focused field after year")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if cmd == nil {
		t.Fatalf("expected copy command from c key")
	}
	cmd()
	if len(clip.texts) != 1 {
		t.Fatalf("expected one clipboard write, got %d", len(clip.texts))
	}
}

func TestCycleFocus(t *testing.T) {
	m := newTestModel(&fakeClipboard{})
	press(m, tea.KeyShiftTab)
	if m.focus != 2 {
		t.Fatalf("expected wrap to year, got %d", m.focus)
	}
	press(m, tea.KeyTab)
	if m.focus != 0 {
		t.Fatalf("expected wrap to day, got %d", m.focus)
	}
}

func TestScrollResultIntoView(t *testing.T) {
	m := newTestModel(&fakeClipboard{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 12})
	submitDate(t, m, "15", "06", "1990")
	if m.viewport.YOffset == 0 {
		t.Fatalf("expected viewport to scroll toward the result")
	}
	start := lipgloss.Height(m.renderFormSection()) + 1
	if m.viewport.YOffset > start {
		t.Fatalf("expected result top to stay visible, offset %d start %d", m.viewport.YOffset, start)
	}
}

func TestRenderGridEmptyCells(t *testing.T) {
	m := newTestModel(&fakeClipboard{})
	submitDate(t, m, "15", "06", "1990")
	grid := strings.Split(renderGrid(matrix.Layout(*m.Result()), "ru"), "\n")
	if len(grid) != 5*(cellHeight+2) {
		t.Fatalf("expected %d grid lines, got %d", 5*(cellHeight+2), len(grid))
	}
	if strings.TrimSpace(grid[0][:3]) != "" {
		t.Fatalf("expected blank leading cell on first row: %q", grid[0])
	}
}
