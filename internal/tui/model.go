// Package tui provides the Bubble Tea birth date form.
package tui

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/matrica/internal/clipboard"
	"github.com/verte-zerg/matrica/internal/form"
	"github.com/verte-zerg/matrica/internal/matrix"
	"github.com/verte-zerg/matrica/internal/model"
)

const focusNone = -1

var (
	titleStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	fieldLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	fieldStyle        = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
	fieldFocusStyle   = fieldStyle.BorderForeground(lipgloss.Color("#C89A3A"))
	fieldErrorStyle   = fieldStyle.BorderForeground(lipgloss.Color("#FF4D4F"))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	buttonStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
	buttonCopiedStyle = buttonStyle.Foreground(lipgloss.Color("#52C41A")).BorderForeground(lipgloss.Color("#52C41A"))
	numberStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Deps holds the collaborators of the form.
type Deps struct {
	Config    model.Config
	Clipboard clipboard.Writer
	Logger    *slog.Logger
}

// Model implements the Bubble Tea form. It owns the current result; the copy
// action reads it from here.
type Model struct {
	cfg       model.Config
	msgs      form.Messages
	validator *form.Validator
	clip      clipboard.Writer
	log       *slog.Logger

	inputs    []textinput.Model
	focus     int
	fieldErrs [3]bool
	errMsg    string

	result    *matrix.Result
	shown     bool
	revealGen int

	copied  bool
	copyGen int

	viewport viewport.Model
	width    int
	height   int
}

// NewModel constructs the form model.
func NewModel(deps Deps) *Model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	m := &Model{
		cfg:       deps.Config,
		msgs:      form.MessagesFor(deps.Config.Lang),
		validator: form.NewValidator(deps.Config.Lang),
		clip:      deps.Clipboard,
		log:       log,
		viewport:  viewport.New(0, 0),
	}
	m.initInputs()
	m.setFocus(0)
	return m
}

// Result returns the current result, or nil before the first valid submission.
func (m *Model) Result() *matrix.Result {
	return m.result
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case revealMsg:
		if msg.gen != m.revealGen {
			return m, nil
		}
		m.shown = true
		m.refreshContent()
		m.scrollResultIntoView()
		return m, nil
	case copyDoneMsg:
		return m, m.handleCopyDone(msg)
	case copyResetMsg:
		if msg.gen == m.copyGen {
			m.copied = false
			m.refreshContent()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.focus != focusNone {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.refreshContent()
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	body := m.renderBody()
	if m.width == 0 || m.height == 0 {
		return body + "\n" + m.renderFooter()
	}
	return fitLines(m.viewport.View(), m.width, m.viewport.Height) + "\n" + padLine(m.renderFooter(), m.width)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		return m, m.submit()
	case "tab":
		return m, m.cycleFocus(1)
	case "shift+tab":
		return m, m.cycleFocus(-1)
	case "ctrl+y":
		return m, m.copyResult()
	}
	if m.focus == focusNone {
		if msg.String() == "c" {
			return m, m.copyResult()
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, m.updateField(msg)
}

// updateField feeds a key to the focused field, strips non-digits and
// advances focus once the field is complete.
func (m *Model) updateField(msg tea.KeyMsg) tea.Cmd {
	idx := m.focus
	before := m.inputs[idx].Value()
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	value := m.inputs[idx].Value()
	if sanitized := form.SanitizeDigits(value); sanitized != value {
		m.inputs[idx].SetValue(sanitized)
		value = sanitized
	}
	if value == before {
		m.refreshContent()
		return cmd
	}
	m.fieldErrs[idx] = false
	m.errMsg = ""
	if form.FieldComplete(model.Field(idx), value) {
		if idx < len(m.inputs)-1 {
			cmd = tea.Batch(cmd, m.setFocus(idx+1))
		} else {
			m.setFocus(focusNone)
		}
	}
	m.refreshContent()
	return cmd
}

func (m *Model) submit() tea.Cmd {
	m.fieldErrs = [3]bool{}
	m.errMsg = ""
	date, err := m.validator.Validate(m.inputs[0].Value(), m.inputs[1].Value(), m.inputs[2].Value())
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				m.fieldErrs[f] = true
			}
		}
		m.errMsg = err.Error()
		m.log.Debug("form.rejected", "reason", err.Error())
		m.refreshContent()
		return nil
	}

	result := matrix.Calculate(date.Day, date.Month, date.Year)
	m.result = &result
	m.log.Debug("matrix.calculated", "destiny", result.Destiny, "additional", matrix.AdditionalString(result))

	// Hide first so the reveal restarts on every submission.
	m.shown = false
	m.revealGen++
	m.refreshContent()
	return revealCmd(m.revealGen)
}

func (m *Model) copyResult() tea.Cmd {
	if m.result == nil || m.clip == nil {
		return nil
	}
	m.copyGen++
	return copyCmd(m.clip, matrix.Summary(*m.result), m.copyGen)
}

func (m *Model) handleCopyDone(msg copyDoneMsg) tea.Cmd {
	if msg.gen != m.copyGen {
		return nil
	}
	if msg.err != nil {
		m.log.Warn("clipboard.failed", "writer", m.clip.Name(), "err", msg.err)
	} else {
		m.log.Debug("clipboard.copied", "writer", m.clip.Name())
	}
	m.copied = true
	m.refreshContent()
	return copyResetCmd(m.cfg.CopyFeedback, msg.gen)
}

func (m *Model) initInputs() {
	m.inputs = make([]textinput.Model, len(form.FieldLimits))
	for i, limit := range form.FieldLimits {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = m.msgs.Hints[i]
		input.CharLimit = limit
		input.Width = limit + 1
		input.Cursor.SetMode(cursor.CursorBlink)
		m.inputs[i] = input
	}
}

func (m *Model) setFocus(idx int) tea.Cmd {
	m.focus = focusNone
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == idx {
			m.focus = i
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	count := len(m.inputs)
	next := m.focus + delta
	if m.focus == focusNone {
		next = 0
		if delta < 0 {
			next = count - 1
		}
	}
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	cmd := m.setFocus(next)
	m.refreshContent()
	return cmd
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = maxInt(1, m.height-1)
	m.refreshContent()
}

func (m *Model) refreshContent() {
	m.viewport.SetContent(m.renderBody())
}

// scrollResultIntoView moves the viewport the least amount needed to show
// the result panel.
func (m *Model) scrollResultIntoView() {
	if m.viewport.Height <= 0 || !m.shown {
		return
	}
	start := lipgloss.Height(m.renderFormSection()) + 1
	end := start + lipgloss.Height(m.renderResult())
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	switch {
	case start < top:
		m.viewport.SetYOffset(start)
	case end > bottom:
		m.viewport.SetYOffset(minInt(start, end-m.viewport.Height))
	}
}

func (m *Model) renderBody() string {
	sections := []string{m.renderFormSection()}
	if m.result != nil && m.shown {
		sections = append(sections, m.renderResult())
	}
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderFormSection() string {
	labels := [3]string{m.msgs.Day, m.msgs.Month, m.msgs.Year}
	fields := make([]string, 0, len(m.inputs))
	for i, input := range m.inputs {
		style := fieldStyle
		switch {
		case m.fieldErrs[i]:
			style = fieldErrorStyle
		case i == m.focus:
			style = fieldFocusStyle
		}
		box := style.Render(input.View())
		fields = append(fields, lipgloss.JoinVertical(lipgloss.Left, fieldLabelStyle.Render(labels[i]), box)+" ")
	}
	row := lipgloss.JoinHorizontal(lipgloss.Bottom, append(fields, buttonStyle.Render(m.msgs.Submit))...)
	lines := []string{titleStyle.Render(m.msgs.Title), "", row}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderResult() string {
	r := *m.result
	header := []string{
		fieldLabelStyle.Render(m.msgs.Destiny+": ") + numberStyle.Render(itoa(r.Destiny)),
		fieldLabelStyle.Render(m.msgs.Additional+": ") + numberStyle.Render(matrix.AdditionalString(r)),
		"",
		titleStyle.Render(m.msgs.MatrixTitle),
	}
	button := buttonStyle.Render(m.msgs.CopyButton)
	if m.copied {
		button = buttonCopiedStyle.Render(m.msgs.Copied)
	}
	return strings.Join(header, "\n") + "\n" + renderGrid(matrix.Layout(r), m.cfg.Lang) + "\n" + button
}

func (m *Model) renderFooter() string {
	help := m.msgs.Help
	if m.result != nil {
		help = m.msgs.HelpResult
	}
	return footerStyle.Render(truncateLine(help, m.width))
}
