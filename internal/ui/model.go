// SPDX-License-Identifier: EPL-2.0

// Package ui is the terminal front end: a progress bar, the status line and
// the command field over a wavsnip session.
package ui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ik5/wavsnip/playback"
)

// Session is the editing surface driven by the UI.
type Session interface {
	Apply(text string) error
	Random() error
	Export() (string, error)
	Play() error
	Toggle() error
	Stop()
	SetLoop(loop bool)
	Loop() bool
	Handle(ev playback.Event) error
	Subscribe(o playback.Observer)
	Progress() playback.Progress
	Status() string
	Path() string
}

// EventMsg carries a device event into the event loop.
type EventMsg playback.Event

type tickMsg time.Time

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const helpText = "enter: play/pause or apply command • ctrl+p: play from start • ctrl+s: stop\n" +
	"ctrl+r: random region • ctrl+e: export • ctrl+l: loop • esc: quit"

type Model struct {
	session  Session
	interval time.Duration
	logger   *slog.Logger

	input    textinput.Model
	bar      progress.Model
	progress playback.Progress

	message string
	failed  bool
}

// New builds the UI over session. The progress tick fires every interval.
func New(session Session, interval time.Duration, logger *slog.Logger) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "l-0.5, r1 ..."
	input.CharLimit = 32
	input.Focus()

	m := &Model{
		session:  session,
		interval: interval,
		logger:   logger,
		input:    input,
		bar:      progress.New(progress.WithDefaultGradient()),
		progress: session.Progress(),
	}
	session.Subscribe(func(p playback.Progress) { m.progress = p })

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = max(msg.Width-4, 10)
		return m, nil

	case tickMsg:
		m.handle(playback.Event{Kind: playback.Notify})
		return m, m.tick()

	case EventMsg:
		m.handle(playback.Event(msg))
		m.progress = m.session.Progress()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.session.Stop()
			return m, tea.Quit
		case "enter":
			m.submit()
			return m, nil
		case "ctrl+p":
			m.report(m.session.Play(), "playing from region start")
			return m, nil
		case "ctrl+s":
			m.session.Stop()
			m.report(nil, "stopped")
			return m, nil
		case "ctrl+r":
			m.report(m.session.Random(), "random region")
			return m, nil
		case "ctrl+e":
			path, err := m.session.Export()
			m.report(err, "exported "+path)
			return m, nil
		case "ctrl+l":
			m.session.SetLoop(!m.session.Loop())
			m.report(nil, "loop toggled")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// submit applies the command field, or works the play button when it is
// empty. The field is cleared either way.
func (m *Model) submit() {
	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()

	if text == "" {
		m.report(m.session.Toggle(), "")
		return
	}

	m.report(m.session.Apply(text), "applied "+text)
}

func (m *Model) handle(ev playback.Event) {
	if err := m.session.Handle(ev); err != nil {
		m.logger.Error("playback event failed", "event", ev.Kind, "error", err)
		m.report(err, "")
	}
}

func (m *Model) report(err error, ok string) {
	m.progress = m.session.Progress()

	if err != nil {
		m.failed = true
		m.message = err.Error()
		return
	}

	m.failed = false
	m.message = ok
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wavsnip " + m.session.Path()))
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(m.progress.Fraction))
	b.WriteString("\n")
	b.WriteString(m.session.Status())
	b.WriteString("\n")

	switch {
	case m.failed:
		b.WriteString(errStyle.Render(m.message))
	case m.message != "":
		b.WriteString(infoStyle.Render(m.message))
	}
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(helpText))
	b.WriteString("\n")

	return b.String()
}

// Message is the last feedback line and whether it reports a failure.
func (m *Model) Message() (string, bool) { return m.message, m.failed }
