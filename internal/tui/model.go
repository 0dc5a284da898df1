// Package tui is the terminal rendition of the login form.
package tui

import (
	"strings"

	"specfarm-front/internal/loginform"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type row int

const (
	rowIdentifier row = iota
	rowSecret
	rowRemember
	rowSubmit
	rowCount
)

var (
	logoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1d5902"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8cbf75"))
	dangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53e3e"))
	bannerStyle  = dangerStyle.Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#e53e3e"))
	buttonStyle  = lipgloss.NewStyle().Padding(0, 3).Foreground(lipgloss.Color("#fff")).Background(lipgloss.Color("#1d5902"))
	focusedStyle = buttonStyle.Underline(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// submitDoneMsg carries the outcome of a submit command.
type submitDoneMsg struct {
	outcome loginform.Outcome
}

// Model drives a mounted loginform.Form from key presses.
type Model struct {
	form    *loginform.Form
	id      textinput.Model
	pw      textinput.Model
	spinner spinner.Model
	focus   row
	pending bool // a submit command is running
	done    bool
}

// New builds the model for a form that is already mounted.
func New(form *loginform.Form) Model {
	id := textinput.New()
	id.Prompt = "> "
	id.Placeholder = "아이디"
	id.SetValue(form.Snapshot().Identifier)

	pw := textinput.New()
	pw.Prompt = "> "
	pw.Placeholder = "비밀번호"
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '•'

	m := Model{
		form:    form,
		id:      id,
		pw:      pw,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	// a remembered id means the password is what's left to type
	if form.Snapshot().Identifier != "" {
		m.focus = rowSecret
		m.pw.Focus()
	} else {
		m.id.Focus()
	}
	return m
}

// LoggedIn reports whether the program ended with a successful login.
func (m Model) LoggedIn() bool { return m.done }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m.moveFocus(1), nil
		case "shift+tab", "up":
			return m.moveFocus(-1), nil
		case "enter":
			if m.focus == rowRemember {
				m.toggleRemember()
				return m, nil
			}
			m.pending = true
			return m, m.submit()
		case " ":
			if m.focus == rowRemember {
				m.toggleRemember()
				return m, nil
			}
		}

	case submitDoneMsg:
		m.pending = false
		if msg.outcome == loginform.OutcomeSucceeded {
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.focus {
	case rowIdentifier:
		m.id, cmd = m.id.Update(msg)
		m.form.SetIdentifier(m.id.Value())
	case rowSecret:
		m.pw, cmd = m.pw.Update(msg)
	}
	return m, cmd
}

// moveFocus fires blur on the row being left and focus on the one entered.
func (m Model) moveFocus(delta int) Model {
	switch m.focus {
	case rowIdentifier:
		m.id.Blur()
		m.form.BlurIdentifier()
	case rowSecret:
		m.pw.Blur()
		m.form.BlurSecret(m.pw.Value())
	}

	m.focus = (m.focus + row(delta) + rowCount) % rowCount

	switch m.focus {
	case rowIdentifier:
		m.id.Focus()
		m.form.FocusIdentifier()
	case rowSecret:
		m.pw.Focus()
		m.form.FocusSecret()
	}
	return m
}

func (m Model) toggleRemember() {
	m.form.SetRemember(!m.form.Snapshot().Remember)
}

// submit hands the attempt to a command so the UI keeps drawing.
func (m Model) submit() tea.Cmd {
	form, secret := m.form, m.pw.Value()
	return tea.Batch(
		func() tea.Msg {
			return submitDoneMsg{outcome: form.Submit(secret)}
		},
		m.spinner.Tick,
	)
}

func (m Model) View() string {
	s := m.form.Snapshot()
	var b strings.Builder

	b.WriteString(logoStyle.Render("specFarm") + "\n")
	b.WriteString("로그인\n\n")

	b.WriteString(fieldLabel("아이디", s.IdentifierInvalid) + "\n")
	b.WriteString(m.id.View() + "\n\n")
	b.WriteString(fieldLabel("비밀번호", s.SecretInvalid) + "\n")
	b.WriteString(m.pw.View() + "\n\n")

	box := "[ ]"
	if s.Remember {
		box = "[x]"
	}
	remember := box + " 아이디 저장"
	if m.focus == rowRemember {
		remember = labelStyle.Render(remember)
	}
	b.WriteString(remember + "\n\n")

	if s.ErrorVisible {
		b.WriteString(bannerStyle.Render(strings.Join(loginform.BannerLines, "\n")) + "\n\n")
	}

	button := buttonStyle
	if m.focus == rowSubmit {
		button = focusedStyle
	}
	b.WriteString(button.Render("로그인"))
	if s.Submitting || m.pending {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("tab: next • enter: submit • space: toggle • esc: quit"))
	return b.String()
}

func fieldLabel(text string, invalid bool) string {
	if invalid {
		return dangerStyle.Render(text + " *")
	}
	return labelStyle.Render(text)
}
