package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// which field the prompt wizard is collecting
type promptStep int

const (
	stepPrompt promptStep = iota
	stepLanguage
	stepFramework
)

// sent when the wizard has collected all fields
type SubmitGenerationMsg struct {
	prompt    string
	language  string
	framework string
}

// sent to abandon the wizard and return to the browser
type CancelPromptMsg struct{}

// collects prompt, language and framework one field at a time
type PromptModel struct {
	input      textinput.Model
	step       promptStep
	prompt     string
	language   string
	width      int
	isFetching bool
	spinner    spinner.Model
}

func NewPrompt() *PromptModel {
	ti := textinput.New()
	ti.Placeholder = "describe the code you want..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle

	return &PromptModel{
		input:   ti,
		step:    stepPrompt,
		spinner: s,
	}
}

func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *PromptModel) Update(msg tea.Msg) (*PromptModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.isFetching {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.reset()
			return m, func() tea.Msg { return CancelPromptMsg{} }

		case "enter":
			return m.advance()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 10

	case spinner.TickMsg:
		if !m.isFetching {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// moves to the next wizard step, emitting the submit message on the last one
func (m *PromptModel) advance() (*PromptModel, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.step {
	case stepPrompt:
		if value == "" {
			return m, nil
		}

		m.prompt = value
		m.step = stepLanguage
		m.input.SetValue("")
		m.input.Placeholder = "language, e.g. Python or React/JSX"
		m.input.CharLimit = 100

	case stepLanguage:
		if value == "" {
			return m, nil
		}

		m.language = value
		m.step = stepFramework
		m.input.SetValue("")
		m.input.Placeholder = "framework (optional, enter to skip)"

	case stepFramework:
		m.isFetching = true
		prompt, language := m.prompt, m.language

		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			return SubmitGenerationMsg{prompt: prompt, language: language, framework: value}
		})
	}

	return m, nil
}

// returns the wizard to its initial state
func (m *PromptModel) reset() {
	m.step = stepPrompt
	m.prompt = ""
	m.language = ""
	m.isFetching = false
	m.input.SetValue("")
	m.input.Placeholder = "describe the code you want..."
	m.input.CharLimit = 500
	m.input.Focus()
}

func (m *PromptModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("  New generation"))
	b.WriteString("\n\n")

	if m.prompt != "" {
		b.WriteString(labelStyle.Render("  Prompt: "))
		b.WriteString(truncate(m.prompt, 60))
		b.WriteString("\n")
	}

	if m.language != "" {
		b.WriteString(labelStyle.Render("  Language: "))
		b.WriteString(m.language)
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if m.isFetching {
		b.WriteString("  " + m.spinner.View() + infoStyle.Render(" generating..."))
		b.WriteString("\n")
		return b.String()
	}

	inputBox := borderStyle.
		Width(max(20, m.width-4)).
		Render(m.input.View())

	b.WriteString(inputBox)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  [enter: next] [esc: back]"))

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
