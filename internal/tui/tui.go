package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func NewApp() *Model {
	return &Model{
		state:   StateBrowser,
		browser: NewBrowser(),
		prompt:  NewPrompt(),
		detail:  NewDetail(),
		client:  NewAPIClient(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.browser.Init(), m.client.ListCmd(defaultHistoryLimit))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// browser shortcuts stay out of the way of the list filter input
		if m.state == StateBrowser && !m.browser.Filtering() {
			switch msg.String() {
			case "q":
				return m, tea.Quit

			case "r":
				m.browser.SetLoading()
				return m, tea.Batch(m.browser.Init(), m.client.ListCmd(defaultHistoryLimit))
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// every sub-model tracks the window size
		m.browser, _ = m.browser.Update(msg)
		m.prompt, _ = m.prompt.Update(msg)
		m.detail, _ = m.detail.Update(msg)
		return m, nil

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case APIErrorMsg:
		m.err = msg.err
		return m, nil

	case EnterPromptMsg:
		m.state = StatePrompt
		m.prompt.reset()
		return m, m.prompt.Init()

	case CancelPromptMsg, CloseDetailMsg:
		m.state = StateBrowser
		m.browser.SetLoading()
		return m, tea.Batch(m.browser.Init(), m.client.ListCmd(defaultHistoryLimit))

	case OpenGenerationMsg:
		m.state = StateDetail
		return m, m.client.GetCmd(msg.id)

	case SubmitGenerationMsg:
		return m, m.client.GenerateCmd(msg.prompt, msg.language, msg.framework)

	case GenerationLoadedMsg:
		m.state = StateDetail
		m.detail.SetGeneration(msg.generation)
		return m, nil
	}

	switch m.state {
	case StateBrowser:
		return m.updateBrowser(msg)

	case StatePrompt:
		return m.updatePrompt(msg)

	case StateDetail:
		return m.updateDetail(msg)

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StateBrowser:
		return m.browser.View()

	case StatePrompt:
		return m.prompt.View()

	case StateDetail:
		return m.detail.View()

	default:
		return "Unknown state"
	}
}

func (m *Model) updateBrowser(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.browser, cmd = m.browser.Update(msg)

	return m, cmd
}

func (m *Model) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)

	return m, cmd
}

func (m *Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)

	return m, cmd
}

func errorView(err error) string {
	return fmt.Sprintf("\n  Error: %v\n\n  Press Ctrl+C to exit\n", err)
}
