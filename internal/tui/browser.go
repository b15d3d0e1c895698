package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// wraps a generation summary as a list item
type generationItem struct {
	summary generationSummary
}

func (i generationItem) Title() string {
	return truncate(i.summary.Prompt, 70)
}

func (i generationItem) Description() string {
	desc := i.summary.Language
	if i.summary.Framework != nil && *i.summary.Framework != "" {
		desc = fmt.Sprintf("%s / %s", desc, *i.summary.Framework)
	}

	return fmt.Sprintf("%s · %s", desc, i.summary.CreatedAt.Local().Format("Jan 2 15:04"))
}

func (i generationItem) FilterValue() string {
	return i.summary.Prompt
}

// history browser backed by the REST API
type BrowserModel struct {
	list      list.Model
	spinner   spinner.Model
	width     int
	height    int
	isLoading bool
	loaded    bool
}

// sent to transition to the prompt state
type EnterPromptMsg struct{}

// sent to open a generation in the detail view
type OpenGenerationMsg struct {
	id string
}

func NewBrowser() *BrowserModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(colorPurple).
		BorderLeftForeground(colorPurple)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(colorGray).
		BorderLeftForeground(colorPurple)

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Recent generations"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle

	return &BrowserModel{
		list:      l,
		spinner:   s,
		isLoading: true,
	}
}

func (m *BrowserModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *BrowserModel) Update(msg tea.Msg) (*BrowserModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// ignore keys while the list filter input is active
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "n":
			return m, func() tea.Msg { return EnterPromptMsg{} }

		case "enter":
			item, ok := m.list.SelectedItem().(generationItem)
			if !ok {
				return m, nil
			}

			return m, func() tea.Msg { return OpenGenerationMsg{id: item.summary.ID} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-2, msg.Height-4)

	case GenerationsLoadedMsg:
		items := make([]list.Item, 0, len(msg.generations))
		for _, g := range msg.generations {
			items = append(items, generationItem{summary: g})
		}

		m.isLoading = false
		m.loaded = true
		return m, m.list.SetItems(items)

	case spinner.TickMsg:
		if !m.isLoading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *BrowserModel) View() string {
	if m.isLoading {
		return fmt.Sprintf("\n  %s loading history...\n", m.spinner.View())
	}

	var b strings.Builder

	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  [n: new generation] [enter: open] [r: refresh] [q: quit]"))

	return b.String()
}

// marks the list stale so the next refresh shows the spinner again
func (m *BrowserModel) SetLoading() {
	m.isLoading = true
}

// reports whether the list filter input currently owns the keyboard
func (m *BrowserModel) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit-1]) + "…"
}
