package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// sent to leave the detail view and return to the browser
type CloseDetailMsg struct{}

// renders one generation as scrollable markdown
type DetailModel struct {
	viewport   viewport.Model
	renderer   *glamour.TermRenderer
	generation *generationDetail
	width      int
	height     int
	ready      bool
}

func NewDetail() *DetailModel {
	return &DetailModel{}
}

// replaces the displayed generation and re-renders the viewport
func (m *DetailModel) SetGeneration(g *generationDetail) {
	m.generation = g
	m.render()
}

func (m *DetailModel) Update(msg tea.Msg) (*DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return CloseDetailMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-3)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 3
		}

		// word wrap depends on the width, so rebuild the renderer
		m.renderer = nil
		m.render()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *DetailModel) View() string {
	if !m.ready || m.generation == nil {
		return infoStyle.Render("\n  loading generation...\n")
	}

	var b strings.Builder

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  [↑/↓: scroll] [esc: back]"))

	return b.String()
}

func (m *DetailModel) render() {
	if !m.ready || m.generation == nil {
		return
	}

	if m.renderer == nil {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(max(40, m.width-4)),
		)
		if err != nil {
			m.viewport.SetContent(detailMarkdown(m.generation))
			return
		}

		m.renderer = renderer
	}

	rendered, err := m.renderer.Render(detailMarkdown(m.generation))
	if err != nil {
		rendered = detailMarkdown(m.generation)
	}

	m.viewport.SetContent(rendered)
	m.viewport.GotoTop()
}

// builds the markdown document for one generation
func detailMarkdown(g *generationDetail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", g.Prompt)

	meta := g.Language
	if g.Framework != nil && *g.Framework != "" {
		meta = fmt.Sprintf("%s / %s", meta, *g.Framework)
	}
	fmt.Fprintf(&b, "*%s · %s*\n\n", meta, g.CreatedAt.Local().Format("Jan 2 2006 15:04"))

	if g.Explanation != "" {
		b.WriteString(g.Explanation)
		b.WriteString("\n\n")
	}

	for _, f := range g.Files {
		fmt.Fprintf(&b, "## %s\n\n", f.Filename)
		fmt.Fprintf(&b, "```%s\n%s\n```\n\n", f.Language, f.Content)
	}

	return b.String()
}
