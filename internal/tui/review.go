// Package tui provides a small terminal browser for reviewing one
// extraction result before it is exported or saved.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tenderlens/tenderlens/internal/cli"
	"github.com/tenderlens/tenderlens/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor)
)

// ReviewModel displays one extraction result in a scrollable viewport.
type ReviewModel struct {
	viewport viewport.Model
	source   string
	content  string
	ready    bool
}

// NewReviewModel builds the review browser for a single result.
func NewReviewModel(source string, f *model.ExtractedFinancials, v model.ValidationResult) ReviewModel {
	return ReviewModel{
		source:  source,
		content: cli.RenderReport(source, f, v),
	}
}

// Init implements tea.Model.
func (m ReviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m ReviewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
}

func (m ReviewModel) headerView() string {
	return headerStyle.Render("tenderlens review — " + m.source)
}

func (m ReviewModel) footerView() string {
	return footerStyle.Render(fmt.Sprintf("%3.0f%%  ↑/↓ scroll · q quit", m.viewport.ScrollPercent()*100))
}

// Run launches the review browser and blocks until the user quits.
func Run(source string, f *model.ExtractedFinancials, v model.ValidationResult) error {
	p := tea.NewProgram(NewReviewModel(source, f, v), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("review TUI failed: %w", err)
	}
	return nil
}
