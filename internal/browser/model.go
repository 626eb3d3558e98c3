package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/sinclair-decoder/internal/capture"
	"github.com/muurk/sinclair-decoder/internal/report"
)

// Default size until the first WindowSizeMsg arrives
const (
	defaultWidth  = 80
	defaultHeight = 24
	footerHeight  = 2
)

// Model is the frame browser state
type Model struct {
	Results []capture.Result
	List    list.Model
	Detail  viewport.Model
	Help    help.Model

	ShowDetail bool
	Current    int // Index into Results shown in the detail screen
	Width      int
	Height     int

	title      string
	opts       report.Options
	listKeys   listKeyMap
	detailKeys detailKeyMap
}

// New creates a browser over results. title names the input in the header.
func New(results []capture.Result, title string, opts report.Options) Model {
	l := list.New(toItems(results), frameDelegate{}, defaultWidth, defaultHeight-footerHeight)
	l.Title = fmt.Sprintf("%s  (%d frames)", title, len(results))
	l.Styles.Title = TitleStyle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{
		Results:    results,
		List:       l,
		Detail:     viewport.New(defaultWidth, defaultHeight-footerHeight-1),
		Help:       help.New(),
		Width:      defaultWidth,
		Height:     defaultHeight,
		title:      title,
		opts:       opts,
		listKeys:   newListKeyMap(),
		detailKeys: newDetailKeyMap(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.List.SetSize(msg.Width, max(msg.Height-footerHeight, 1))
		m.Detail.Width = msg.Width
		m.Detail.Height = max(msg.Height-footerHeight-1, 1)
		if m.ShowDetail {
			m.refreshDetail()
		}
		return m, nil

	case tea.KeyMsg:
		if m.ShowDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	if m.ShowDetail {
		m.Detail, cmd = m.Detail.Update(msg)
	} else {
		m.List, cmd = m.List.Update(msg)
	}
	return m, cmd
}

// updateList handles keyboard input on the list screen
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Keys belong to the filter input while the user is typing
	if m.List.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.List, cmd = m.List.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.listKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.listKeys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil

	case key.Matches(msg, m.listKeys.Open):
		if item, ok := m.List.SelectedItem().(frameItem); ok {
			m.ShowDetail = true
			m.Current = item.index
			m.refreshDetail()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// updateDetail handles keyboard input on the detail screen
func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.detailKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.detailKeys.Back):
		m.ShowDetail = false
		return m, nil

	case key.Matches(msg, m.detailKeys.Next):
		if m.Current < len(m.Results)-1 {
			m.Current++
			m.refreshDetail()
		}
		return m, nil

	case key.Matches(msg, m.detailKeys.Prev):
		if m.Current > 0 {
			m.Current--
			m.refreshDetail()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Detail, cmd = m.Detail.Update(msg)
	return m, cmd
}

// refreshDetail renders the current result into the viewport
func (m *Model) refreshDetail() {
	if m.Current < 0 || m.Current >= len(m.Results) {
		m.Detail.SetContent("")
		return
	}
	opts := m.opts
	opts.Width = m.Width
	m.Detail.SetContent(report.RenderDetailed(m.Results[m.Current], opts))
	m.Detail.GotoTop()
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	if m.ShowDetail {
		b.WriteString(DetailTitleStyle.Render(fmt.Sprintf("%s  frame %d of %d", m.title, m.Current+1, len(m.Results))))
		b.WriteString("\n")
		b.WriteString(m.Detail.View())
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render(m.Help.View(m.detailKeys)))
		return b.String()
	}

	if len(m.Results) == 0 {
		b.WriteString(TitleStyle.Render(m.title))
		b.WriteString("\n\n  No frames found.\n\n")
		b.WriteString(HelpStyle.Render(m.Help.View(m.listKeys)))
		return b.String()
	}

	b.WriteString(m.List.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.Help.View(m.listKeys)))
	return b.String()
}

// Run starts the browser on the alternate screen and blocks until it exits
func Run(results []capture.Result, title string, opts report.Options) error {
	p := tea.NewProgram(New(results, title, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}
