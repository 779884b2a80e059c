// Package tui provides an interactive terminal browser over win samples.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/horalog/internal/clipboard"
	"github.com/f3rmion/horalog/internal/replay"
	"github.com/f3rmion/horalog/internal/report"
	"gopkg.in/yaml.v3"
)

// BrowserModel is the Bubble Tea model for browsing samples.
type BrowserModel struct {
	samples  []replay.Sample
	filtered []replay.Sample
	current  int
	glyphs   bool

	// Search
	searchInput textinput.Model
	searching   bool
	searchTerm  string

	// Clipboard
	copyFn  func(string) error
	copied  bool
	copyErr error

	width  int
	height int
}

// clearCopiedMsg is sent to clear the copied indicator
type clearCopiedMsg struct{}

// clearCopiedAfter returns a command that clears the copied state after a duration
func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

var (
	sidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderRight(true).
			BorderForeground(report.ColorBorder).
			Padding(0, 1)

	itemStyle = lipgloss.NewStyle().
			Foreground(report.ColorMuted)

	itemActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(report.ColorAccent).
			Background(report.ColorBgAlt)

	helpStyle = lipgloss.NewStyle().
			Foreground(report.ColorMuted).
			MarginTop(1)

	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(report.ColorAccent).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(report.ColorPrimary).
			Bold(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(report.ColorSuccess).
			Bold(true)
)

// NewBrowser creates a browser over samples.
func NewBrowser(samples []replay.Sample, glyphs bool) BrowserModel {
	si := textinput.New()
	si.Placeholder = "Filter by yaku..."
	si.CharLimit = 50
	si.Width = 30

	return BrowserModel{
		samples:     samples,
		filtered:    samples,
		glyphs:      glyphs,
		searchInput: si,
		copyFn:      clipboard.Write,
	}
}

// Init initializes the model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				m.searching = false
				m.searchTerm = m.searchInput.Value()
				m.applyFilter()
				return m, nil
			case "esc":
				m.searching = false
				m.searchInput.SetValue("")
				return m, nil
			default:
				var cmd tea.Cmd
				m.searchInput, cmd = m.searchInput.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.current > 0 {
				m.current--
			}
			return m, nil
		case "down", "j":
			if m.current < len(m.filtered)-1 {
				m.current++
			}
			return m, nil
		case "g", "home":
			m.current = 0
			return m, nil
		case "G", "end":
			m.current = max(len(m.filtered)-1, 0)
			return m, nil
		case "/":
			m.searching = true
			m.searchInput.Focus()
			return m, textinput.Blink
		case "c":
			m.searchTerm = ""
			m.searchInput.SetValue("")
			m.filtered = m.samples
			m.current = 0
			return m, nil
		case "y":
			s, ok := m.Selected()
			if !ok {
				return m, nil
			}
			out, err := yaml.Marshal(s)
			if err == nil {
				err = m.copyFn(string(out))
			}
			m.copyErr = err
			if err == nil {
				m.copied = true
				return m, clearCopiedAfter(2 * time.Second)
			}
			return m, nil
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// Selected returns the highlighted sample.
func (m BrowserModel) Selected() (replay.Sample, bool) {
	if m.current < 0 || m.current >= len(m.filtered) {
		return replay.Sample{}, false
	}
	return m.filtered[m.current], true
}

// applyFilter keeps samples with a yaku containing the search term.
func (m *BrowserModel) applyFilter() {
	m.current = 0
	if m.searchTerm == "" {
		m.filtered = m.samples
		return
	}

	term := strings.ToLower(m.searchTerm)
	m.filtered = nil
	for _, s := range m.samples {
		for _, y := range s.Yakus {
			if strings.Contains(strings.ToLower(y), term) {
				m.filtered = append(m.filtered, s)
				break
			}
		}
	}
}

// View renders the UI.
func (m BrowserModel) View() string {
	if len(m.samples) == 0 {
		return "No samples.\n\n" + helpStyle.Render("q quit")
	}

	var detail string
	if s, ok := m.Selected(); ok {
		detail = report.RenderSample(m.current+1, s, m.glyphs)
	} else {
		detail = errorStyle.Render(fmt.Sprintf("No sample has a yaku matching %q", m.searchTerm))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyle.Render(m.renderList()), " ", detail)

	var status string
	switch {
	case m.searching:
		status = searchBoxStyle.Render(m.searchInput.View())
	case m.copied:
		status = copiedStyle.Render("Copied sample as YAML")
	case m.copyErr != nil:
		status = errorStyle.Render("Copy failed: " + m.copyErr.Error())
	case m.searchTerm != "":
		status = report.SubtitleStyle.Render(fmt.Sprintf("filter: %s (%d of %d)", m.searchTerm, len(m.filtered), len(m.samples)))
	}

	help := helpStyle.Render("j/k move • / filter • c clear • y copy yaml • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, status, help)
}

// renderList draws the visible window of the sample list.
func (m BrowserModel) renderList() string {
	rows := len(m.filtered)
	if m.height > 8 {
		rows = min(rows, m.height-8)
	}
	start := 0
	if m.current >= rows {
		start = m.current - rows + 1
	}

	var b strings.Builder
	for i := start; i < len(m.filtered) && i < start+rows; i++ {
		s := m.filtered[i]
		line := fmt.Sprintf("%3d %-6s %-5s %2d han", i+1, s.Round.Label(), s.WinMethod(), s.Han)
		if i == m.current {
			b.WriteString(itemActiveStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
