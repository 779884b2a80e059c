package tui

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/horalog/internal/report"
)

// FileSelectedMsg is sent when a log file is picked.
type FileSelectedMsg struct {
	Path string
}

// File picker styles
var (
	fpPathStyle = lipgloss.NewStyle().
			Foreground(report.ColorMuted).
			Italic(true)

	fpDirStyle = lipgloss.NewStyle().
			Foreground(report.ColorSecondary).
			Bold(true)

	fpFileStyle = lipgloss.NewStyle().
			Foreground(report.ColorText)

	fpRuleStyle = lipgloss.NewStyle().
			Foreground(report.ColorBorder)
)

// FileEntry is a file or directory in the picker.
type FileEntry struct {
	Name  string
	IsDir bool
	Path  string
}

// PickerModel lists directories and event logs under a directory.
type PickerModel struct {
	currentDir string
	entries    []FileEntry
	selected   int
	offset     int // first visible entry

	match func(name string) bool // which files to list

	err error

	width  int
	height int
}

// NewPicker opens a picker in dir, listing files for which match is true.
// A nil match lists every file.
func NewPicker(dir string, match func(string) bool) PickerModel {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	m := PickerModel{
		currentDir: dir,
		match:      match,
	}
	m.loadDir()
	return m
}

// SetSize updates the view dimensions.
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Dir returns the directory being listed.
func (m PickerModel) Dir() string {
	return m.currentDir
}

// loadDir loads the entries of the current directory
func (m *PickerModel) loadDir() {
	m.entries = nil
	m.selected = 0
	m.offset = 0
	m.err = nil

	entries, err := os.ReadDir(m.currentDir)
	if err != nil {
		m.err = err
		return
	}

	if parent := filepath.Dir(m.currentDir); parent != m.currentDir {
		m.entries = append(m.entries, FileEntry{Name: "..", IsDir: true, Path: parent})
	}

	var dirs, files []FileEntry
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		fe := FileEntry{
			Name:  entry.Name(),
			IsDir: entry.IsDir(),
			Path:  filepath.Join(m.currentDir, entry.Name()),
		}
		switch {
		case entry.IsDir():
			dirs = append(dirs, fe)
		case m.match == nil || m.match(entry.Name()):
			files = append(files, fe)
		}
	}

	byName := func(a, b FileEntry) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
	slices.SortFunc(dirs, byName)
	slices.SortFunc(files, byName)

	// Dirs first, then files
	m.entries = append(m.entries, dirs...)
	m.entries = append(m.entries, files...)
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.selected < len(m.entries)-1 {
			m.selected++
			m.adjustScroll()
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
			m.adjustScroll()
		}
	case "enter", "l", "right":
		if m.selected >= len(m.entries) {
			return m, nil
		}
		entry := m.entries[m.selected]
		if entry.IsDir {
			m.currentDir = entry.Path
			m.loadDir()
			return m, nil
		}
		return m, func() tea.Msg {
			return FileSelectedMsg{Path: entry.Path}
		}
	case "backspace", "h":
		if parent := filepath.Dir(m.currentDir); parent != m.currentDir {
			m.currentDir = parent
			m.loadDir()
		}
	case "~":
		if home, _ := os.UserHomeDir(); home != "" {
			m.currentDir = home
			m.loadDir()
		}
	case "g":
		m.selected = 0
		m.offset = 0
	case "G":
		m.selected = max(len(m.entries)-1, 0)
		m.adjustScroll()
	case "ctrl+d":
		m.selected = min(m.selected+m.visibleHeight()/2, max(len(m.entries)-1, 0))
		m.adjustScroll()
	case "ctrl+u":
		m.selected = max(m.selected-m.visibleHeight()/2, 0)
		m.adjustScroll()
	}
	return m, nil
}

func (m *PickerModel) visibleHeight() int {
	return max(m.height-8, 5) // header, path, help
}

func (m *PickerModel) adjustScroll() {
	h := m.visibleHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+h {
		m.offset = m.selected - h + 1
	}
}

// View renders the picker.
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(report.TitleStyle.Render("Select an event log"))
	b.WriteString("\n\n")
	b.WriteString(fpPathStyle.Render(m.currentDir))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	rule := fpRuleStyle.Render(strings.Repeat("─", max(min(m.width-4, 60), 10)))
	b.WriteString(rule)
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(itemStyle.Render("  (no event logs here)"))
		b.WriteString("\n")
	}

	end := min(m.offset+m.visibleHeight(), len(m.entries))
	for i := m.offset; i < end; i++ {
		entry := m.entries[i]

		line := "[FILE] " + entry.Name
		style := fpFileStyle
		if entry.IsDir {
			line = "[DIR]  " + entry.Name
			style = fpDirStyle
		}

		prefix := "  "
		if i == m.selected {
			prefix = "> "
			style = itemActiveStyle
		}
		b.WriteString(prefix + style.Render(line) + "\n")
	}

	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter select • backspace parent • ~ home • q quit"))
	return b.String()
}
