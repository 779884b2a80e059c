package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/horalog/internal/mjai"
	"github.com/f3rmion/horalog/internal/replay"
	"github.com/f3rmion/horalog/internal/report"
)

// ViewType is the active screen of the app.
type ViewType int

const (
	ViewPicker ViewType = iota
	ViewLoading
	ViewBrowse
)

// LoadFunc replays a log file and returns the samples to browse.
type LoadFunc func(path string) ([]replay.Sample, error)

// SamplesLoadedMsg is sent when a picked log has been replayed.
type SamplesLoadedMsg struct {
	Path    string
	Samples []replay.Sample
	Err     error
}

// AppModel picks a log file, replays it and opens the browser on it.
type AppModel struct {
	load   LoadFunc
	glyphs bool

	currentView ViewType
	picker      PickerModel
	browser     BrowserModel

	loadedPath string
	err        error

	width  int
	height int
}

// NewApp starts on a file picker in dir.
func NewApp(dir string, load LoadFunc, glyphs bool) AppModel {
	return AppModel{
		load:        load,
		glyphs:      glyphs,
		currentView: ViewPicker,
		picker:      NewPicker(dir, mjai.IsLogName),
	}
}

// Init initializes the model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.currentView == ViewPicker {
			switch msg.String() {
			case "ctrl+c", "q", "esc":
				return m, tea.Quit
			}
		}
		if m.currentView == ViewLoading && msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case FileSelectedMsg:
		m.currentView = ViewLoading
		m.loadedPath = msg.Path
		m.err = nil
		return m, m.loadSamples(msg.Path)

	case SamplesLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.currentView = ViewPicker
			return m, nil
		}
		m.browser = NewBrowser(msg.Samples, m.glyphs)
		m.browser.width = m.width
		m.browser.height = m.height
		m.currentView = ViewBrowse
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewPicker:
		m.picker, cmd = m.picker.Update(msg)
	case ViewBrowse:
		var next tea.Model
		next, cmd = m.browser.Update(msg)
		m.browser = next.(BrowserModel)
	}
	return m, cmd
}

// loadSamples replays a log asynchronously
func (m AppModel) loadSamples(path string) tea.Cmd {
	return func() tea.Msg {
		samples, err := m.load(path)
		return SamplesLoadedMsg{Path: path, Samples: samples, Err: err}
	}
}

// View renders the UI.
func (m AppModel) View() string {
	switch m.currentView {
	case ViewLoading:
		return report.SubtitleStyle.Render(fmt.Sprintf("Replaying %s...", filepath.Base(m.loadedPath)))
	case ViewBrowse:
		return m.browser.View()
	}

	view := m.picker.View()
	if m.err != nil {
		view += "\n" + errorStyle.Render(m.err.Error())
	}
	return view
}
