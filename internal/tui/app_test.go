package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/horalog/internal/mjai"
	"github.com/f3rmion/horalog/internal/replay"
)

func logDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"b.mjson", "a.mjson.gz", "notes.txt", ".hidden.mjson"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "2024"), 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func entryNames(m PickerModel) []string {
	var names []string
	for _, e := range m.entries {
		names = append(names, e.Name)
	}
	return names
}

func TestPickerListsLogs(t *testing.T) {
	m := NewPicker(logDir(t), mjai.IsLogName)
	got := strings.Join(entryNames(m), ",")
	if got != "..,2024,a.mjson.gz,b.mjson" {
		t.Errorf("entries = %s", got)
	}
}

func TestPickerNavigation(t *testing.T) {
	dir := logDir(t)
	m := NewPicker(dir, mjai.IsLogName)

	m, _ = m.Update(key("j"))
	m, cmd := m.Update(key("enter"))
	if cmd != nil || m.Dir() != filepath.Join(dir, "2024") {
		t.Fatalf("enter on a directory: dir = %s", m.Dir())
	}

	m, _ = m.Update(key("h"))
	if m.Dir() != dir {
		t.Fatalf("backspace went to %s, want %s", m.Dir(), dir)
	}

	m, _ = m.Update(key("G"))
	_, cmd = m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("enter on a file sent nothing")
	}
	msg, ok := cmd().(FileSelectedMsg)
	if !ok || msg.Path != filepath.Join(dir, "b.mjson") {
		t.Errorf("selected %+v", msg)
	}
}

func TestAppLoadsPickedFile(t *testing.T) {
	var loaded string
	load := func(path string) ([]replay.Sample, error) {
		loaded = path
		return []replay.Sample{{Han: 3, Yakus: []string{"Riichi"}}}, nil
	}
	app := NewApp(logDir(t), load, false)

	next, cmd := app.Update(FileSelectedMsg{Path: "game.mjson"})
	app = next.(AppModel)
	if app.currentView != ViewLoading || cmd == nil {
		t.Fatalf("view = %v after selection", app.currentView)
	}
	if !strings.Contains(app.View(), "Replaying game.mjson") {
		t.Errorf("loading view = %q", app.View())
	}

	next, _ = app.Update(cmd())
	app = next.(AppModel)
	if loaded != "game.mjson" {
		t.Errorf("loaded %q", loaded)
	}
	if app.currentView != ViewBrowse {
		t.Fatalf("view = %v after load", app.currentView)
	}
	if s, ok := app.browser.Selected(); !ok || s.Han != 3 {
		t.Errorf("browser holds %+v", s)
	}
}

func TestAppLoadErrorReturnsToPicker(t *testing.T) {
	load := func(string) ([]replay.Sample, error) {
		return nil, errors.New("opening log: permission denied")
	}
	app := NewApp(logDir(t), load, false)

	next, cmd := app.Update(FileSelectedMsg{Path: "game.mjson"})
	next, _ = next.(AppModel).Update(cmd())
	app = next.(AppModel)

	if app.currentView != ViewPicker {
		t.Fatalf("view = %v, want picker", app.currentView)
	}
	if !strings.Contains(app.View(), "permission denied") {
		t.Errorf("error not shown:\n%s", app.View())
	}
}

func TestAppQuitFromPicker(t *testing.T) {
	app := NewApp(logDir(t), nil, false)
	_, cmd := app.Update(key("q"))
	if cmd == nil {
		t.Fatal("q did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}
