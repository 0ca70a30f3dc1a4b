package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/layerterm/internal/config"
	"github.com/five82/layerterm/internal/prefs"
)

func newTestModel(t *testing.T, opts Options) (Model, string) {
	t.Helper()
	if opts.PrefsPath == "" {
		opts.PrefsPath = filepath.Join(t.TempDir(), "prefs.toml")
	}
	opts.Config = config.Config{Border: arcBorder}
	m := New(opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return next.(Model), opts.PrefsPath
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModel_ViewBeforeSize(t *testing.T) {
	m := New(Options{PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View = %q, want %q", got, "Loading...")
	}
}

func TestModel_ViewRendersScene(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) != 20 {
		t.Fatalf("View has %d lines, want 20", len(lines))
	}
	if !strings.HasPrefix(lines[0], "╭─ layerterm ─") {
		t.Fatalf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[2], "Ada Lovelace") {
		t.Fatalf("third line = %q, want the first field value", lines[2])
	}
}

func TestModel_KeysDriveFocusAndEditing(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Scene().Focused().Label; got != "Email" {
		t.Fatalf("Focused after tab = %q, want Email", got)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.Scene().Focused().Label; got != "Notes" {
		t.Fatalf("Focused after two shift+tab = %q, want Notes", got)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Dr ")})
	if got := m.Scene().Focused().Value(); got != "Dr Ada Lovelace" {
		t.Fatalf("Value = %q, want %q", got, "Dr Ada Lovelace")
	}
}

func TestModel_CycleThemeSavesPrefs(t *testing.T) {
	m, path := newTestModel(t, Options{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if got := m.Scene().Theme().Name; got != "Slate" {
		t.Fatalf("Theme = %q, want Slate", got)
	}

	p, err := prefs.Load(path)
	if err != nil {
		t.Fatalf("prefs.Load returned error: %v", err)
	}
	if p.Theme != "Slate" || p.Focus != "Name" {
		t.Fatalf("prefs = %+v, want Slate/Name", p)
	}
}

func TestModel_QuitSavesFocus(t *testing.T) {
	m, path := newTestModel(t, Options{ThemeName: "Slate", Focus: "City"})
	if got := m.Scene().Focused().Label; got != "City" {
		t.Fatalf("Focused = %q, want City", got)
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("quit returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit cmd did not return tea.QuitMsg")
	}
	if !m.Quitting() {
		t.Fatalf("Quitting = false after esc")
	}
	if got := m.View(); got != "" {
		t.Fatalf("View after quit = %q, want empty", got)
	}

	p, _ := prefs.Load(path)
	if p.Theme != "Slate" || p.Focus != "City" {
		t.Fatalf("prefs = %+v, want Slate/City", p)
	}
}

func TestModel_PageKeysScrollViewer(t *testing.T) {
	m, _ := newTestModel(t, Options{Lines: numberedLines(40)})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	if !strings.Contains(ansi.Strip(m.View()), "line 16") {
		t.Fatalf("View after pgdown does not show line 16")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	v, _ := m.Scene().Stack().Viewport(m.Scene().ids.viewer)
	if v.FirstVisibleRow != 0 {
		t.Fatalf("FirstVisibleRow after pgup = %d, want 0", v.FirstVisibleRow)
	}
}
