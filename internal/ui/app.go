package ui

import (
	"context"
	"errors"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/layerterm/internal/box"
	"github.com/five82/layerterm/internal/config"
	"github.com/five82/layerterm/internal/console"
	"github.com/five82/layerterm/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Config    config.Config
	Registry  *box.Registry
	ThemeName string
	Focus     string // label of the field to focus first
	PrefsPath string
	Title     string
	Lines     []string
}

// Model is the Bubble Tea model around a Scene. View renders the scene into
// an in-memory console and styles it with lipgloss.
type Model struct {
	scene     *Scene
	keys      keyMap
	prefsPath string
	buffer    *console.Buffer
	ready     bool
	quitting  bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	scene := NewScene(SceneOptions{
		Registry: opts.Registry,
		Border:   opts.Config.Border,
		Theme:    GetTheme(themeName),
		Title:    opts.Title,
		Lines:    opts.Lines,
	})
	if opts.Focus != "" && !scene.FocusLabel(opts.Focus) {
		log.Printf("no field labelled %q, keeping default focus", opts.Focus)
	}

	return Model{
		scene:     scene,
		keys:      DefaultKeyMap(),
		prefsPath: prefsPath,
	}
}

// Scene returns the model's scene.
func (m Model) Scene() *Scene { return m.scene }

// Quitting reports whether a quit key was pressed.
func (m Model) Quitting() bool { return m.quitting }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.scene.Resize(msg.Width, msg.Height)
		m.buffer = console.NewBuffer(msg.Width, msg.Height)
		m.ready = true
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	m.buffer.Clear()
	m.scene.Render(m.buffer)
	return m.buffer.Styled()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, m.keys.CycleTheme):
		name := NextTheme(m.scene.Theme().Name)
		m.scene.SetTheme(GetTheme(name))
		log.Printf("theme switched to %s", name)
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		return m, m.scene.FocusNext()

	case key.Matches(msg, m.keys.PrevField):
		return m, m.scene.FocusPrev()

	case key.Matches(msg, m.keys.PageDown):
		m.scene.PageDown()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.scene.PageUp()
		return m, nil
	}

	return m, m.scene.UpdateField(msg)
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.scene.Theme().Name, Focus: m.scene.Focused().Label}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
