package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/layerterm/internal/box"
	"github.com/five82/layerterm/internal/config"
	"github.com/five82/layerterm/internal/logtail"
	"github.com/five82/layerterm/internal/prefs"
	"github.com/five82/layerterm/internal/ui"
)

// Options configure the layerterm application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/layerterm/prefs.toml
	Backend    string // overrides the config backend when set
	ViewPath   string // overrides the config viewer path when set
}

// Run boots the demo until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	reg := box.NewRegistry()
	log.Printf("starting: backend=%s config=%s glyphs=%d excluded=%d",
		cfg.Backend, cfg.Path, len(reg.Usable()), len(reg.Excluded()))

	title, lines := viewerText(cfg.Viewer, reg)

	uiOpts := ui.Options{
		Config:    cfg,
		Registry:  reg,
		ThemeName: userPrefs.Theme,
		Focus:     userPrefs.Focus,
		PrefsPath: opts.PrefsPath,
		Title:     title,
		Lines:     lines,
	}
	if cfg.Backend == config.BackendTcell {
		return ui.RunTcell(ctx, nil, uiOpts)
	}
	return ui.Run(ctx, uiOpts)
}

func applyOverrides(cfg *config.Config, opts Options) error {
	switch b := config.Backend(opts.Backend); b {
	case "":
	case config.BackendTea, config.BackendTcell:
		cfg.Backend = b
	default:
		return fmt.Errorf("unknown backend %q", opts.Backend)
	}
	if opts.ViewPath != "" {
		abs, err := filepath.Abs(opts.ViewPath)
		if err != nil {
			return fmt.Errorf("resolve view path: %w", err)
		}
		cfg.Viewer.Path = abs
	}
	return nil
}

// setupLogging sends the standard logger to path, since the terminal belongs
// to the UI. An empty path discards log output.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "layerterm")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}

// viewerText returns the viewer title and lines: the configured file, or the
// built-in about text when none is set.
func viewerText(v config.Viewer, reg *box.Registry) (string, []string) {
	if v.Path == "" {
		return "about", ui.AboutText(reg)
	}
	title := filepath.Base(v.Path)
	lines, err := logtail.Read(v.Path, v.MaxLines)
	if err != nil {
		log.Printf("viewer: %v", err)
		return title, []string{fmt.Sprintf("cannot read %s: %v", v.Path, err)}
	}
	if len(lines) == 0 {
		log.Printf("viewer: %s is missing or empty", v.Path)
		return title, []string{"(empty)"}
	}
	return title, lines
}
