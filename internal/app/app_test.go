package app

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/layerterm/internal/box"
	"github.com/five82/layerterm/internal/config"
)

func restoreLog(t *testing.T) {
	t.Helper()
	flags, prefix := log.Flags(), log.Prefix()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
		log.SetPrefix(prefix)
	})
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	restoreLog(t)
	path := filepath.Join(t.TempDir(), "state", "layerterm.log")

	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging returned error: %v", err)
	}
	log.Printf("hello")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "layerterm") || !strings.Contains(string(data), "hello") {
		t.Fatalf("log file = %q, want prefix and message", data)
	}
}

func TestSetupLogging_EmptyPathDiscards(t *testing.T) {
	restoreLog(t)
	closeLog, err := setupLogging("")
	if err != nil {
		t.Fatalf("setupLogging returned error: %v", err)
	}
	closeLog()
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	if err := applyOverrides(&cfg, Options{Backend: "tcell", ViewPath: "notes.txt"}); err != nil {
		t.Fatalf("applyOverrides returned error: %v", err)
	}
	if cfg.Backend != config.BackendTcell {
		t.Fatalf("Backend = %q, want tcell", cfg.Backend)
	}
	if !filepath.IsAbs(cfg.Viewer.Path) || filepath.Base(cfg.Viewer.Path) != "notes.txt" {
		t.Fatalf("Viewer.Path = %q, want absolute notes.txt", cfg.Viewer.Path)
	}

	if err := applyOverrides(&cfg, Options{Backend: "gtk"}); err == nil {
		t.Fatalf("applyOverrides(gtk) returned nil error")
	}
}

func TestViewerText(t *testing.T) {
	restoreLog(t)
	reg := box.NewRegistry()

	title, lines := viewerText(config.Viewer{}, reg)
	if title != "about" || len(lines) == 0 {
		t.Fatalf("viewerText(empty) = %q, %d lines", title, len(lines))
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	title, lines = viewerText(config.Viewer{Path: path, MaxLines: 2}, reg)
	if title != "app.log" || strings.Join(lines, ",") != "two,three" {
		t.Fatalf("viewerText(file) = %q, %v", title, lines)
	}

	_, lines = viewerText(config.Viewer{Path: filepath.Join(dir, "missing.log")}, reg)
	if len(lines) != 1 || lines[0] != "(empty)" {
		t.Fatalf("viewerText(missing) = %v, want (empty)", lines)
	}

	_, lines = viewerText(config.Viewer{Path: dir}, reg)
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "cannot read") {
		t.Fatalf("viewerText(dir) = %v, want read error", lines)
	}
}
