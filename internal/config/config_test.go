package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/layerterm/internal/box"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend != BackendTea {
		t.Fatalf("Backend = %q, want %q", cfg.Backend, BackendTea)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if cfg.Border.Corner != box.CornerArc {
		t.Fatalf("Border.Corner = %v, want arc", cfg.Border.Corner)
	}
	if cfg.Viewer.MaxLines != defaultMaxLines {
		t.Fatalf("Viewer.MaxLines = %d, want %d", cfg.Viewer.MaxLines, defaultMaxLines)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := filepath.Join(home, ".config", "layerterm", "config.toml")
	if cfg.Path != want {
		t.Fatalf("Path = %q, want %q", cfg.Path, want)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
backend = "  TCELL "
log_file = " ~/logs/lt.log "

[border]
weight = "heavy"
count = "single"
dash = "triple"
corner = "box"

[viewer]
path = "~/notes.txt"
max_lines = 50
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend != BackendTcell {
		t.Fatalf("Backend = %q, want %q", cfg.Backend, BackendTcell)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "lt.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	want := Border{Weight: box.Heavy, Count: box.Single, Dash: box.TripleDash, Corner: box.CornerBox}
	if cfg.Border != want {
		t.Fatalf("Border = %+v, want %+v", cfg.Border, want)
	}
	if !strings.HasPrefix(cfg.Viewer.Path, home) {
		t.Fatalf("Viewer.Path = %q, want it under HOME %q", cfg.Viewer.Path, home)
	}
	if cfg.Viewer.MaxLines != 50 {
		t.Fatalf("Viewer.MaxLines = %d, want 50", cfg.Viewer.MaxLines)
	}
}

func TestLoad_RelativePathsFollowConfigDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	path := writeConfig(t, `
log_file = "logs/lt.log"

[viewer]
path = "notes/today.txt"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	dir := filepath.Dir(path)
	if want := filepath.Join(dir, "logs", "lt.log"); cfg.LogFile != want {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, want)
	}
	if want := filepath.Join(dir, "notes", "today.txt"); cfg.Viewer.Path != want {
		t.Fatalf("Viewer.Path = %q, want %q", cfg.Viewer.Path, want)
	}
}

func TestLoad_EmptyLogFileDisablesLogging(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(writeConfig(t, `log_file = ""`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(writeConfig(t, `
backend = "   "

[border]
weight = ""
corner = ""
`))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend != BackendTea {
		t.Fatalf("Backend = %q, want %q", cfg.Backend, BackendTea)
	}
	if cfg.Border != (Border{Corner: box.CornerArc}) {
		t.Fatalf("Border = %+v, want light single arc", cfg.Border)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "backend = ", "parse config:"},
		{"backend", `backend = "gtk"`, `parse config: backend: unknown backend "gtk"`},
		{"weight", "[border]\nweight = \"thick\"", `parse config: border.weight: unknown line weight "thick"`},
		{"count", "[border]\ncount = \"triple\"", `parse config: border.count: unknown line count "triple"`},
		{"dash", "[border]\ndash = \"dotted\"", `parse config: border.dash: unknown dash type "dotted"`},
		{"corner", "[border]\ncorner = \"round\"", `parse config: border.corner: unknown corner type "round"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want %q", tt.want)
			}
			if !strings.HasPrefix(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want prefix %q", err.Error(), tt.want)
			}
		})
	}
}

func TestBorder_Region(t *testing.T) {
	b := Border{Weight: box.Heavy, Count: box.Single, Dash: box.DoubleDash, Corner: box.CornerBox}
	r := b.Region(1, 2, 3, 4)
	if r.X != 1 || r.Y != 2 || r.Width != 3 || r.Height != 4 {
		t.Fatalf("Region geometry = %+v", r)
	}
	if r.Edge() != (box.Edge{Weight: box.Heavy, Count: box.Single, Dash: box.DoubleDash}) {
		t.Fatalf("Region edge = %v", r.Edge())
	}
	if r.Corner != box.CornerBox {
		t.Fatalf("Region corner = %v, want box", r.Corner)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/x/y")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "x", "y") {
		t.Fatalf("expandPath = %q, want %q", got, filepath.Join(home, "x", "y"))
	}
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath(blank) returned nil error")
	}
}
