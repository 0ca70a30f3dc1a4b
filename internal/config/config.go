package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/layerterm/internal/box"
)

// Backend names the terminal driver.
type Backend string

const (
	BackendTea   Backend = "tea"
	BackendTcell Backend = "tcell"
)

// Config captures the settings layerterm reads at startup.
type Config struct {
	Path    string
	Backend Backend
	LogFile string
	Border  Border
	Viewer  Viewer
}

// Border is the line style used for unfocused panes and fields.
type Border struct {
	Weight box.LineWeight
	Count  box.LineCount
	Dash   box.DashType
	Corner box.CornerType
}

// Region returns a box region at the given place drawn in this style.
func (b Border) Region(x, y, width, height int) box.BoxRegion {
	r := box.NewBoxRegion(x, y, width, height)
	r.Weight = b.Weight
	r.Count = b.Count
	r.Dash = b.Dash
	r.Corner = b.Corner
	return r
}

// Viewer configures the file pane.
type Viewer struct {
	Path     string
	MaxLines int
}

const (
	defaultConfigPath = "~/.config/layerterm/config.toml"
	defaultLogFile    = "~/.local/state/layerterm/layerterm.log"
	defaultMaxLines   = 2000
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Backend: BackendTea,
		LogFile: mustExpand(defaultLogFile),
		Border:  Border{Corner: box.CornerArc},
		Viewer:  Viewer{MaxLines: defaultMaxLines},
	}
}

type rawConfig struct {
	Backend *string `toml:"backend"`
	LogFile *string `toml:"log_file"`
	Border  struct {
		Weight string `toml:"weight"`
		Count  string `toml:"count"`
		Dash   string `toml:"dash"`
		Corner string `toml:"corner"`
	} `toml:"border"`
	Viewer struct {
		Path     string `toml:"path"`
		MaxLines *int   `toml:"max_lines"`
	} `toml:"viewer"`
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	cfg.Path = resolved

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.Backend != nil {
		switch b := Backend(strings.ToLower(strings.TrimSpace(*raw.Backend))); b {
		case "":
		case BackendTea, BackendTcell:
			cfg.Backend = b
		default:
			return Config{}, fmt.Errorf("parse config: backend: unknown backend %q", *raw.Backend)
		}
	}

	// An explicit empty log_file turns logging off.
	if raw.LogFile != nil {
		cfg.LogFile = strings.TrimSpace(*raw.LogFile)
		if cfg.LogFile != "" {
			cfg.LogFile = expandFrom(filepath.Dir(resolved), cfg.LogFile)
		}
	}

	if cfg.Border, err = parseBorder(raw, cfg.Border); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if p := strings.TrimSpace(raw.Viewer.Path); p != "" {
		cfg.Viewer.Path = expandFrom(filepath.Dir(resolved), p)
	}
	if raw.Viewer.MaxLines != nil {
		cfg.Viewer.MaxLines = *raw.Viewer.MaxLines
	}

	return cfg, nil
}

func parseBorder(raw rawConfig, b Border) (Border, error) {
	field := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	var err error
	if b.Weight, err = box.ParseLineWeight(field(raw.Border.Weight)); err != nil {
		return b, fmt.Errorf("border.weight: %w", err)
	}
	if b.Count, err = box.ParseLineCount(field(raw.Border.Count)); err != nil {
		return b, fmt.Errorf("border.count: %w", err)
	}
	if b.Dash, err = box.ParseDashType(field(raw.Border.Dash)); err != nil {
		return b, fmt.Errorf("border.dash: %w", err)
	}
	if c := field(raw.Border.Corner); c != "" {
		if b.Corner, err = box.ParseCornerType(c); err != nil {
			return b, fmt.Errorf("border.corner: %w", err)
		}
	}
	return b, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// expandFrom expands path like expandPath, except that a relative path is
// taken relative to dir, the directory of the config file naming it.
func expandFrom(dir, path string) string {
	if !strings.HasPrefix(path, "~") && !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return mustExpand(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
