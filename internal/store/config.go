package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"rolo/internal/book"
)

// GlobalConfig is the user-level settings file (~/.rolo/config.json). The
// core treats everything in here as opaque pass-through state.
type GlobalConfig struct {
	// BookDir overrides where db.json and the event log live.
	BookDir string `json:"bookDir,omitempty"`

	// Mode is the persisted selector literal restored on startup
	// ("people", "companies", "all").
	Mode string `json:"mode,omitempty"`

	// Format/Pretty are CLI output defaults.
	Format string `json:"format,omitempty"`
	Pretty bool   `json:"pretty,omitempty"`

	// Window is GUI geometry saved on TUI exit, restored verbatim.
	Window book.WindowGeometry `json:"window,omitempty"`
}

// ConfigDir returns ~/.rolo (or $ROLO_CONFIG_DIR when set, for tests).
func ConfigDir() (string, error) {
	if v := os.Getenv("ROLO_CONFIG_DIR"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".rolo"), nil
}

func configPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig reads the global config, returning zero values when absent.
func LoadConfig() (GlobalConfig, error) {
	var cfg GlobalConfig
	path, err := configPath()
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveConfig writes the global config atomically.
func SaveConfig(cfg GlobalConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Prefs converts the pass-through settings into the core's prefs shape.
func (cfg GlobalConfig) Prefs(dir string) book.Prefs {
	return book.Prefs{
		FilePath: filepath.Join(dir, dbFileName),
		Window:   cfg.Window,
	}
}
