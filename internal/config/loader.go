package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration for gameID into a copy of def.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default -> def itself.
//
// Only a broken customPath is an error; the other locations are optional
// and skipped when missing or unparsable. Files are decoded on top of def,
// so a file may set just the keys it wants to change.
func Load[T any](gameID, customPath string, def T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return def, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg := def
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return def, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	name := gameID + ".yaml"
	for _, path := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if path == "" {
			continue
		}
		if cfg, ok := decodeFile(path, def); ok {
			return cfg, nil
		}
	}

	if data := DefaultYAML(gameID); data != nil {
		cfg := def
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}
	return def, nil
}

func decodeFile[T any](path string, def T) (T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return def, false
	}
	cfg := def
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return def, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// WriteDefault copies the embedded default for gameID to dir so users have a
// file to edit. It refuses to overwrite an existing file.
func WriteDefault(gameID, dir string) (string, error) {
	data := DefaultYAML(gameID)
	if data == nil {
		return "", fmt.Errorf("config: no defaults for %q", gameID)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("config: cannot create %s: %w", dir, err)
	}
	path := filepath.Join(dir, gameID+".yaml")
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config: %s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("config: cannot stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return path, nil
}
