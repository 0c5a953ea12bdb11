package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"hookd/pkg/types"
)

// LoadDir scans a directory for *.yaml, *.yml and *.json files and parses
// one entity definition per file. Files are processed in lexical order so
// startup attachment order is deterministic.
func LoadDir(dir string) ([]types.EntityDefinition, error) {
	base, err := expandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	var defs []types.EntityDefinition
	for _, name := range names {
		p := filepath.Join(abs, name)
		def, err := loadFile(p)
		if err != nil {
			return nil, fmt.Errorf("definition %s: %w", name, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func loadFile(path string) (types.EntityDefinition, error) {
	var def types.EntityDefinition
	b, err := os.ReadFile(path)
	if err != nil {
		return def, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &def); err != nil {
			return def, err
		}
	case ".json":
		if err := json.Unmarshal(b, &def); err != nil {
			return def, err
		}
	default:
		return def, fmt.Errorf("unsupported definition extension: %s", filepath.Ext(path))
	}
	if strings.TrimSpace(def.ID) == "" {
		return def, fmt.Errorf("missing entity id")
	}
	return def, nil
}

// expandHome expands a leading '~' to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	if path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	// handle cases like ~/hookd/definitions
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
