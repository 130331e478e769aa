package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Loader loads game configuration from JSON or TOML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load loads <name>.json, falling back to <name>.toml, and validates it.
// Fields missing from the file keep their Default values.
func (l *Loader) Load(name string) (*GameConfig, error) {
	for _, ext := range []string{".json", ".toml"} {
		data, err := fs.ReadFile(l.fsys, name+ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s%s: %w", name, ext, err)
		}
		return decode(name+ext, data)
	}

	return nil, fmt.Errorf("failed to find config %s in %s: %w", name, l.basePath, fs.ErrNotExist)
}

// LoadFile loads a single config file; the extension picks the format
func LoadFile(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return decode(filepath.Base(path), data)
}

func decode(filename string, data []byte) (*GameConfig, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", filename)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return cfg, nil
}
