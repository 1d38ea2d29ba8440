package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file created under the user config directory
const FileName = "settings.toml"

// DefaultPath returns the settings file location under the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, "elevatorfit", FileName), nil
}

// Store persists settings to a single file. The format follows the file
// extension: .toml, .yaml/.yml or .json.
type Store struct {
	Path   string
	Logger *slog.Logger
}

// NewStore creates a store for the given path
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{Path: path, Logger: logger}
}

// Load reads the settings file. A missing file yields the defaults.
func (s *Store) Load() (Settings, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		s.Logger.Debug("no saved settings, using defaults", "path", s.Path)
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings %s: %w", s.Path, err)
	}

	// Start from the defaults so keys missing from the file keep sensible values
	loaded := Defaults()
	if err := decode(s.Path, data, &loaded); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings %s: %w", s.Path, err)
	}

	s.Logger.Debug("loaded saved settings", "path", s.Path)
	return loaded, nil
}

// Save writes the settings file, creating its directory if needed
func (s *Store) Save(settings Settings) error {
	data, err := encode(s.Path, settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", s.Path, err)
	}

	s.Logger.Debug("settings saved", "path", s.Path)
	return nil
}

// Clear removes the settings file and returns the defaults
func (s *Store) Clear() (Settings, error) {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to remove settings %s: %w", s.Path, err)
	}
	s.Logger.Debug("settings cleared", "path", s.Path)
	return Defaults(), nil
}

type format int

const (
	formatTOML format = iota
	formatYAML
	formatJSON
)

func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".json":
		return formatJSON, nil
	default:
		return 0, fmt.Errorf("unsupported settings format %q (use .toml, .yaml or .json)", filepath.Ext(path))
	}
}

func decode(path string, data []byte, v *Settings) error {
	f, err := formatFor(path)
	if err != nil {
		return err
	}

	switch f {
	case formatYAML:
		return yaml.Unmarshal(data, v)
	case formatJSON:
		return json.Unmarshal(data, v)
	default:
		_, err := toml.Decode(string(data), v)
		return err
	}
}

func encode(path string, v Settings) ([]byte, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	switch f {
	case formatYAML:
		return yaml.Marshal(v)
	case formatJSON:
		return json.MarshalIndent(v, "", "  ")
	default:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}
