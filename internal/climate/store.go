package climate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// SettingsDirName is the folder under the assets directory holding one
// settings document per object.
const SettingsDirName = "CustomRuntimeMaterials"

const (
	cloneSuffix   = "(Clone)"
	previewLength = 500
	jsonExtension = ".json"
)

var yamlExtensions = []string{".yaml", ".yml"}

var (
	// ErrConfigMissing is returned when no settings document exists for an object.
	ErrConfigMissing = errors.New("material settings not found")
	// ErrConfigMalformed is returned when a settings document cannot be decoded.
	ErrConfigMalformed = errors.New("material settings malformed")
	// ErrConfigUnreadable is returned when a settings document exists but
	// cannot be read.
	ErrConfigUnreadable = errors.New("material settings unreadable")
)

// Store loads per-object ClimateMaterialSettings from the assets directory.
type Store struct {
	dir    string
	logger *log.Logger
}

// NewStore creates a store reading documents from
// <assetsDir>/CustomRuntimeMaterials. A nil logger uses the standard logger.
func NewStore(assetsDir string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		dir:    filepath.Join(assetsDir, SettingsDirName),
		logger: logger,
	}
}

// Dir returns the directory the store reads settings documents from.
func (s *Store) Dir() string {
	return s.dir
}

// ObjectKey strips instantiation decoration from an object name.
func ObjectKey(objectName string) string {
	return strings.TrimSpace(strings.ReplaceAll(objectName, cloneSuffix, ""))
}

// Path returns the JSON document path for an object.
func (s *Store) Path(objectName string) string {
	return filepath.Join(s.dir, ObjectKey(objectName)+jsonExtension)
}

// Load returns the settings for an object. Missing or malformed documents
// are logged and yield empty settings.
func (s *Store) Load(objectName string) ClimateMaterialSettings {
	path := s.locate(objectName)
	s.logger.Printf("[CustomRuntimeMaterials] Attempting to load settings from %s", path)

	settings, err := s.LoadFile(path)
	switch {
	case errors.Is(err, ErrConfigMissing):
		s.logger.Printf("[CustomRuntimeMaterials] Error: settings file for %q not found: %v", ObjectKey(objectName), err)
		return ClimateMaterialSettings{}
	case errors.Is(err, ErrConfigUnreadable):
		s.logger.Printf("[CustomRuntimeMaterials] Error: failed to read settings file for %q: %v", ObjectKey(objectName), err)
		return ClimateMaterialSettings{}
	case err != nil:
		s.logger.Printf("[CustomRuntimeMaterials] Error: deserialization failed: %v", err)
		return ClimateMaterialSettings{}
	}
	s.logger.Printf("[CustomRuntimeMaterials] Deserialization succeeded for %q", ObjectKey(objectName))
	return settings
}

// locate prefers the JSON document and falls back to a YAML one when only
// that exists.
func (s *Store) locate(objectName string) string {
	path := s.Path(objectName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	base := strings.TrimSuffix(path, jsonExtension)
	for _, ext := range yamlExtensions {
		if _, err := os.Stat(base + ext); err == nil {
			return base + ext
		}
	}
	return path
}

// LoadFile decodes a settings document. The format follows the file
// extension: .yaml and .yml are decoded as YAML, anything else as JSON.
func (s *Store) LoadFile(path string) (ClimateMaterialSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ClimateMaterialSettings{}, fmt.Errorf("%w: %s", ErrConfigMissing, path)
		}
		return ClimateMaterialSettings{}, fmt.Errorf("%w: %v", ErrConfigUnreadable, err)
	}
	s.logger.Printf("[CustomRuntimeMaterials] Loaded %s, contents: %s...", path, preview(data))

	var settings ClimateMaterialSettings
	var keys []string
	if isYAMLPath(path) {
		keys, err = decodeYAML(data, &settings)
	} else {
		keys, err = decodeJSON(data, &settings)
	}
	if err != nil {
		return ClimateMaterialSettings{}, fmt.Errorf("%w: %s: %v", ErrConfigMalformed, path, err)
	}

	for _, key := range unknownKeys(keys) {
		if suggestion := SuggestKey(key); suggestion != "" {
			s.logger.Printf("[CustomRuntimeMaterials] Warning: %s: unknown climate key %q ignored (did you mean %q?)", path, key, suggestion)
		} else {
			s.logger.Printf("[CustomRuntimeMaterials] Warning: %s: unknown climate key %q ignored", path, key)
		}
	}
	return settings, nil
}

// decodeJSON matches climate keys exactly, like the YAML decoder does.
// encoding/json would otherwise fold "Woodlands" into woodlands.
func decodeJSON(data []byte, settings *ClimateMaterialSettings) ([]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty document")
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, c := range All {
		value, ok := raw[c.Key()]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, settings.field(c)); err != nil {
			return nil, fmt.Errorf("%s: %w", c.Key(), err)
		}
	}
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	return keys, nil
}

func decodeYAML(data []byte, settings *ClimateMaterialSettings) ([]string, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("empty document")
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	return keys, nil
}

func unknownKeys(keys []string) []string {
	known := make(map[string]bool, len(All))
	for _, key := range Keys() {
		known[key] = true
	}
	var unknown []string
	for _, key := range keys {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range yamlExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// preview returns at most the first previewLength runes of data.
func preview(data []byte) string {
	n := 0
	for count := 0; n < len(data) && count < previewLength; count++ {
		_, size := utf8.DecodeRune(data[n:])
		n += size
	}
	return string(data[:n])
}
