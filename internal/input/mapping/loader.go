package mapping

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/glint/internal/input/action"
)

// Keymap is the file form of a set of bindings. Actions are referred to by
// declared name and strokes by string notation, so files stay readable and
// survive code-level ID changes.
type Keymap struct {
	Name     string        `json:"name" toml:"name" yaml:"name"`
	Bindings []KeymapEntry `json:"bindings" toml:"bindings" yaml:"bindings"`
}

// KeymapEntry is one binding line in a keymap file.
type KeymapEntry struct {
	Action      string `json:"action" toml:"action" yaml:"action"`
	Stroke      string `json:"stroke" toml:"stroke" yaml:"stroke"`
	Description string `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
}

// Apply binds every entry into m, resolving action names against reg.
func (k *Keymap) Apply(m *Mapping, reg *action.Registry) error {
	for i, entry := range k.Bindings {
		id, ok := reg.Lookup(entry.Action)
		if !ok {
			return fmt.Errorf("keymap %q binding %d: %w: %s", k.Name, i, ErrUnknownAction, entry.Action)
		}
		if err := m.BindStroke(id, entry.Stroke); err != nil {
			return fmt.Errorf("keymap %q binding %d (%s): %w", k.Name, i, entry.Stroke, err)
		}
	}
	return nil
}

// Loader loads keymap files from configured search paths.
type Loader struct {
	searchPaths []string
	registry    *action.Registry
}

// NewLoader creates a loader resolving action names against reg.
func NewLoader(reg *action.Registry) *Loader {
	return &Loader{registry: reg}
}

// AddSearchPath adds a directory to search for keymap files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads a single keymap file; the extension selects the format
// (.json, .toml, .yaml or .yml).
func (l *Loader) LoadFile(path string) (*Keymap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	return l.LoadReader(f, filepath.Ext(path))
}

// LoadReader decodes a keymap from r in the format implied by ext.
func (l *Loader) LoadReader(r io.Reader, ext string) (*Keymap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}

	var km Keymap
	switch strings.ToLower(ext) {
	case ".json":
		err = json.Unmarshal(data, &km)
	case ".toml":
		err = toml.Unmarshal(data, &km)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &km)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}

	return &km, nil
}

// LoadAll loads every keymap file found in the search paths.
// Files that fail to load are skipped; building the mapping should not
// fail because one user file is malformed.
func (l *Loader) LoadAll() []*Keymap {
	var keymaps []*Keymap
	for _, dir := range l.searchPaths {
		for _, pattern := range []string{"*.json", "*.toml", "*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				continue
			}
			for _, path := range matches {
				km, err := l.LoadFile(path)
				if err != nil {
					continue
				}
				keymaps = append(keymaps, km)
			}
		}
	}
	return keymaps
}

// LoadAndApply loads all keymaps from the search paths and binds them
// into m in file order.
func (l *Loader) LoadAndApply(m *Mapping) error {
	for _, km := range l.LoadAll() {
		if err := km.Apply(m, l.registry); err != nil {
			return fmt.Errorf("applying keymap %q: %w", km.Name, err)
		}
	}
	return nil
}

// SaveFile writes the keymap as indented JSON.
func (k *Keymap) SaveFile(path string) error {
	data, err := json.MarshalIndent(k, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling keymap: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}
	return nil
}
