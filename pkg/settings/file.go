package settings

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile parses a JSON or YAML settings document into a MemoryStore. Values
// may be booleans or strings:
//
//	title_field_enabled: yes
//	birthdate_field_enabled: true
func LoadFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS is LoadFile over an fs.FS.
func LoadFS(fsys fs.FS, path string) (*MemoryStore, error) {
	if fsys == nil {
		return nil, fmt.Errorf("settings: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("settings: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a settings document. source only labels errors.
func Parse(data []byte, source string) (*MemoryStore, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("settings: file %s is empty", source)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = nil
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("settings: parse %s: invalid JSON or YAML", source)
		}
	}

	values := make(map[string]string, len(doc))
	for key, raw := range doc {
		name := strings.TrimSpace(key)
		if name == "" {
			return nil, fmt.Errorf("settings: file %s defines an empty key", source)
		}
		switch v := raw.(type) {
		case nil:
			continue
		case bool:
			values[name] = FormatBool(v)
		case string:
			values[name] = v
		case int, int64, float64:
			values[name] = fmt.Sprint(v)
		default:
			return nil, fmt.Errorf("settings: file %s key %q has unsupported value %T", source, name, raw)
		}
	}
	return NewMemoryStore(values), nil
}
