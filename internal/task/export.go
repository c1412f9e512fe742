package task

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is an export/import encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// TOML documents must be tables, so the sequence lives under "tasks".
type tomlDocument struct {
	Tasks []Task `toml:"tasks"`
}

// ParseFormat accepts a format name, falling back to the extension of path
// when name is empty.
func ParseFormat(name, path string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch name {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", name)
	}
}

// Marshal encodes tasks for export.
func Marshal(tasks []Task, format Format) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(tasks)
	case FormatTOML:
		return toml.Marshal(tomlDocument{Tasks: tasks})
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Unmarshal decodes an exported document. Blank titles are rejected.
func Unmarshal(data []byte, format Format) ([]Task, error) {
	var tasks []Task
	switch format {
	case FormatJSON:
		var err error
		if tasks, err = Decode(string(data)); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		var doc tomlDocument
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		tasks = doc.Tasks
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	for i, t := range tasks {
		if Blank(t.Title) {
			return nil, fmt.Errorf("task %d (id %d) has an empty title", i, t.ID)
		}
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}
