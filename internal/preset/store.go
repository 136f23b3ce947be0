package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a grammar definition from a .json, .yaml or .yml file.
func Load(path string) (Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Grammar{}, err
	}

	var g Grammar
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &g); err != nil {
			return Grammar{}, fmt.Errorf("parse grammar %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &g); err != nil {
			return Grammar{}, fmt.Errorf("parse grammar %s: %w", path, err)
		}
	default:
		return Grammar{}, fmt.Errorf("grammar %s: unsupported extension %q (want .json, .yaml or .yml)", path, ext)
	}

	if err := g.validate(); err != nil {
		return Grammar{}, fmt.Errorf("grammar %s: %w", path, err)
	}
	return g, nil
}

func (g Grammar) validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(g.Axiom) == "" {
		return fmt.Errorf("axiom is required")
	}
	if g.Iterations < 0 {
		return fmt.Errorf("iterations must be >= 0, got %d", g.Iterations)
	}
	if g.Angle < 0 {
		return fmt.Errorf("angle must be >= 0, got %v", g.Angle)
	}
	if g.Step < 0 {
		return fmt.Errorf("step must be >= 0, got %v", g.Step)
	}
	if g.Capacity < 0 {
		return fmt.Errorf("capacity must be >= 0, got %d", g.Capacity)
	}
	return nil
}
