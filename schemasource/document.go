package schemasource

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/schemalens/schemalens"
)

// LoadDocument reads a schema document from a JSON or YAML file. The format
// is chosen by extension; anything that is not .yaml/.yml is treated as
// JSON. Unknown fields are tolerated and ignored.
func LoadDocument(path string) (*schemalens.SchemaDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var doc schemalens.SchemaDocument

	if isYAMLFile(path) {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}

	return &doc, nil
}

// viewsEnvelope mirrors the generator response format: a views array plus
// optional free-text reasoning.
type viewsEnvelope struct {
	Views     []schemalens.ViewDefinition `json:"views" yaml:"views"`
	Reasoning string                      `json:"reasoning" yaml:"reasoning"`
}

// LoadViews reads view definitions from a JSON or YAML file. Both the
// enveloped form ({"views": [...]}) and a bare array are accepted.
func LoadViews(path string) ([]schemalens.ViewDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read views file: %w", err)
	}

	unmarshal := json.Unmarshal
	if isYAMLFile(path) {
		unmarshal = yaml.Unmarshal
	}

	var envelope viewsEnvelope
	if err := unmarshal(data, &envelope); err == nil && len(envelope.Views) > 0 {
		return envelope.Views, nil
	}

	var views []schemalens.ViewDefinition
	if err := unmarshal(data, &views); err == nil && len(views) > 0 {
		return views, nil
	}

	return nil, fmt.Errorf("%w in %s", schemalens.ErrNoViewsFound, path)
}

// WriteDocument writes a schema document as indented JSON, creating parent
// directories as needed.
func WriteDocument(path string, doc *schemalens.SchemaDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode schema document: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write schema document: %w", err)
	}

	return nil
}

func isYAMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
