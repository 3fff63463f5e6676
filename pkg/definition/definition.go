package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDefinition wraps decoding failures.
var ErrInvalidDefinition = errors.New("definition: invalid form definition")

// Definition is the YAML shape of a form.
type Definition struct {
	Action     string              `yaml:"action"`
	Method     string              `yaml:"method"`
	Lang       string              `yaml:"lang"`
	Mode       string              `yaml:"mode"`
	Attrs      map[string]string   `yaml:"attrs"`
	Hidden     map[string]string   `yaml:"hidden"`
	Submit     *Button             `yaml:"submit"`
	Errors     map[string][]string `yaml:"errors"`
	FormErrors []string            `yaml:"form_errors"`
	Fields     []Field             `yaml:"fields"`
}

// Field describes one widget and its field configuration.
type Field struct {
	Kind           string            `yaml:"kind"`
	Mode           string            `yaml:"mode"`
	Name           string            `yaml:"name"`
	Binding        string            `yaml:"binding"`
	ID             string            `yaml:"id"`
	ValidationName string            `yaml:"validation_name"`
	Lang           string            `yaml:"lang"`
	DescribedBy    string            `yaml:"described_by"`
	DisplayErrors  *bool             `yaml:"display_errors"`
	Errors         *[]string         `yaml:"errors"`
	Label          string            `yaml:"label"`
	Type           string            `yaml:"type"`
	Placeholder    string            `yaml:"placeholder"`
	Value          any               `yaml:"value"`
	Choices        []Choice          `yaml:"choices"`
	Multiple       bool              `yaml:"multiple"`
	Accept         string            `yaml:"accept"`
	Rows           int               `yaml:"rows"`
	Required       bool              `yaml:"required"`
	Disabled       bool              `yaml:"disabled"`
	Help           string            `yaml:"help"`
	Attrs          map[string]string `yaml:"attrs"`
}

// Choice is a radio or select option. A bare scalar is accepted as both value
// and label.
type Choice struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// UnmarshalYAML accepts `- red` as well as `- {value: red, label: Red}`.
func (c *Choice) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		c.Value = node.Value
		c.Label = node.Value
		return nil
	}
	type plain Choice
	var out plain
	if err := node.Decode(&out); err != nil {
		return err
	}
	*c = Choice(out)
	return nil
}

// Button configures the submit control.
type Button struct {
	Label string            `yaml:"label"`
	Type  string            `yaml:"type"`
	Name  string            `yaml:"name"`
	Value string            `yaml:"value"`
	Attrs map[string]string `yaml:"attrs"`
}

// Load decodes a definition. Unknown keys are rejected.
func Load(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	def.Method = strings.TrimSpace(def.Method)
	def.Lang = strings.TrimSpace(def.Lang)
	return &def, nil
}

// LoadFile reads and decodes the definition at path.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definition: read %s: %w", path, err)
	}
	def, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}
